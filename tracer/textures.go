package tracer

import "math"

// Texture computes the surface color of an object at a world point.
type Texture interface {
	ColorAt(p Vec3) Color
}

// PlainColor is a uniform texture.
type PlainColor struct {
	Color Color
}

func (t PlainColor) ColorAt(Vec3) Color { return t.Color }

// CheckedPattern alternates two colors in a world-space checkerboard of
// cubes with the given edge size.
type CheckedPattern struct {
	Primary   Color
	Secondary Color
	Size      float64
}

// DefaultCheckedPattern is the classic near-white/dark checker with unit cells.
func DefaultCheckedPattern() CheckedPattern {
	return CheckedPattern{
		Primary:   NewColor(0.95, 0.95, 0.95),
		Secondary: NewColor(0.15, 0.15, 0.15),
		Size:      1,
	}
}

func (t CheckedPattern) ColorAt(p Vec3) Color {
	size := t.Size
	if size <= 0 {
		size = 1
	}
	sum := int(math.Floor(p.X/size)) + int(math.Floor(p.Y/size)) + int(math.Floor(p.Z/size))
	if sum&1 == 0 {
		return t.Primary
	}
	return t.Secondary
}
