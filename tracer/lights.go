package tracer

// Light illuminates the scene from a source point.
type Light interface {
	Source() Vec3
	// ColorAt returns the light color received at a world point.
	ColorAt(p Vec3) Color
}

// PointLight emits a constant color from a single point in every direction.
type PointLight struct {
	Position Vec3
	Color    Color
}

// NewPointLight returns a white point light at the given position.
func NewPointLight(pos Vec3) PointLight {
	return PointLight{Position: pos, Color: White}
}

func (l PointLight) Source() Vec3 { return l.Position }

func (l PointLight) ColorAt(Vec3) Color { return l.Color }
