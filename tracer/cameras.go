package tracer

import "math"

// Camera generates primary rays through a virtual screen.
type Camera interface {
	// RayThrough returns the ray through normalized screen coordinates
	// u, v in [0,1). (0,0) is the bottom-left corner of the screen.
	RayThrough(u, v float64) Ray
	// SizeRatio is the width/height ratio of the camera screen.
	SizeRatio() float64
}

// PerspectiveCamera projects rays from a single eye point through a screen
// rectangle placed in front of it.
type PerspectiveCamera struct {
	eye           Vec3
	right, up     Vec3
	forward       Vec3
	width, height float64
	distance      float64
}

// NewPerspectiveCamera places the eye at position, looking towards target.
// The screen is a width by height rectangle in world units; angle is the
// half-angle, in radians, under which the eye sees the screen's half-width.
func NewPerspectiveCamera(position, target Vec3, width, height, angle float64) *PerspectiveCamera {
	forward, right, up := cameraBasis(position, target)
	distance := math.MaxFloat64
	if t := math.Tan(angle); t > 0 {
		distance = (width / 2) / t
	}
	return &PerspectiveCamera{
		eye:      position,
		right:    right,
		up:       up,
		forward:  forward,
		width:    width,
		height:   height,
		distance: distance,
	}
}

func (c *PerspectiveCamera) RayThrough(u, v float64) Ray {
	center := c.eye.Add(c.forward.Mul(c.distance))
	point := center.
		Add(c.right.Mul((u - 0.5) * c.width)).
		Add(c.up.Mul((v - 0.5) * c.height))
	return Ray{Source: c.eye, Direction: Normalize(point.Sub(c.eye))}
}

func (c *PerspectiveCamera) SizeRatio() float64 {
	if c.height == 0 {
		return 1
	}
	return c.width / c.height
}

// OrthogonalCamera shoots parallel rays through a screen rectangle.
type OrthogonalCamera struct {
	origin        Vec3
	right, up     Vec3
	forward       Vec3
	width, height float64
}

// NewOrthogonalCamera places the screen center at position, facing target.
func NewOrthogonalCamera(position, target Vec3, width, height float64) *OrthogonalCamera {
	forward, right, up := cameraBasis(position, target)
	return &OrthogonalCamera{
		origin:  position,
		right:   right,
		up:      up,
		forward: forward,
		width:   width,
		height:  height,
	}
}

func (c *OrthogonalCamera) RayThrough(u, v float64) Ray {
	source := c.origin.
		Add(c.right.Mul((u - 0.5) * c.width)).
		Add(c.up.Mul((v - 0.5) * c.height))
	return Ray{Source: source, Direction: c.forward}
}

func (c *OrthogonalCamera) SizeRatio() float64 {
	if c.height == 0 {
		return 1
	}
	return c.width / c.height
}

func cameraBasis(position, target Vec3) (forward, right, up Vec3) {
	forward = Normalize(Between(position, target))
	if forward == (Vec3{}) {
		forward = V3(0, 0, 1)
	}
	worldUp := V3(0, 1, 0)
	if math.Abs(Dot(forward, worldUp)) > 1-1e-9 {
		worldUp = V3(0, 0, 1)
	}
	right = Normalize(Cross(forward, worldUp))
	up = Cross(right, forward)
	return forward, right, up
}
