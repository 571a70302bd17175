package tracer

import "math"

// collisionEpsilon guards against a ray colliding with its own source
// surface. Float comparison error there is well above machine epsilon.
const collisionEpsilon = 1e-12

// Ray is a half-line from a source point along a direction.
//
// The direction is not required to be normalized; collision distances are
// measured in world units between points, not in multiples of the direction.
type Ray struct {
	Source    Vec3
	Direction Vec3
}

// RayFromTo returns the ray going from one point towards another.
func RayFromTo(from, to Vec3) Ray {
	return Ray{Source: from, Direction: Between(from, to)}
}

// Shape is a surface that rays can collide with.
type Shape interface {
	// Hit returns the nearest intersection point of the ray with the shape.
	Hit(r Ray) (Vec3, bool)
	// NormalAt returns the outward surface normal at a point on the shape.
	NormalAt(p Vec3) (Vec3, bool)
}

// Sphere is a full sphere surface.
type Sphere struct {
	Center Vec3
	Radius float64
}

func (s Sphere) Hit(r Ray) (Vec3, bool) {
	oc := r.Source.Sub(s.Center)
	a := Dot(r.Direction, r.Direction)
	if a == 0 {
		return Vec3{}, false
	}
	b := 2 * Dot(oc, r.Direction)
	c := Dot(oc, oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return Vec3{}, false
	}
	sq := math.Sqrt(disc)
	// Nearest root in front of the source. For a source inside the sphere
	// only the far root is positive, which is the exit point.
	t := (-b - sq) / (2 * a)
	if t <= collisionEpsilon {
		t = (-b + sq) / (2 * a)
	}
	if t <= collisionEpsilon {
		return Vec3{}, false
	}
	return r.Source.Add(r.Direction.Mul(t)), true
}

func (s Sphere) NormalAt(p Vec3) (Vec3, bool) {
	n := Normalize(p.Sub(s.Center))
	if n == (Vec3{}) {
		return Vec3{}, false
	}
	return n, true
}

// Plane is an infinite plane through a point.
type Plane struct {
	Point  Vec3
	Normal Vec3
}

func (p Plane) Hit(r Ray) (Vec3, bool) {
	n := Normalize(p.Normal)
	denom := Dot(r.Direction, n)
	if math.Abs(denom) < collisionEpsilon {
		return Vec3{}, false
	}
	t := Dot(p.Point.Sub(r.Source), n) / denom
	if t <= collisionEpsilon {
		return Vec3{}, false
	}
	return r.Source.Add(r.Direction.Mul(t)), true
}

func (p Plane) NormalAt(Vec3) (Vec3, bool) {
	n := Normalize(p.Normal)
	if n == (Vec3{}) {
		return Vec3{}, false
	}
	return n, true
}
