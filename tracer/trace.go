package tracer

import "math"

// trace computes the color seen along a ray, recursing through transparent
// objects until depth goes negative.
func trace(s *Scene, r Ray, depth int) (Color, error) {
	if depth < 0 {
		return Black, nil
	}

	idx, hit, ok := nearestCollision(s.Objects, r)
	if !ok {
		return s.Options.WorldColor, nil
	}
	object := s.Objects[idx]

	total, err := illumination(s, idx, hit, r)
	if err != nil {
		return Black, err
	}

	// Transparent objects continue the ray from their exit point and blend
	// in what lies behind.
	if t := object.Effects.Transparency; t != nil {
		exitRay := Ray{Source: hit, Direction: r.Direction}
		if _, exit, ok := nearestCollision(s.Objects, exitRay); ok {
			behind, err := trace(s, Ray{Source: exit, Direction: r.Direction}, depth-1)
			if err != nil {
				return Black, err
			}
			total = total.Add(behind.MulScalar(t.Alpha))
		}
	}

	if amb := s.Options.AmbientLight; amb != nil {
		total = total.Add(amb.Mul(object.colorAt(hit)))
	}

	return total, nil
}

// nearestCollision returns the index of the closest object hit by the ray
// and the collision point. Hits within collisionEpsilon of the ray source
// are ignored so a surface does not shadow itself.
func nearestCollision(objects []Object, r Ray) (int, Vec3, bool) {
	shortest := math.MaxFloat64
	index := -1
	var point Vec3
	for i, candidate := range objects {
		if candidate.Shape == nil {
			continue
		}
		p, ok := candidate.Shape.Hit(r)
		if !ok {
			continue
		}
		d := Distance(p, r.Source)
		if d <= collisionEpsilon {
			continue
		}
		if d < shortest {
			shortest = d
			index = i
			point = p
		}
	}
	if index < 0 {
		return 0, Vec3{}, false
	}
	return index, point, true
}

// illumination sums the direct light contributions at a surface point:
// diffuse reflection plus an optional Phong specular term, with shadow rays
// skipping occluded lights.
func illumination(s *Scene, objectIndex int, surfacePoint Vec3, cameraRay Ray) (Color, error) {
	object := s.Objects[objectIndex]
	total := Black
	for _, light := range s.Lights {
		lightRay := RayFromTo(surfacePoint, light.Source())
		if obstructed(lightRay, light.Source(), s.Objects) {
			continue
		}

		lightDir := Normalize(lightRay.Direction)
		lightColor := light.ColorAt(surfacePoint)
		normal, ok := object.Shape.NormalAt(surfacePoint)
		if !ok {
			return Black, &NormalError{Object: objectIndex}
		}

		// Diffuse reflection.
		if angle := Dot(lightDir, normal); angle > 0 {
			total = total.Add(lightColor.Mul(object.colorAt(surfacePoint)).MulScalar(angle))
		}

		// Specular highlight.
		if phong := object.Effects.Phong; phong != nil {
			reflected := Normalize(Reflect(cameraRay.Direction, normal))
			if angle := Dot(lightDir, reflected); angle > 0 {
				total = total.Add(lightColor.MulScalar(math.Pow(angle, float64(phong.Size)) * phong.Lum))
			}
		}
	}
	return total, nil
}

// obstructed reports whether an object lies strictly between the ray source
// and the destination point.
func obstructed(r Ray, destination Vec3, objects []Object) bool {
	lightDistance := Distance(r.Source, destination)
	for _, candidate := range objects {
		if candidate.Shape == nil {
			continue
		}
		p, ok := candidate.Shape.Hit(r)
		if !ok {
			continue
		}
		d := Distance(r.Source, p)
		if d > lightDistance {
			// Beyond the light, not an obstacle.
			continue
		}
		if d <= collisionEpsilon {
			// The source surface itself.
			continue
		}
		return true
	}
	return false
}
