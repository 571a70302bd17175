package tracer

import (
	"fmt"
	"math/rand"
)

// Strategy decides how many camera rays sample one canvas pixel and how
// their results are combined.
type Strategy interface {
	// PixelColor computes the color of the canvas pixel (x, y) on a
	// width by height canvas. Canvas rows grow downward; strategies map
	// them onto the camera screen, whose v axis grows upward.
	PixelColor(s *Scene, x, y, width, height int) (Color, error)
}

// StandardStrategy shoots a single ray through the pixel center.
type StandardStrategy struct{}

func (StandardStrategy) PixelColor(s *Scene, x, y, width, height int) (Color, error) {
	u := (float64(x) + 0.5) / float64(width)
	v := (float64(height-1-y) + 0.5) / float64(height)
	return trace(s, s.Camera.RayThrough(u, v), s.Options.maxDepth())
}

// RandomAntiAliasingStrategy averages several rays jittered uniformly
// inside the pixel.
type RandomAntiAliasingStrategy struct {
	RaysPerPixel int
}

func (st RandomAntiAliasingStrategy) PixelColor(s *Scene, x, y, width, height int) (Color, error) {
	rays := st.RaysPerPixel
	if rays <= 0 {
		rays = 1
	}
	depth := s.Options.maxDepth()
	sum := Black
	for i := 0; i < rays; i++ {
		u := (float64(x) + rand.Float64()) / float64(width)
		v := (float64(height-1-y) + rand.Float64()) / float64(height)
		c, err := trace(s, s.Camera.RayThrough(u, v), depth)
		if err != nil {
			return Black, err
		}
		sum = sum.Add(c)
	}
	return sum.MulScalar(1 / float64(rays)), nil
}

// ParseStrategy maps a strategy name to an implementation. An empty name
// selects the standard strategy; rays only applies to "random".
func ParseStrategy(name string, rays int) (Strategy, error) {
	switch name {
	case "", "normal":
		return StandardStrategy{}, nil
	case "random":
		return RandomAntiAliasingStrategy{RaysPerPixel: rays}, nil
	default:
		return nil, fmt.Errorf("tracer: unknown render strategy %q", name)
	}
}
