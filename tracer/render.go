package tracer

import (
	"context"
	"fmt"
	"log"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pixel is one rendered canvas pixel. Y grows downward, canvas origin is the
// top-left corner.
type Pixel struct {
	X, Y  int
	Color Color
}

// Options configure a render run.
type Options struct {
	// Width of the canvas in pixels. Required.
	Width int
	// Height of the canvas. Zero derives it from the camera size ratio.
	Height int
	// Strategy picks the per-pixel sampling. Nil means StandardStrategy.
	Strategy Strategy
	// Workers bounds the render goroutines. Zero means GOMAXPROCS.
	Workers int
}

// Run is an in-progress render. Pixels arrive progressively on Pixels (or
// through Next); Wait reports the first worker error after the channel
// closes.
type Run struct {
	width  int
	height int
	pixels chan Pixel
	grp    *errgroup.Group
}

// Render validates the scene and starts rendering it with a worker pool.
//
// Cancelling ctx stops the workers; Wait then returns the context error.
func Render(ctx context.Context, s *Scene, opts Options) (*Run, error) {
	if s == nil || s.Camera == nil {
		return nil, ErrNoCamera
	}
	if len(s.Lights) == 0 {
		return nil, ErrNoLight
	}
	width := opts.Width
	if width <= 0 {
		return nil, fmt.Errorf("tracer: invalid canvas width %d", width)
	}
	height := opts.Height
	if height <= 0 {
		height = int(math.Round(float64(width) / s.Camera.SizeRatio()))
	}
	if height <= 0 {
		return nil, fmt.Errorf("tracer: invalid canvas height %d", height)
	}
	strategy := opts.Strategy
	if strategy == nil {
		strategy = StandardStrategy{}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	rows := make(chan int)
	pixels := make(chan Pixel, width)
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		defer close(rows)
		for y := 0; y < height; y++ {
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		grp.Go(func() error {
			for y := range rows {
				for x := 0; x < width; x++ {
					c, err := strategy.PixelColor(s, x, y, width, height)
					if err != nil {
						return err
					}
					select {
					case pixels <- Pixel{X: x, Y: y, Color: c}:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
			return nil
		})
	}

	run := &Run{width: width, height: height, pixels: pixels, grp: grp}
	go func() {
		if err := grp.Wait(); err == nil {
			log.Printf("tracer: rendered %dx%d in %.3fs", width, height, time.Since(start).Seconds())
		}
		close(pixels)
	}()
	return run, nil
}

func (r *Run) Width() int  { return r.width }
func (r *Run) Height() int { return r.height }

// Pixels streams rendered pixels until the run completes or fails.
func (r *Run) Pixels() <-chan Pixel { return r.pixels }

// Next pulls a single pixel. ok is false once the run is over; check Wait
// to distinguish completion from failure.
func (r *Run) Next() (p Pixel, ok bool) {
	p, ok = <-r.pixels
	return p, ok
}

// Wait blocks until all workers stop and returns the first error.
func (r *Run) Wait() error { return r.grp.Wait() }
