// Package webbridge adapts the tracer to a pull-based host such as a
// browser event loop: the host calls Next once per slice of time budget and
// blits the RGBA buffer when it wants to refresh.
//
// The package has no syscall/js dependency so it builds and tests natively;
// the web target wires it to JavaScript.
package webbridge

import (
	"context"
	"fmt"

	"lumen/tracer"
)

// Default render configuration for hosts that pass nothing.
const (
	DefaultCanvasWidth = 1024
	DefaultRayNumber   = 50
	DefaultStrategy    = "normal"
)

// Config mirrors the host-side render configuration.
type Config struct {
	CanvasWidth int
	RayNumber   int
	Strategy    string
}

func (c Config) withDefaults() Config {
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = DefaultCanvasWidth
	}
	if c.RayNumber <= 0 {
		c.RayNumber = DefaultRayNumber
	}
	if c.Strategy == "" {
		c.Strategy = DefaultStrategy
	}
	return c
}

// Renderer renders a scene progressively into an RGBA byte buffer.
type Renderer struct {
	run    *tracer.Run
	cancel context.CancelFunc
	buf    []byte
	width  int
	height int
	err    error
}

// NewRenderer parses a TOML scene description and starts rendering it.
// The canvas height derives from the camera size ratio.
func NewRenderer(sceneTOML []byte, cfg Config) (*Renderer, error) {
	cfg = cfg.withDefaults()
	scene, err := tracer.ParseScene(sceneTOML)
	if err != nil {
		return nil, err
	}
	strategy, err := tracer.ParseStrategy(cfg.Strategy, cfg.RayNumber)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	run, err := tracer.Render(ctx, scene, tracer.Options{
		Width:    cfg.CanvasWidth,
		Strategy: strategy,
	})
	if err != nil {
		cancel()
		return nil, err
	}
	return &Renderer{
		run:    run,
		cancel: cancel,
		buf:    make([]byte, run.Width()*run.Height()*4),
		width:  run.Width(),
		height: run.Height(),
	}, nil
}

func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// Buffer exposes the RGBA pixel buffer the renderer fills.
func (r *Renderer) Buffer() []byte { return r.buf }

// Next renders one pixel into the buffer. It returns false once the render
// is finished or failed; Err distinguishes the two.
func (r *Renderer) Next() bool {
	p, ok := r.run.Next()
	if !ok {
		r.err = r.run.Wait()
		return false
	}
	i := (p.Y*r.width + p.X) * 4
	red, green, blue, alpha := p.Color.RGBA8()
	r.buf[i+0] = red
	r.buf[i+1] = green
	r.buf[i+2] = blue
	r.buf[i+3] = alpha
	return true
}

// Err reports a render failure after Next returned false.
func (r *Renderer) Err() error { return r.err }

// Close stops an unfinished render.
func (r *Renderer) Close() {
	r.cancel()
	for range r.run.Pixels() {
	}
}

// String describes the renderer for host-side logging.
func (r *Renderer) String() string {
	return fmt.Sprintf("webbridge.Renderer %dx%d", r.width, r.height)
}
