// Package display presents progressively rendered pixels: a shared
// framebuffer with a desktop window presenter, and image canvases for
// file output.
package display

import (
	"fmt"
	"sync"

	"lumen/tracer"
)

// Framebuffer is a mutex-guarded RGBA pixel buffer shared between render
// workers and a presenter.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte // 4 bytes per pixel, row-major
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*4),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Set writes one pixel. Out-of-bounds coordinates are clipped.
func (f *Framebuffer) Set(x, y int, c tracer.Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	r, g, b, a := c.RGBA8()
	i := (y*f.width + x) * 4
	f.mu.Lock()
	f.buf[i+0] = r
	f.buf[i+1] = g
	f.buf[i+2] = b
	f.buf[i+3] = a
	f.mu.Unlock()
}

func (f *Framebuffer) Clear(c tracer.Color) {
	r, g, b, a := c.RGBA8()
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < len(f.buf); i += 4 {
		f.buf[i+0] = r
		f.buf[i+1] = g
		f.buf[i+2] = b
		f.buf[i+3] = a
	}
}

// Snapshot copies the current buffer into dst, which must hold
// Width*Height*4 bytes.
func (f *Framebuffer) Snapshot(dst []byte) {
	f.mu.Lock()
	copy(dst, f.buf)
	f.mu.Unlock()
}

// Draw implements Canvas.
func (f *Framebuffer) Draw(p tracer.Pixel) error {
	if p.X < 0 || p.Y < 0 || p.X >= f.width || p.Y >= f.height {
		return fmt.Errorf("display: pixel (%d,%d) outside %dx%d framebuffer", p.X, p.Y, f.width, f.height)
	}
	f.Set(p.X, p.Y, p.Color)
	return nil
}
