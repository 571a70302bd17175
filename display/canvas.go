package display

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"lumen/tracer"
)

// Canvas receives rendered pixels.
type Canvas interface {
	Draw(p tracer.Pixel) error
}

// ImageCanvas draws into an in-memory image for PNG export.
type ImageCanvas struct {
	img *image.RGBA
}

func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *ImageCanvas) Draw(p tracer.Pixel) error {
	b := c.img.Bounds()
	if p.X < b.Min.X || p.Y < b.Min.Y || p.X >= b.Max.X || p.Y >= b.Max.Y {
		return fmt.Errorf("display: pixel (%d,%d) outside %dx%d image", p.X, p.Y, b.Dx(), b.Dy())
	}
	r, g, bb, a := p.Color.RGBA8()
	c.img.SetRGBA(p.X, p.Y, color.RGBA{R: r, G: g, B: bb, A: a})
	return nil
}

func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// WritePNG encodes the canvas content.
func (c *ImageCanvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("display: encode png: %w", err)
	}
	return nil
}

// NopCanvas discards pixels. Useful for benchmarks and dry runs.
type NopCanvas struct{}

func (NopCanvas) Draw(tracer.Pixel) error { return nil }
