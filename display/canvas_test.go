package display

import (
	"bytes"
	"image/png"
	"testing"

	"lumen/tracer"
)

func TestImageCanvasPNGRoundTrip(t *testing.T) {
	c := NewImageCanvas(8, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if err := c.Draw(tracer.Pixel{X: x, Y: y, Color: tracer.NewColor(0.5, 0.5, 0.5)}); err != nil {
				t.Fatalf("Draw(%d,%d): %v", x, y, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("decoded size=%dx%d, want 8x4", b.Dx(), b.Dy())
	}
}

func TestImageCanvasRejectsOutOfBounds(t *testing.T) {
	c := NewImageCanvas(2, 2)
	if err := c.Draw(tracer.Pixel{X: 2, Y: 0}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNopCanvas(t *testing.T) {
	if err := (NopCanvas{}).Draw(tracer.Pixel{X: -100, Y: -100}); err != nil {
		t.Fatalf("NopCanvas.Draw: %v", err)
	}
}
