package display

import (
	"testing"

	"lumen/tracer"
)

func TestFramebufferSetSnapshot(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.Set(1, 1, tracer.NewColor(1, 0, 0))

	buf := make([]byte, 4*2*4)
	fb.Snapshot(buf)
	i := (1*4 + 1) * 4
	if buf[i] != 255 || buf[i+1] != 0 || buf[i+2] != 0 || buf[i+3] != 0xFF {
		t.Fatalf("pixel bytes=%v", buf[i:i+4])
	}
}

func TestFramebufferClipsOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	// Must not panic.
	fb.Set(-1, 0, tracer.White)
	fb.Set(0, 5, tracer.White)
	fb.Set(2, 0, tracer.White)
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(tracer.White)
	buf := make([]byte, 2*2*4)
	fb.Snapshot(buf)
	for i, b := range buf {
		if b != 255 {
			t.Fatalf("byte %d=%d after white clear", i, b)
		}
	}
}

func TestFramebufferDrawReportsOutOfCanvas(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	if err := fb.Draw(tracer.Pixel{X: 9, Y: 0}); err == nil {
		t.Fatalf("expected error for out-of-canvas pixel")
	}
	if err := fb.Draw(tracer.Pixel{X: 1, Y: 1, Color: tracer.White}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}
