package webbridge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lumen/tracer"
)

func sampleScene(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "tracer", "testdata", "ok_basic.toml"))
	if err != nil {
		t.Fatalf("read sample scene: %v", err)
	}
	return data
}

func TestNewRendererDefaults(t *testing.T) {
	r, err := NewRenderer(sampleScene(t), Config{CanvasWidth: 64})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer r.Close()
	if r.Width() != 64 {
		t.Fatalf("Width=%d, want 64", r.Width())
	}
	// 64 / (32/18) = 36.
	if r.Height() != 36 {
		t.Fatalf("Height=%d, want 36", r.Height())
	}
	if len(r.Buffer()) != 64*36*4 {
		t.Fatalf("buffer len=%d, want %d", len(r.Buffer()), 64*36*4)
	}
}

func TestRendererDrainsAllPixels(t *testing.T) {
	r, err := NewRenderer(sampleScene(t), Config{CanvasWidth: 32})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	n := 0
	for r.Next() {
		n++
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if want := 32 * 18; n != want {
		t.Fatalf("rendered %d pixels, want %d", n, want)
	}
	// Every alpha byte of the buffer must be opaque once done.
	buf := r.Buffer()
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0xFF {
			t.Fatalf("alpha byte %d=%d, want 0xFF", i, buf[i])
		}
	}
}

func TestNewRendererBadScene(t *testing.T) {
	if _, err := NewRenderer([]byte(`not a scene`), Config{}); !errors.Is(err, tracer.ErrParse) {
		t.Fatalf("err=%v, want ErrParse", err)
	}
}

func TestNewRendererBadStrategy(t *testing.T) {
	if _, err := NewRenderer(sampleScene(t), Config{Strategy: "cubic"}); err == nil {
		t.Fatalf("expected strategy error")
	}
}

func TestNewRendererNoLight(t *testing.T) {
	doc := []byte(`
[camera]
position = [0.0, 0.0, 0.0]
target = [0.0, 0.0, 1.0]
width = 16.0
height = 9.0
angle = 0.4
`)
	if _, err := NewRenderer(doc, Config{CanvasWidth: 8}); !errors.Is(err, tracer.ErrNoLight) {
		t.Fatalf("err=%v, want ErrNoLight", err)
	}
}
