//go:build !js

package display

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that presents the framebuffer while a
// render goroutine fills it. It blocks until the window closes (or Escape
// is pressed) and returns nil on a user-initiated close.
func RunWindow(title string, fb *Framebuffer) error {
	g := &game{fb: fb}
	ebiten.SetWindowTitle(title)
	w, h := fb.Width(), fb.Height()
	if w < 320 {
		w, h = w*2, h*2
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	fb      *Framebuffer
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.fb.Width(), g.fb.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, w*h*4)
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.fb.Snapshot(g.scratch)
	copy(g.img.Pix, g.scratch)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
