package gui

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/mlai-aus/arcade/internal/core"
)

var background = color.RGBA{12, 12, 24, 255}

// blockShade returns the coverage of a block-drawing rune.
func blockShade(r rune) (float64, bool) {
	switch r {
	case '█':
		return 1, true
	case '▓':
		return 0.75, true
	case '▒':
		return 0.5, true
	case '░':
		return 0.25, true
	}
	return 0, false
}

// cellColor converts a cell colour to RGBA, dimming faint cells.
func cellColor(c core.Color, faint bool, alpha float64) color.RGBA {
	p, ok := core.Palette[c]
	if !ok {
		p = core.Palette[core.ColorDefault]
	}
	if faint {
		alpha *= 0.5
	}
	a := core.ClampF(alpha, 0, 1)
	// Premultiplied, as ebiten expects.
	return color.RGBA{
		R: uint8(float64(p.R) * a),
		G: uint8(float64(p.G) * a),
		B: uint8(float64(p.B) * a),
		A: uint8(255 * a),
	}
}

// Draw paints the game's cell screen, then its sprites.
func (w *Window) Draw(dst *ebiten.Image) {
	dst.Fill(background)

	w.screen.Clear()
	w.game.Render(w.screen)

	for y := range w.screen.Height() {
		for x := range w.screen.Width() {
			w.drawCell(dst, x, y, w.screen.GetCell(x, y))
		}
	}

	sprites := append([]core.Sprite(nil), w.screen.Sprites()...)
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Depth < sprites[j].Depth
	})
	for _, sp := range sprites {
		w.drawSprite(dst, sp)
	}
}

func (w *Window) drawCell(dst *ebiten.Image, x, y int, c core.Cell) {
	if c.Rune == ' ' || c.Rune == 0 {
		return
	}
	px, py := float64(x*CellW), float64(y*CellH)

	if shade, ok := blockShade(c.Rune); ok {
		ebitenutil.DrawRect(dst, px, py, CellW, CellH, cellColor(c.Color, c.Faint, shade))
		return
	}
	if c.Color != core.ColorDefault {
		ebitenutil.DrawRect(dst, px, py+CellH-2, CellW, 2, cellColor(c.Color, c.Faint, 0.8))
	}
	ebitenutil.DebugPrintAt(dst, string(c.Rune), x*CellW+1, y*CellH)
}

// drawSprite scales the cached image into the sprite's cell box.
func (w *Window) drawSprite(dst *ebiten.Image, sp core.Sprite) {
	img := w.image(sp.Key)
	if img == nil || sp.W <= 0 || sp.H <= 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	wPx, hPx := sp.W*CellW, sp.H*CellH
	scale := min(wPx/float64(b.Dx()), hPx/float64(b.Dy()))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		sp.X*CellW-float64(b.Dx())*scale/2,
		sp.Y*CellH-float64(b.Dy())*scale/2,
	)
	op.ColorScale.ScaleAlpha(float32(core.ClampF(sp.Alpha, 0, 1)))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// image returns the GPU image for an asset path, converting it on first use.
func (w *Window) image(key string) *ebiten.Image {
	if img, ok := w.images[key]; ok {
		return img
	}
	if w.opts.Assets == nil {
		return nil
	}
	a, ok := w.opts.Assets.Get(key)
	if !ok || a.Image == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(a.Image)
	w.images[key] = img
	return img
}
