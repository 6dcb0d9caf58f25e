package app

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/bendazz/vector-practice/assets"
)

const uiFontSize = 14.0

var (
	textColor           = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	mutedTextColor      = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	borderColor         = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	focusColor          = color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}
	fieldColor          = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	buttonColor         = color.RGBA{R: 0x1e, G: 0x3a, B: 0x8a, A: 0xff}
	buttonHoverColor    = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	buttonDisabledColor = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
)

// rect is an axis-aligned rectangle.
type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// scale converts logical units to device pixels.
func (r rect) scale(dpr float64) rect {
	return rect{x: r.x * dpr, y: r.y * dpr, w: r.w * dpr, h: r.h * dpr}
}

func newUIFaceSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(assets.UITTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load ui font: %w", err)
	}
	return src, nil
}

// drawCentered draws s centred in r, which is in device pixels.
func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, r rect, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.x+r.w/2, r.y+r.h/2)
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawLabel draws s with its bottom-left corner at (x, y) in logical units.
func drawLabel(screen *ebiten.Image, s string, face *text.GoTextFace, x, y, dpr float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*dpr, y*dpr)
	op.LayoutOptions.SecondaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
