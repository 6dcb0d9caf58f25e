package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bendazz/vector-practice/widget"
)

// input places a widget.Field on screen.
type input struct {
	field *widget.Field
	rect  rect
}

func (in *input) draw(screen *ebiten.Image, face *text.GoTextFace, dpr float64, focused bool) {
	r := in.rect.scale(dpr)

	border := borderColor
	if focused {
		border = focusColor
	}
	vector.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fieldColor, true)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), float32(dpr), border, true)

	s := in.field.Text()
	if focused {
		s += "_"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.x+8*dpr, r.y+r.h/2)
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, face, op)

	drawLabel(screen, in.field.Label, face, in.rect.x, in.rect.y-6, dpr, mutedTextColor)
}
