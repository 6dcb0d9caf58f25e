package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bendazz/vector-practice/widget"
)

// button is a clickable rectangle in logical window units.
type button struct {
	label   string
	rect    rect
	click   widget.Click
	onClick func()

	// disabled is consulted every frame; a nil func means always enabled.
	disabled func() bool
}

func newButton(label string, onClick func()) *button {
	return &button{label: label, onClick: onClick}
}

func (b *button) enabled() bool {
	return b.disabled == nil || !b.disabled()
}

// update fires onClick when a press and its release both land on the button.
func (b *button) update(mx, my float64, justPressed, justReleased bool) {
	if b.click.Update(b.rect.contains(mx, my), justPressed, justReleased) && b.enabled() && b.onClick != nil {
		b.onClick()
	}
}

func (b *button) draw(screen *ebiten.Image, face *text.GoTextFace, dpr, mx, my float64) {
	bg := buttonColor
	switch {
	case !b.enabled():
		bg = buttonDisabledColor
	case b.rect.contains(mx, my):
		bg = buttonHoverColor
	}

	r := b.rect.scale(dpr)
	vector.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, true)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), float32(dpr), borderColor, true)

	fg := color.Color(textColor)
	if !b.enabled() {
		fg = mutedTextColor
	}
	drawCentered(screen, b.label, face, r, fg)
}
