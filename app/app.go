// Package app is the desktop front end: an ebiten window with the vector
// fields, the randomize range, the reveal controls and both plots.
package app

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/bendazz/vector-practice/config"
	"github.com/bendazz/vector-practice/generator"
	"github.com/bendazz/vector-practice/logger"
	"github.com/bendazz/vector-practice/plot"
	"github.com/bendazz/vector-practice/render"
	"github.com/bendazz/vector-practice/widget"
)

const (
	margin       = 20.0
	controlWidth = 260.0
	fieldWidth   = 110.0
	fieldHeight  = 30.0
	buttonHeight = 34.0
	rowGap       = 52.0
	minPlotSize  = 120.0
)

type App struct {
	cfg    *config.Config
	state  *widget.State
	logger logger.Logger

	inputs  []*input
	focus   int // index into inputs, -1 when nothing is focused
	buttons []*button
	panels  []*plotPanel

	face *text.GoTextFace

	// logical window size and device pixel ratio from the last Layout
	width, height float64
	dpr           float64

	cursorText string
}

func New(cfg *config.Config) (*App, error) {
	log := logger.New(cfg.GetLogLevel())

	src, err := newUIFaceSource()
	if err != nil {
		return nil, err
	}

	gen := generator.New(uint64(time.Now().UnixNano()), cfg.GetGeneratorMaxAttempts(), log)
	a := &App{
		cfg:    cfg,
		state:  widget.New(cfg.GetInitialPair(), cfg.GetRangeMin(), cfg.GetRangeMax(), gen, log),
		logger: log,
		focus:  -1,
		face:   &text.GoTextFace{Source: src, Size: uiFontSize},
		dpr:    1,
	}

	for _, f := range a.state.Fields() {
		a.inputs = append(a.inputs, &input{field: f})
	}

	randomize := newButton("Randomize", func() { a.state.Randomize() })
	reveal := newButton("Reveal", a.state.Reveal)
	reveal.disabled = a.state.Visible
	hide := newButton("Hide", a.state.Hide)
	hide.disabled = func() bool { return !a.state.Visible() }
	a.buttons = []*button{randomize, reveal, hide}

	for _, layout := range plot.Layouts {
		a.panels = append(a.panels, newPlotPanel(layout))
	}

	a.logger.Info("app initialized",
		"pair", a.state.Pair().String(),
		"range_min", cfg.GetRangeMin(),
		"range_max", cfg.GetRangeMax(),
	)
	return a, nil
}

func (a *App) Run() error {
	a.logger.Info("starting app")
	a.setupWindow()

	return ebiten.RunGame(a)
}

func (a *App) setupWindow() {
	ebiten.SetWindowSize(a.cfg.GetWindowWidth(), a.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(a.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

func (a *App) Update() error {
	a.arrange()

	mx, my := a.cursor()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if justPressed {
		a.focusAt(mx, my)
	}
	for _, b := range a.buttons {
		b.update(mx, my, justPressed, justReleased)
	}

	if a.focus >= 0 {
		a.updateFocused()
	} else if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.state.Randomize()
	}

	if a.state.Sync(a.surfaces()) {
		for _, p := range a.panels {
			p.upload()
		}
	}

	a.updateCursorText(mx, my)
	return nil
}

// arrange lays out the controls and sizes the plots for the current window.
func (a *App) arrange() {
	x, y := margin, margin+24
	for i, in := range a.inputs {
		col := float64(i % 2)
		in.rect = rect{x: x + col*(fieldWidth+margin), y: y + float64(i/2)*rowGap, w: fieldWidth, h: fieldHeight}
	}

	y += float64((len(a.inputs)+1)/2) * rowGap
	for i, b := range a.buttons {
		if i == 0 {
			b.rect = rect{x: x, y: y, w: controlWidth - margin/2, h: buttonHeight}
			y += buttonHeight + margin/2
			continue
		}
		col := float64(i - 1)
		b.rect = rect{x: x + col*(fieldWidth+margin), y: y, w: fieldWidth, h: buttonHeight}
	}

	left := margin*2 + controlWidth
	size := a.plotSize(left)
	resized := false
	for i, p := range a.panels {
		r := rect{x: left + float64(i)*(size.w+margin), y: margin + 24, w: size.w, h: size.h}
		if p.place(r, a.dpr) {
			resized = true
		}
	}
	if resized {
		a.logger.Debug("plots resized", "width", size.w, "height", size.h, "dpr", a.dpr)
		a.state.Invalidate()
	}
}

// plotSize fits the configured plot size into the space right of left.
func (a *App) plotSize(left float64) rect {
	w := float64(a.cfg.GetPlotWidth())
	h := float64(a.cfg.GetPlotHeight())

	n := float64(len(a.panels))
	if avail := (a.width - left - margin*n) / n; avail < w {
		w = avail
	}
	if avail := a.height - margin*2 - 24; avail < h {
		h = avail
	}
	return rect{w: math.Floor(math.Max(w, minPlotSize)), h: math.Floor(math.Max(h, minPlotSize))}
}

func (a *App) surfaces() map[plot.Layout]render.Surface {
	surfaces := make(map[plot.Layout]render.Surface, len(a.panels))
	for _, p := range a.panels {
		surfaces[p.layout] = p.raster
	}
	return surfaces
}

// cursor returns the mouse position in logical units.
func (a *App) cursor() (float64, float64) {
	cx, cy := ebiten.CursorPosition()
	return float64(cx) / a.dpr, float64(cy) / a.dpr
}

func (a *App) focusAt(mx, my float64) {
	for i, in := range a.inputs {
		if in.rect.contains(mx, my) {
			a.setFocus(i)
			return
		}
	}
	a.setFocus(-1)
}

// setFocus moves the focus, normalizing the text of the field it leaves.
func (a *App) setFocus(i int) {
	if a.focus == i {
		return
	}
	if a.focus >= 0 {
		a.inputs[a.focus].field.Normalize()
	}
	a.focus = i
}

func (a *App) updateFocused() {
	f := a.inputs[a.focus].field
	changed := false

	for _, r := range ebiten.AppendInputChars(nil) {
		if f.Insert(r) {
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && f.Backspace() {
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		f.Step(1)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		f.Step(-1)
		changed = true
	}
	if changed {
		a.state.FieldChanged(f)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = len(a.inputs) - 1
		}
		a.setFocus((a.focus + step) % len(a.inputs))
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.setFocus(-1)
	}
}

func (a *App) updateCursorText(mx, my float64) {
	a.cursorText = ""
	if !a.state.Visible() {
		return
	}
	pair := a.state.Pair()
	for _, p := range a.panels {
		if w, ok := p.worldAt(mx, my, pair); ok {
			a.cursorText = fmt.Sprintf("cursor: (%.1f, %.1f)", w.X, w.Y)
			return
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(render.DefaultPalette.Background)

	face := &text.GoTextFace{Source: a.face.Source, Size: uiFontSize * a.dpr}
	mx, my := a.cursor()

	drawLabel(screen, "Vectors and range", face, margin, margin+4, a.dpr, textColor)
	for i, in := range a.inputs {
		in.draw(screen, face, a.dpr, i == a.focus)
	}
	for _, b := range a.buttons {
		b.draw(screen, face, a.dpr, mx, my)
	}

	last := a.buttons[len(a.buttons)-1].rect
	y := last.y + last.h + margin*2
	sum := "a + b = ?"
	if a.state.Visible() {
		sum = "a + b = " + a.state.SumText()
	}
	drawLabel(screen, sum, face, margin, y, a.dpr, textColor)
	drawLabel(screen, a.cursorText, face, margin, y+rowGap/2, a.dpr, mutedTextColor)
	drawLabel(screen, "R randomizes, arrows step the focused field", face, margin, a.height-margin, a.dpr, mutedTextColor)

	if !a.state.Visible() {
		drawLabel(screen, "Press Reveal to show the plots", face, margin*2+controlWidth, margin+24, a.dpr, mutedTextColor)
		return
	}
	for _, p := range a.panels {
		p.draw(screen, face, a.dpr)
	}
}

// Layout makes the screen match the window in device pixels so plots are
// drawn one backing pixel per screen pixel.
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	a.width, a.height = float64(outsideWidth), float64(outsideHeight)
	a.dpr = a.devicePixelRatio()
	return int(math.Ceil(a.width * a.dpr)), int(math.Ceil(a.height * a.dpr))
}

func (a *App) devicePixelRatio() float64 {
	if dpr := a.cfg.GetDevicePixelRatio(); dpr > 0 {
		return dpr
	}
	if m := ebiten.Monitor(); m != nil {
		if dpr := m.DeviceScaleFactor(); dpr > 0 {
			return dpr
		}
	}
	return 1
}
