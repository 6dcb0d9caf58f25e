// Package rendertest provides a Surface that records draw calls instead of
// producing pixels.
package rendertest

import (
	"image/color"
	"unicode/utf8"

	"github.com/bendazz/vector-practice/geometry"
	"github.com/bendazz/vector-practice/render"
)

const (
	MethodFit         = "Fit"
	MethodClear       = "Clear"
	MethodStrokeLine  = "StrokeLine"
	MethodFillPath    = "FillPath"
	MethodMeasureText = "MeasureText"
	MethodDrawText    = "DrawText"
)

// Call is one recorded Surface call. Only the fields relevant to Method are set.
type Call struct {
	Method string
	From   geometry.Vector
	To     geometry.Vector
	Width  float64
	Color  color.Color
	Path   *render.Path
	Text   string
}

// Recorder is a render.Surface with a fixed size.
type Recorder struct {
	Width, Height float64

	// CharWidth is the advance MeasureText reports for every rune.
	CharWidth float64

	Calls []Call
}

var _ render.Surface = (*Recorder)(nil)

func New(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, CharWidth: 8}
}

func (r *Recorder) Fit() (float64, float64) {
	r.Calls = append(r.Calls, Call{Method: MethodFit})
	return r.Width, r.Height
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Method: MethodClear})
}

func (r *Recorder) StrokeLine(from, to geometry.Vector, width float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Method: MethodStrokeLine, From: from, To: to, Width: width, Color: c})
}

func (r *Recorder) FillPath(p *render.Path, c color.Color) {
	r.Calls = append(r.Calls, Call{Method: MethodFillPath, Path: p, Color: c})
}

func (r *Recorder) MeasureText(s string) float64 {
	r.Calls = append(r.Calls, Call{Method: MethodMeasureText, Text: s})
	return float64(utf8.RuneCountInString(s)) * r.CharWidth
}

func (r *Recorder) DrawText(s string, at geometry.Vector, c color.Color) {
	r.Calls = append(r.Calls, Call{Method: MethodDrawText, Text: s, To: at, Color: c})
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Filter returns the calls of the given method, optionally limited to one
// colour (nil matches every colour).
func (r *Recorder) Filter(method string, c color.Color) []Call {
	var out []Call
	for _, call := range r.Calls {
		if call.Method != method {
			continue
		}
		if c != nil && call.Color != c {
			continue
		}
		out = append(out, call)
	}
	return out
}

// Texts returns the drawn label strings in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, call := range r.Filter(MethodDrawText, nil) {
		out = append(out, call.Text)
	}
	return out
}
