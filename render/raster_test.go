package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/bendazz/vector-practice/geometry"
	"github.com/bendazz/vector-practice/render"
)

var black = color.RGBA{A: 0xff}

func TestRasterFit(t *testing.T) {
	r := render.NewRaster(100, 50, 2)
	if b := r.Image().Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("backing size = %v; want 200x100", b)
	}

	img := r.Image()
	w, h := r.Fit()
	if w != 100 || h != 50 {
		t.Errorf("Fit() = (%v, %v); want (100, 50)", w, h)
	}
	if r.Image() != img {
		t.Error("Fit reallocated an already correctly sized buffer")
	}

	r.SetDisplay(60.7, 40, 1.5)
	r.Fit()
	if b := r.Image().Bounds(); b.Dx() != 91 || b.Dy() != 60 {
		t.Errorf("backing size after resize = %v; want 91x60", b)
	}
}

func TestRasterFitFallsBackToBackingSize(t *testing.T) {
	r := render.NewRaster(30, 20, 1)
	r.SetDisplay(0, math.NaN(), 1)

	w, h := r.Fit()
	if w != 30 || h != 20 {
		t.Errorf("Fit() = (%v, %v); want (30, 20)", w, h)
	}
}

func TestRasterInvalidDevicePixelRatio(t *testing.T) {
	for _, dpr := range []float64{0, -2, math.Inf(1), math.NaN()} {
		r := render.NewRaster(10, 10, dpr)
		if r.DevicePixelRatio() != 1 {
			t.Errorf("NewRaster(dpr=%v).DevicePixelRatio() = %v; want 1", dpr, r.DevicePixelRatio())
		}
	}
}

func TestRasterEmptySurface(t *testing.T) {
	r := render.NewRaster(0, 0, 1)
	r.Clear()
	r.StrokeLine(geometry.Vector{}, geometry.Vector{X: 10, Y: 10}, 2, black)
	r.FillPath(new(render.Path).MoveTo(geometry.Vector{}).LineTo(geometry.Vector{X: 5}).Close(), black)
	r.DrawText("a", geometry.Vector{X: 1, Y: 1}, black)
}

func TestRasterStrokeLine(t *testing.T) {
	r := render.NewRaster(100, 100, 1)
	r.Background = black
	r.Clear()

	red := color.RGBA{R: 0xff, A: 0xff}
	r.StrokeLine(geometry.Vector{X: 10, Y: 50}, geometry.Vector{X: 90, Y: 50}, 4, red)

	img := r.Image()
	if got := img.RGBAAt(50, 50); got.R < 0xf0 || got.G != 0 {
		t.Errorf("pixel on the line = %v; want red", got)
	}
	if got := img.RGBAAt(50, 20); got != black {
		t.Errorf("pixel off the line = %v; want background", got)
	}
	if got := img.RGBAAt(95, 50); got != black {
		t.Errorf("pixel past the end = %v; want background", got)
	}
}

func TestRasterStrokeLineScalesWithDevicePixelRatio(t *testing.T) {
	r := render.NewRaster(50, 50, 2)
	r.Background = black
	r.Clear()

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	r.StrokeLine(geometry.Vector{X: 25, Y: 0}, geometry.Vector{X: 25, Y: 50}, 2, white)

	img := r.Image()
	// display x=25 maps to device x=50; a 2 unit stroke covers device 48..52
	for _, x := range []int{48, 49, 50, 51} {
		if got := img.RGBAAt(x, 60); got.R < 0xf0 {
			t.Errorf("device pixel (%d, 60) = %v; want white", x, got)
		}
	}
	if got := img.RGBAAt(45, 60); got != black {
		t.Errorf("device pixel (45, 60) = %v; want background", got)
	}
}

func TestRasterFillPath(t *testing.T) {
	r := render.NewRaster(40, 40, 1)
	r.Background = black
	r.Clear()

	green := color.RGBA{G: 0xff, A: 0xff}
	square := new(render.Path).
		MoveTo(geometry.Vector{X: 10, Y: 10}).
		LineTo(geometry.Vector{X: 30, Y: 10}).
		LineTo(geometry.Vector{X: 30, Y: 30}).
		LineTo(geometry.Vector{X: 10, Y: 30}).
		Close()
	r.FillPath(square, green)

	img := r.Image()
	if got := img.RGBAAt(20, 20); got.G < 0xf0 || got.R != 0 {
		t.Errorf("inside pixel = %v; want %v", got, green)
	}
	if got := img.RGBAAt(5, 5); got != black {
		t.Errorf("outside pixel = %v; want background", got)
	}
}

func TestRasterText(t *testing.T) {
	r := render.NewRaster(80, 40, 1)
	r.Background = black
	r.Clear()

	w := r.MeasureText("a+b")
	if w <= 0 || w > 40 {
		t.Fatalf("MeasureText(a+b) = %v", w)
	}

	r.DrawText("a+b", geometry.Vector{X: 10, Y: 25}, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	img := r.Image()
	lit := 0
	for y := 10; y < 26; y++ {
		for x := 10; x < 10+int(math.Ceil(w)); x++ {
			if img.RGBAAt(x, y) != black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawText left the text box untouched")
	}

	hidpi := render.NewRaster(80, 40, 2)
	if w2 := hidpi.MeasureText("a+b"); math.Abs(w2-w) > 2 {
		t.Errorf("MeasureText at dpr 2 = %v; want about %v", w2, w)
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := render.NewRaster(16, 8, 1)
	r.Background = black
	r.Clear()

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("decoded size = %v; want 16x8", b)
	}
}
