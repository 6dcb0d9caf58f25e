package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bendazz/vector-practice/geometry"
	"github.com/bendazz/vector-practice/plot"
	"github.com/bendazz/vector-practice/render"
)

// plotPanel renders one plot offscreen and shows it in the window.
type plotPanel struct {
	layout plot.Layout
	rect   rect

	raster *render.Raster
	img    *ebiten.Image
}

func newPlotPanel(layout plot.Layout) *plotPanel {
	r := render.NewRaster(0, 0, 1)
	r.Background = render.DefaultPalette.Background
	return &plotPanel{layout: layout, raster: r}
}

// place moves the panel and reports whether its pixel size changed.
func (p *plotPanel) place(r rect, dpr float64) bool {
	resized := r.w != p.rect.w || r.h != p.rect.h || dpr != p.raster.DevicePixelRatio()
	p.rect = r
	if resized {
		p.raster.SetDisplay(r.w, r.h, dpr)
	}
	return resized
}

// upload copies the rendered plot into the ebiten image, reallocating it only
// when the raster changed size.
func (p *plotPanel) upload() {
	src := p.raster.Image()
	if src == nil || src.Bounds().Empty() {
		return
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if p.img == nil || p.img.Bounds().Dx() != w || p.img.Bounds().Dy() != h {
		if p.img != nil {
			p.img.Deallocate()
		}
		p.img = ebiten.NewImage(w, h)
	}
	p.img.WritePixels(src.Pix)
}

func (p *plotPanel) draw(screen *ebiten.Image, face *text.GoTextFace, dpr float64) {
	drawLabel(screen, p.layout.Title(), face, p.rect.x, p.rect.y-8, dpr, textColor)

	r := p.rect.scale(dpr)
	if p.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.x, r.y)
		screen.DrawImage(p.img, op)
	}
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), float32(dpr), borderColor, true)
}

// worldAt converts a cursor position in logical units to world coordinates
// using the scale the plot was drawn with.
func (p *plotPanel) worldAt(mx, my float64, pair geometry.VectorPair) (geometry.Vector, bool) {
	if !p.rect.contains(mx, my) {
		return geometry.Vector{}, false
	}
	unitPx := geometry.AutoscaleUnitPx(pair, p.rect.w, p.rect.h)
	x, y := geometry.CanvasToWorld(mx-p.rect.x, my-p.rect.y, unitPx, p.rect.w, p.rect.h)
	return geometry.Vector{X: x, Y: y}, true
}
