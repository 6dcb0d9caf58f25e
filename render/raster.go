package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/bendazz/vector-practice/assets"
	"github.com/bendazz/vector-practice/geometry"
)

// labelFontSize is the label text size in display units.
const labelFontSize = 13.0

// Raster is an offscreen Surface backed by an RGBA image. Drawing happens in
// display units; the backing image is display size times the device pixel
// ratio so strokes and text stay crisp on HiDPI screens.
type Raster struct {
	// Background is painted by Clear. The zero value clears to transparent.
	Background color.Color

	displayW, displayH float64
	dpr                float64

	img  *image.RGBA
	rast *vector.Rasterizer
	ctm  matrix.Matrix

	face    font.Face
	faceDPR float64
}

// NewRaster creates a surface for a width x height display area.
func NewRaster(width, height, dpr float64) *Raster {
	r := &Raster{}
	r.SetDisplay(width, height, dpr)
	r.Fit()
	return r
}

// SetDisplay records the live display size and device pixel ratio. The
// backing image follows on the next Fit.
func (r *Raster) SetDisplay(width, height, dpr float64) {
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	r.displayW, r.displayH, r.dpr = width, height, dpr
}

// DevicePixelRatio returns the ratio between backing pixels and display units.
func (r *Raster) DevicePixelRatio() float64 {
	return r.dpr
}

// Fit implements Surface. An unset display size falls back to the current
// backing size.
func (r *Raster) Fit() (width, height float64) {
	width, height = r.displayW, r.displayH
	if !(width > 0) || math.IsInf(width, 0) {
		width = r.backingDim(func(b image.Rectangle) int { return b.Dx() })
	}
	if !(height > 0) || math.IsInf(height, 0) {
		height = r.backingDim(func(b image.Rectangle) int { return b.Dy() })
	}

	bw := int(math.Floor(width * r.dpr))
	bh := int(math.Floor(height * r.dpr))
	if r.img == nil || r.img.Bounds().Dx() != bw || r.img.Bounds().Dy() != bh {
		r.img = image.NewRGBA(image.Rect(0, 0, bw, bh))
		r.rast = vector.NewRasterizer(bw, bh)
	}

	r.ctm = matrix.Matrix{r.dpr, 0, 0, r.dpr, 0, 0}
	r.ensureFace()
	return width, height
}

func (r *Raster) backingDim(dim func(image.Rectangle) int) float64 {
	if r.img == nil {
		return 0
	}
	return float64(dim(r.img.Bounds()))
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// EncodePNG writes the backing image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) Clear() {
	if r.img == nil {
		return
	}
	bg := r.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (r *Raster) StrokeLine(from, to geometry.Vector, width float64, c color.Color) {
	if r.empty() {
		return
	}
	a, b := r.device(from), r.device(to)
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		// butt caps: a zero-length segment covers nothing
		return
	}

	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width * r.dpr / 2 / length)
	r.rast.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	r.moveTo(a.Add(n))
	r.lineTo(b.Add(n))
	r.lineTo(b.Sub(n))
	r.lineTo(a.Sub(n))
	r.rast.ClosePath()
	r.rast.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Raster) FillPath(p *Path, c color.Color) {
	if r.empty() || p == nil {
		return
	}
	r.rast.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case OpMoveTo:
			r.moveTo(r.device(cmd.Points[0]))
		case OpLineTo:
			r.lineTo(r.device(cmd.Points[0]))
		case OpQuadTo:
			ctrl, end := r.device(cmd.Points[0]), r.device(cmd.Points[1])
			r.rast.QuadTo(float32(ctrl.X), float32(ctrl.Y), float32(end.X), float32(end.Y))
		case OpClose:
			r.rast.ClosePath()
		}
	}
	r.rast.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Raster) MeasureText(s string) float64 {
	r.ensureFace()
	return float64(font.MeasureString(r.face, s)) / 64 / r.dpr
}

func (r *Raster) DrawText(s string, at geometry.Vector, c color.Color) {
	if r.empty() {
		return
	}
	r.ensureFace()
	p := r.device(at)
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(math.Round(p.X * 64)), Y: fixed.Int26_6(math.Round(p.Y * 64))},
	}
	d.DrawString(s)
}

// device applies the CTM to a point in display units.
func (r *Raster) device(p geometry.Vector) vec.Vec2 {
	m := r.ctm
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func (r *Raster) moveTo(p vec.Vec2) {
	r.rast.MoveTo(float32(p.X), float32(p.Y))
}

func (r *Raster) lineTo(p vec.Vec2) {
	r.rast.LineTo(float32(p.X), float32(p.Y))
}

func (r *Raster) empty() bool {
	return r.img == nil || r.img.Bounds().Empty()
}

// ensureFace builds the label face for the current device pixel ratio.
func (r *Raster) ensureFace() {
	if r.face != nil && r.faceDPR == r.dpr {
		return
	}
	face, err := assets.LabelFace(labelFontSize * r.dpr)
	if err != nil {
		// fixed 7x13 face, unscaled
		r.face, r.faceDPR = basicfont.Face7x13, r.dpr
		return
	}
	r.face, r.faceDPR = face, r.dpr
}
