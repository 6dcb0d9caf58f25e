package render

import "image/color"

// Palette is the set of colours used by the plots.
type Palette struct {
	Grid       color.RGBA
	Axis       color.RGBA
	A          color.RGBA
	B          color.RGBA
	Sum        color.RGBA
	LabelBG    color.NRGBA
	Background color.RGBA
}

var DefaultPalette = Palette{
	Grid:       color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
	Axis:       color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
	A:          color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff},
	B:          color.RGBA{R: 0xf4, G: 0x72, B: 0xb6, A: 0xff},
	Sum:        color.RGBA{R: 0x34, G: 0xd3, B: 0x99, A: 0xff},
	LabelBG:    color.NRGBA{R: 0, G: 0, B: 0, A: 0x59}, // 35% black
	Background: color.RGBA{R: 0x0b, G: 0x12, B: 0x20, A: 0xff},
}
