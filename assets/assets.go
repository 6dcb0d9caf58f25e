package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	// LabelFont is the bold face used for vector labels on the plots.
	LabelFont *opentype.Font

	// UITTF is the regular face used by the window's controls.
	UITTF = goregular.TTF
)

func init() {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
	LabelFont = f
}

// LabelFace returns the label font at sizePx device pixels.
func LabelFace(sizePx float64) (font.Face, error) {
	face, err := opentype.NewFace(LabelFont, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72, // one point per pixel
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label face at %.1fpx: %w", sizePx, err)
	}
	return face, nil
}
