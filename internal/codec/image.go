package codec

import (
	"fmt"
	"image"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// GlyphRamp maps luminance to glyphs, darkest first.
const GlyphRamp = " .:-=+*#%@"

var rampRunes = []rune(GlyphRamp)

// Fill is one imported cell: a glyph for canvas position (X, Y).
type Fill struct {
	X, Y  int
	Glyph rune
}

// ImportImage decodes the image at path and converts it to a width x
// height block of fills, one per cell, in row-major order.
func ImportImage(path string, width, height int) ([]Fill, error) {
	if width <= 0 || height <= 0 {
		return nil, newError("import", path, ErrInvalidSize, fmt.Errorf("%dx%d", width, height))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, newError("import", path, ErrUnreadableImage, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, newError("import", path, ErrUnreadableImage, err)
	}
	return ConvertImage(img, width, height), nil
}

// ConvertImage scales img to width x height and maps each pixel's
// luminance to a glyph of GlyphRamp.
func ConvertImage(img image.Image, width, height int) []Fill {
	// Scaling into a Gray image converts with the ITU-R 601 luma weights.
	gray := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(gray, gray.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	fills := make([]Fill, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fills = append(fills, Fill{X: x, Y: y, Glyph: GlyphFor(gray.GrayAt(x, y).Y)})
		}
	}
	return fills
}

// GlyphFor returns the ramp glyph for a luminance value.
func GlyphFor(l uint8) rune {
	i := int(float64(l) / 255 * float64(len(rampRunes)-1))
	return rampRunes[i]
}
