package colorkey

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/sergeymakinen/go-bmp"
	"golang.org/x/image/tiff"

	// Register the remaining decoders; bmp and tiff register through the
	// imports above.
	_ "golang.org/x/image/webp"
	_ "image/jpeg"
)

type encodeFunc func(w io.Writer, img image.Image) error

// encoders maps lower-case file extensions to the output format name and its
// encoder. JPEG cannot carry alpha and WebP is decode-only, so neither is
// listed.
var encoders = map[string]struct {
	format string
	encode encodeFunc
}{
	".png":  {format: "png", encode: png.Encode},
	".gif":  {format: "gif", encode: encodeGIF},
	".bmp":  {format: "bmp", encode: bmp.Encode},
	".tif":  {format: "tiff", encode: encodeTIFF},
	".tiff": {format: "tiff", encode: encodeTIFF},
}

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "gif", "bmp", "tiff", "webp").
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, format, nil
}

// OutputFormat reports the format Encode would use for name, judged by its
// extension.
func OutputFormat(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	enc, ok := encoders[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported output extension %q", ErrEncode, ext)
	}
	return enc.format, nil
}

// Encode writes img to w in the format implied by the extension of name and
// returns the format used.
func Encode(w io.Writer, img image.Image, name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	enc, ok := encoders[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported output extension %q", ErrEncode, ext)
	}
	if err := enc.encode(w, img); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrEncode, enc.format, err)
	}
	return enc.format, nil
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// encodeGIF writes img with an exact palette when it holds at most 256
// colors, folding every fully transparent pixel into one transparent entry.
// Larger images are quantized onto the web-safe palette plus
// color.Transparent. Either way keyed pixels stay transparent.
func encodeGIF(w io.Writer, img image.Image) error {
	paletted, ok := exactPaletted(img)
	if !ok {
		pal := make(color.Palette, 0, len(palette.WebSafe)+1)
		pal = append(pal, palette.WebSafe...)
		pal = append(pal, color.Transparent)

		bounds := img.Bounds()
		paletted = image.NewPaletted(bounds, pal)
		draw.Draw(paletted, bounds, img, bounds.Min, draw.Src)
	}

	return gif.Encode(w, paletted, &gif.Options{NumColors: len(paletted.Palette)})
}

// exactPaletted maps img onto a palette of its own colors. It reports false
// when img has more colors than a GIF palette can hold.
func exactPaletted(img image.Image) (*image.Paletted, bool) {
	bounds := img.Bounds()
	src := cloneToNRGBA(img)

	index := make(map[color.NRGBA]uint8)
	var pal color.Palette
	paletted := image.NewPaletted(bounds, nil)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			if c.A == 0 {
				c = color.NRGBA{}
			}
			i, ok := index[c]
			if !ok {
				if len(pal) == 256 {
					return nil, false
				}
				i = uint8(len(pal))
				index[c] = i
				pal = append(pal, c)
			}
			paletted.SetColorIndex(x, y, i)
		}
	}

	paletted.Palette = pal
	return paletted, true
}
