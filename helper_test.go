package colorkey

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sergeymakinen/go-bmp"
)

var (
	keyOpaque      = color.NRGBA{R: 200, G: 191, B: 231, A: 255}
	keyHalf        = color.NRGBA{R: 200, G: 191, B: 231, A: 128}
	keyClear       = color.NRGBA{R: 200, G: 191, B: 231, A: 0}
	nearKey        = color.NRGBA{R: 200, G: 191, B: 230, A: 255}
	clearColored   = color.NRGBA{R: 10, G: 20, B: 30, A: 0}
	halfRed        = color.NRGBA{R: 255, G: 0, B: 0, A: 77}
	opaqueWhite    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	opaqueBlack    = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	transparentPix = color.NRGBA{}
)

// newFixture returns a 4x3 image mixing keyed and unkeyed pixels. Keyed
// pixels sit at (0,0), (1,0), (2,0) and (3,2).
func newFixture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	rows := [][]color.NRGBA{
		{keyOpaque, keyHalf, keyClear, nearKey},
		{clearColored, halfRed, opaqueWhite, opaqueBlack},
		{opaqueWhite, opaqueBlack, nearKey, keyOpaque},
	}
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func decodeBytes(t *testing.T, data []byte) (image.Image, string) {
	t.Helper()
	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img, format
}

func imagesEqual(a, b image.Image) bool {
	if !a.Bounds().Eq(b.Bounds()) {
		return false
	}

	ab := imageToNRGBA(a)
	bb := imageToNRGBA(b)

	return bytes.Equal(ab.Pix, bb.Pix)
}

func imageToNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok {
		return cloneToNRGBA(m)
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	return out
}
