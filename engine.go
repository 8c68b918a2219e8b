package colorkey

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"sync"
)

// The background color made transparent. Only R, G and B are compared.
const (
	keyR uint8 = 200
	keyG uint8 = 191
	keyB uint8 = 231
)

// Key returns the background color made transparent, as an opaque color.
func Key() color.NRGBA {
	return color.NRGBA{R: keyR, G: keyG, B: keyB, A: 0xff}
}

// Stats describes what a conversion did to an image.
type Stats struct {
	Width  int
	Height int
	Pixels int
	Keyed  int
}

// Converter applies the color key to decoded images and files.
type Converter struct {
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConverter constructs a Converter. Without WithLogger it logs to
// slog.Default().
func NewConverter(opts ...Option) *Converter {
	c := &Converter{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter struct {
	once sync.Once
	conv *Converter
}

func defaultConv() *Converter {
	defaultConverter.once.Do(func() {
		defaultConverter.conv = NewConverter()
	})
	return defaultConverter.conv
}

// Convert applies the default converter to the provided image.
func Convert(img image.Image) (*image.NRGBA, Stats, error) {
	return defaultConv().Convert(img)
}

// Convert copies img into a new *image.NRGBA with the same bounds and replaces
// every keyed pixel with (0, 0, 0, 0). The source image is never modified.
func (c *Converter) Convert(img image.Image) (*image.NRGBA, Stats, error) {
	if img == nil {
		return nil, Stats{}, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, Stats{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	nrgba := cloneToNRGBA(img)
	keyed := applyColorKey(nrgba)

	stats := Stats{
		Width:  width,
		Height: height,
		Pixels: width * height,
		Keyed:  keyed,
	}
	c.logger.Debug("applied color key", slog.Int("width", width), slog.Int("height", height), slog.Int("keyed", keyed))

	return nrgba, stats, nil
}

// cloneToNRGBA copies the image into a mutable non-premultiplied buffer.
// Non-premultiplied sources are copied without passing through premultiplied
// alpha, so the color channels of transparent pixels survive unchanged. 16-bit
// channels keep their high byte.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)

	switch s := src.(type) {
	case *image.NRGBA:
		rowLen := bounds.Dx() * 4
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			so := s.PixOffset(bounds.Min.X, y)
			do := dst.PixOffset(bounds.Min.X, y)
			copy(dst.Pix[do:do+rowLen], s.Pix[so:so+rowLen])
		}
		return dst
	case *image.NRGBA64:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := s.NRGBA64At(x, y)
				dst.SetNRGBA(x, y, color.NRGBA{
					R: uint8(c.R >> 8),
					G: uint8(c.G >> 8),
					B: uint8(c.B >> 8),
					A: uint8(c.A >> 8),
				})
			}
		}
		return dst
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
		}
	}
	return dst
}

// applyColorKey zeroes every keyed pixel in place and returns how many were
// changed.
func applyColorKey(img *image.NRGBA) int {
	bounds := img.Bounds()
	keyed := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.Pix[offset : offset+4 : offset+4]
			if px[0] == keyR && px[1] == keyG && px[2] == keyB {
				px[0], px[1], px[2], px[3] = 0, 0, 0, 0
				keyed++
			}
			offset += 4
		}
	}

	return keyed
}
