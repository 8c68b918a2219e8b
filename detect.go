package colorkey

import (
	"image"
	"image/color"
)

// IsKey reports whether c has the key color. The alpha channel is ignored, so
// a keyed pixel matches whatever its opacity.
func IsKey(c color.NRGBA) bool {
	return c.R == keyR && c.G == keyG && c.B == keyB
}

// CountKeyed reports how many pixels of img would be made transparent. It
// does not modify img.
func CountKeyed(img image.Image) int {
	if img == nil {
		return 0
	}

	// Other color models go through the same copy Convert uses, so both
	// agree on which pixels are keyed.
	m, ok := img.(*image.NRGBA)
	if !ok {
		m = cloneToNRGBA(img)
	}

	bounds := m.Bounds()
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if IsKey(m.NRGBAAt(x, y)) {
				count++
			}
		}
	}

	return count
}
