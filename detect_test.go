package colorkey

import (
	"image"
	"image/color"
	"testing"
)

func TestIsKey(t *testing.T) {
	tests := []struct {
		c    color.NRGBA
		want bool
	}{
		{c: keyOpaque, want: true},
		{c: keyHalf, want: true},
		{c: keyClear, want: true},
		{c: nearKey, want: false},
		{c: color.NRGBA{R: 199, G: 191, B: 231, A: 255}, want: false},
		{c: color.NRGBA{R: 200, G: 190, B: 231, A: 255}, want: false},
		{c: transparentPix, want: false},
	}

	for _, tt := range tests {
		if got := IsKey(tt.c); got != tt.want {
			t.Errorf("IsKey(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestCountKeyedMatchesConvert(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want int
	}{
		{name: "fixture", img: newFixture(), want: 4},
		{name: "sub_image", img: newFixture().SubImage(image.Rect(2, 0, 4, 3)), want: 2},
		{name: "rgba_opaque_key", img: uniformRGBA(3, 3, color.RGBA{R: 200, G: 191, B: 231, A: 255}), want: 9},
		{name: "rgba_other", img: uniformRGBA(3, 3, color.RGBA{R: 1, G: 2, B: 3, A: 255}), want: 0},
		{name: "nil", img: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountKeyed(tt.img); got != tt.want {
				t.Fatalf("CountKeyed = %d, want %d", got, tt.want)
			}
			if tt.img == nil {
				return
			}
			_, stats, err := Convert(tt.img)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if stats.Keyed != tt.want {
				t.Errorf("Convert keyed %d, CountKeyed %d", stats.Keyed, tt.want)
			}
		})
	}
}

func uniformRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestKey(t *testing.T) {
	if got := Key(); got != (color.NRGBA{R: 200, G: 191, B: 231, A: 255}) {
		t.Errorf("Key() = %v, want (200,191,231,255)", got)
	}
	if !IsKey(Key()) {
		t.Error("IsKey(Key()) = false")
	}
}
