// Package ttesting holds small assertion helpers shared by tests.
package ttesting

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

// AssertImageSize checks the pixel dimensions of img.
func AssertImageSize(t *testing.T, name string, img image.Image, wantW, wantH int) {
	t.Run(name, func(t *testing.T) {
		sz := img.Bounds().Size()
		if sz.X != wantW || sz.Y != wantH {
			t.Errorf("got %dx%d; want %dx%d", sz.X, sz.Y, wantW, wantH)
		}
	})
}

// AssertHasAlpha checks that a decoded png carried an alpha channel. The
// png decoder returns NRGBA only for truecolor-with-alpha files.
func AssertHasAlpha(t *testing.T, name string, img image.Image) {
	t.Run(name, func(t *testing.T) {
		switch img.(type) {
		case *image.NRGBA, *image.NRGBA64:
		default:
			t.Errorf("got %T; want a format with alpha", img)
		}
	})
}

// WriteJPEGSheet writes a w x h JPEG with a coarse gradient to path, for use
// as a stand-in sprite sheet.
func WriteJPEGSheet(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x / 4), G: uint8(y / 5), B: uint8((x + y) / 8), A: 0xFF})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create sheet: %s", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode sheet: %s", err)
	}
}
