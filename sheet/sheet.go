package sheet

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Sheet is a decoded source image. It is only ever read from.
type Sheet struct {
	Label string
	Path  string
	Image image.Image
}

// Open decodes the image at path. Any format registered with the image
// package (JPEG, PNG, GIF, ...) is accepted.
func Open(label, path string) (*Sheet, error) {
	glog.V(1).Infof("sheet.Open(%q): %s", label, path)
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s sheet %q", label, path)
	}
	return &Sheet{Label: label, Path: path, Image: img}, nil
}

// Size returns the width and height of the sheet in pixels.
func (s *Sheet) Size() (int, int) {
	sz := s.Image.Bounds().Size()
	return sz.X, sz.Y
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop returns the part of the sheet inside r.
//
// Decoded images that can share their pixels are sliced with SubImage;
// anything else is copied out with imaging.Crop. Both clip r to the sheet.
func (s *Sheet) Crop(r image.Rectangle) image.Image {
	if si, ok := s.Image.(subImager); ok {
		return si.SubImage(r)
	}
	return imaging.Crop(s.Image, r)
}

// WithAlpha returns img unchanged if its pixel format carries an alpha
// channel, and an NRGBA copy of it otherwise.
func WithAlpha(img image.Image) image.Image {
	if HasAlpha(img) {
		return img
	}
	return imaging.Clone(img)
}

// HasAlpha reports whether WithAlpha would pass img through.
func HasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		return true
	}
	return false
}
