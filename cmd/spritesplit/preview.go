package main

import (
	"image"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/spritesplit/imageprint"
	"badc0de.net/pkg/spritesplit/sheet"
)

type previewer struct {
	printer  *imageprint.Printer
	downsize bool
}

// show draws a freshly saved sprite. Preview problems are logged and never
// fail the sprite.
func (p *previewer) show(res sheet.Result, img image.Image) {
	if p.downsize {
		img = fit(img, p.printer.Mode)
	}
	if err := p.printer.Print(img, res.Name+".png"); err != nil {
		glog.Warningf("preview of %s: %v", res.Name, err)
	}
}

// fit shrinks img to half of the terminal, measured in pixels for the
// image protocols and in character cells otherwise.
func fit(img image.Image, mode imageprint.Mode) image.Image {
	termSize, err := GetTermSize()
	if err != nil {
		glog.V(1).Infof("preview: no terminal size: %v", err)
		return img
	}
	if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (mode == imageprint.RasTerm || mode == imageprint.ITerm) {
		// Prefer printing out in native size if there's a chance we print out an image rather than pixels.
		return resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
	}
	// Two character cells per pixel.
	return resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.Lanczos3)
}
