// Package imageprint previews sprites on a terminal.
//
// Images are drawn two character cells per pixel, either with colored
// blanks or with a coarse ascii shade, or handed to the terminal's own
// image protocol (iTerm2 inline images, kitty, sixel).
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/gookit/color"
)

type Mode int

const (
	TrueColor Mode = iota
	Color256
	NoColor
	ITerm
	RasTerm
)

var modeNames = map[string]Mode{
	"24bit":   TrueColor,
	"256":     Color256,
	"nocolor": NoColor,
	"iterm":   ITerm,
	"rasterm": RasTerm,
}

// ParseMode maps a -preview_mode value to a Mode.
func ParseMode(s string) (Mode, error) {
	m, ok := modeNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown preview mode %q", s)
	}
	return m, nil
}

// Printer draws images to W.
type Printer struct {
	W    io.Writer
	Mode Mode
	// Blanks uses colored spaces instead of ascii shading. Only the
	// character cell modes look at it.
	Blanks bool
}

// Print draws img. name is passed on to terminals that show one.
func (p *Printer) Print(img image.Image, name string) error {
	switch p.Mode {
	case TrueColor:
		p.cells(img, p.trueColor)
	case Color256:
		p.cells(reduce(img, 256), p.color256)
	case NoColor:
		p.cells(img, p.noColor)
	case ITerm:
		return p.iterm(img, name)
	case RasTerm:
		return printRasTerm(p.W, img)
	default:
		return fmt.Errorf("unknown preview mode %d", p.Mode)
	}
	return nil
}

func (p *Printer) cells(img image.Image, shade func(ic.Color)) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			shade(img.At(x, y))
		}
		if p.Mode != NoColor {
			fmt.Fprint(p.W, "\x1b[0m")
		}
		fmt.Fprint(p.W, "\n")
	}
}

// glyph picks the two characters for one pixel.
func (p *Printer) glyph(r, g, b uint32) string {
	if p.Blanks {
		return "  "
	}
	a := ((r + g + b) / 3) >> 8
	switch {
	case a < 32:
		return ".."
	case a < 64:
		return "--"
	case a < 128:
		return "=="
	default:
		return "##"
	}
}

func (p *Printer) trueColor(col ic.Color) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		fmt.Fprint(p.W, "\x1b[0m  ")
		return
	}
	fmt.Fprintf(p.W, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(r>>8), uint8(g>>8), uint8(b>>8), p.glyph(r, g, b))
}

func (p *Printer) color256(col ic.Color) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		fmt.Fprint(p.W, "\x1b[0m  ")
		return
	}
	fmt.Fprint(p.W, color.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8), true).Sprint(p.glyph(r, g, b)))
}

func (p *Printer) noColor(col ic.Color) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		fmt.Fprint(p.W, "  ")
		return
	}
	fmt.Fprint(p.W, p.glyph(r, g, b))
}

// reduce maps img onto a palette of at most n colors picked by median cut.
func reduce(img image.Image, n int) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(ic.Palette, 0, n), img)
	out := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// iterm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func (p *Printer) iterm(img image.Image, fn string) error {
	if !isTermItermWez() {
		return fmt.Errorf("terminal does not support iTerm2 inline images")
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	enc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(enc, img); err != nil {
		return err
	}
	enc.Close()
	sz := img.Bounds().Size()
	_, err := fmt.Fprintf(p.W, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n", name, b.Len(), sz.X, sz.Y, b.String())
	return err
}
