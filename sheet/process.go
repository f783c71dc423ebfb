package sheet

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Result is the outcome of one table entry.
type Result struct {
	Sheet string
	Name  string
	Path  string
	Size  image.Point
	Err   error
}

// OK reports whether the sprite was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Processor writes the sprites of a table under Root.
type Processor struct {
	Root     string
	Reporter *Reporter

	// OnSaved, if set, is called after each sprite is written, with the
	// image that was encoded.
	OnSaved func(res Result, img image.Image)
}

// Process cuts every entry of t out of s, in order. Failing entries are
// reported and skipped. The returned slice has one Result per entry.
func (p *Processor) Process(s *Sheet, t Table) []Result {
	w, h := s.Size()
	p.Reporter.SheetSize(s.Label, w, h)

	results := make([]Result, 0, len(t))
	for _, e := range t {
		res := Result{Sheet: s.Label, Name: e.Name, Path: OutputPath(p.Root, e.Name)}
		img, err := p.one(s, e, res.Path)
		if err != nil {
			res.Err = err
			p.Reporter.Failed(e.Name, err)
		} else {
			res.Size = img.Bounds().Size()
			p.Reporter.Saved(e.Name)
			if p.OnSaved != nil {
				p.OnSaved(res, img)
			}
		}
		results = append(results, res)
	}
	return results
}

// one produces a single sprite. A panic inside the image code counts as a
// failure of this entry only.
func (p *Processor) one(s *Sheet, e Entry, path string) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("%v", r)
		}
	}()

	img = WithAlpha(s.Crop(e.Rect))

	// Encode before creating the file so a failed sprite leaves nothing
	// behind.
	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, keepAlpha{img}, imaging.PNG); err != nil {
		return nil, errors.Wrapf(err, "encoding %v", e.Rect)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, errors.Wrap(err, "writing sprite")
	}
	return img, nil
}

// keepAlpha makes png.Encoder write an alpha channel even when every pixel
// is opaque, which it otherwise strips.
type keepAlpha struct {
	image.Image
}

func (keepAlpha) Opaque() bool { return false }
