// Package manifest writes an index of the sprites produced by a run, so the
// consuming app can look sprites up by name instead of hardcoding paths.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/spritesplit/sheet"
)

// FileName is the manifest's name under the output root.
const FileName = "manifest.json"

type Sprite struct {
	Name   string `json:"name"`
	Sheet  string `json:"sheet"`
	File   string `json:"file"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// DataURL is only set by EmbedDataURLs.
	DataURL string `json:"data_url,omitempty"`

	path string
}

type Manifest struct {
	Sprites []Sprite `json:"sprites"`
}

// Build lists the sprites that were written, in the order they were
// produced. Failed entries are left out.
func Build(results []sheet.Result) *Manifest {
	m := &Manifest{Sprites: []Sprite{}}
	for _, r := range results {
		if !r.OK() {
			continue
		}
		m.Sprites = append(m.Sprites, Sprite{
			Name:   r.Name,
			Sheet:  r.Sheet,
			File:   r.Name + ".png",
			Width:  r.Size.X,
			Height: r.Size.Y,
			path:   r.Path,
		})
	}
	return m
}

// Lookup returns the sprite with the passed name.
func (m *Manifest) Lookup(name string) (Sprite, bool) {
	for _, s := range m.Sprites {
		if s.Name == name {
			return s, true
		}
	}
	return Sprite{}, false
}

// EmbedDataURLs reads back every written sprite and stores it inline as a
// data URL.
func (m *Manifest) EmbedDataURLs() error {
	for i := range m.Sprites {
		s := &m.Sprites[i]
		b, err := os.ReadFile(s.path)
		if err != nil {
			return errors.Wrapf(err, "reading %s for data url", s.Name)
		}
		text, err := dataurl.New(b, "image/png").MarshalText()
		if err != nil {
			return errors.Wrapf(err, "encoding %s as data url", s.Name)
		}
		s.DataURL = string(text)
	}
	return nil
}

// WriteFile writes the manifest as indented JSON to root/FileName.
func (m *Manifest) WriteFile(root string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling manifest")
	}
	p := filepath.Join(root, FileName)
	if err := os.WriteFile(p, append(b, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "writing manifest %q", p)
	}
	glog.Infof("manifest: %d sprites written to %s", len(m.Sprites), p)
	return nil
}
