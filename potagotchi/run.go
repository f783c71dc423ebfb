package potagotchi

import (
	"image"
	"io"

	"github.com/pkg/errors"

	"badc0de.net/pkg/spritesplit/manifest"
	"badc0de.net/pkg/spritesplit/sheet"
)

// Config selects the files a run reads and writes. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	MainSheet      string
	CyberpunkSheet string
	Output         string

	// Manifest writes manifest.json under Output after both sheets.
	Manifest bool
	// ManifestDataURLs inlines every sprite into the manifest.
	ManifestDataURLs bool

	// OnSaved is called with every sprite written, e.g. to preview it.
	OnSaved func(res sheet.Result, img image.Image)
}

// DefaultConfig returns the fixed input and output locations.
func DefaultConfig() Config {
	return Config{
		MainSheet:      MainSheetPath,
		CyberpunkSheet: CyberpunkSheetPath,
		Output:         Output,
	}
}

// Run creates the output directories and splits both sheets, printing
// progress to w.
//
// Sprites that fail are reported and skipped; they are returned as Results
// with Err set. The returned error is only for problems that stop the run:
// an output directory that cannot be created, a sheet that cannot be
// decoded, or a manifest that cannot be written.
func Run(cfg Config, w io.Writer) ([]sheet.Result, error) {
	rep := sheet.NewReporter(w)

	if err := sheet.PrepareDirs(cfg.Output, Subdirs); err != nil {
		return nil, err
	}

	p := &sheet.Processor{Root: cfg.Output, Reporter: rep, OnSaved: cfg.OnSaved}
	var results []sheet.Result
	for _, l := range Layouts(cfg.MainSheet, cfg.CyberpunkSheet) {
		rep.Section(l.Section)
		s, err := sheet.Open(l.Label, l.Path)
		if err != nil {
			return results, err
		}
		results = append(results, p.Process(s, l.Table(s.Image.Bounds()))...)
	}

	if cfg.Manifest {
		m := manifest.Build(results)
		if cfg.ManifestDataURLs {
			if err := m.EmbedDataURLs(); err != nil {
				return results, errors.Wrap(err, "building manifest")
			}
		}
		if err := m.WriteFile(cfg.Output); err != nil {
			return results, err
		}
	}

	rep.Done()
	return results, nil
}
