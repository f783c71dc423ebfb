// Command spritesplit cuts the Potagotchi sprite sheets into one PNG per
// sprite.
//
// Run without arguments it reads the two fixed sheets and writes the
// sprites under the fixed asset directory, printing a line per sprite.
// A sprite that cannot be cut is reported and skipped; the exit status is
// still zero. A sheet that cannot be read or an output directory that
// cannot be created stops the run.
package main

import (
	"flag"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/spritesplit/imageprint"
	"badc0de.net/pkg/spritesplit/paths"
	"badc0de.net/pkg/spritesplit/potagotchi"
)

var (
	manifestFlag     = flag.Bool("manifest", false, "whether to write manifest.json next to the sprites")
	manifestDataURLs = flag.Bool("manifest_data_urls", false, "whether to inline every sprite into manifest.json as a data url")
	preview          = flag.Bool("preview", false, "whether to draw every saved sprite on the terminal")
	previewMode      = flag.String("preview_mode", "24bit", "how to draw previews: 24bit, 256, nocolor, iterm or rasterm")
	blanks           = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize         = flag.Bool("downsize", true, "whether to shrink previews to fit the terminal")

	cfg = potagotchi.DefaultConfig()
)

func setupFilePathFlags() {
	paths.SetupFilePathFlag(flag.CommandLine, "main_sheet_path", potagotchi.MainSheetPath, &cfg.MainSheet, "the labeled sprite sheet")
	paths.SetupFilePathFlag(flag.CommandLine, "cyberpunk_sheet_path", potagotchi.CyberpunkSheetPath, &cfg.CyberpunkSheet, "the cyberpunk sprite sheet")
	paths.SetupFilePathFlag(flag.CommandLine, "output_path", potagotchi.Output, &cfg.Output, "the sprite output directory")
}

func main() {
	setupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	paths.LogMissing(cfg.MainSheet, cfg.CyberpunkSheet)

	cfg.Manifest = *manifestFlag || *manifestDataURLs
	cfg.ManifestDataURLs = *manifestDataURLs
	if *preview {
		mode, err := imageprint.ParseMode(*previewMode)
		if err != nil {
			glog.Fatalf("-preview_mode: %v", err)
		}
		pr := &previewer{
			printer:  &imageprint.Printer{W: os.Stdout, Mode: mode, Blanks: *blanks},
			downsize: *downsize,
		}
		cfg.OnSaved = pr.show
	}

	if _, err := potagotchi.Run(cfg, os.Stdout); err != nil {
		glog.Fatalf("splitting sprites: %v", err)
	}
}
