// Package potagotchi knows the two Potagotchi sprite sheets: where they
// are, where their sprites go, and the rectangle of every sprite.
//
// The rectangles were picked by eye from the sheets and are kept verbatim.
package potagotchi

import (
	"image"

	"github.com/bradfitz/iter"

	"badc0de.net/pkg/spritesplit/sheet"
)

const (
	Inbound = "/home/ubuntu/.openclaw/media/inbound"
	Output  = "/home/ubuntu/clawd/loop/loop-app-native/assets/potagotchi"

	// MainSheetPath is the labeled sheet, 832x1248.
	MainSheetPath = Inbound + "/6fbe9173-c37d-431b-8f9e-040924e48e6f.jpg"
	// CyberpunkSheetPath is the neon variant, 784x1168.
	CyberpunkSheetPath = Inbound + "/bf50348f-13c1-4579-8a53-0c56c4ceb899.jpg"
)

// Subdirs are created under the output root before any sprite is written.
var Subdirs = []string{"baby", "adult", "golden", "animation", "accessories", "states", "cyberpunk"}

// Emotions of the cyberpunk sheet, left to right.
var Emotions = []string{"happy", "sad", "angry", "sleepy"}

// MainTable lists the sprites of the main sheet. Rows from the top: baby,
// adult, golden, animation frames, accessories, wilted/sick.
var MainTable = sheet.Table{
	sheet.Box("baby/happy", 0, 30, 200, 170),
	sheet.Box("baby/sad", 200, 30, 400, 170),
	sheet.Box("baby/angry", 400, 30, 600, 170),
	sheet.Box("baby/sleepy", 600, 30, 800, 170),

	sheet.Box("adult/happy", 0, 180, 210, 380),
	sheet.Box("adult/sad", 210, 180, 420, 380),
	sheet.Box("adult/angry", 420, 180, 630, 380),
	sheet.Box("adult/sleepy", 630, 180, 832, 380),

	sheet.Box("golden/happy", 0, 400, 210, 600),
	sheet.Box("golden/sad", 210, 400, 420, 600),
	sheet.Box("golden/angry", 420, 400, 630, 600),
	sheet.Box("golden/sleepy", 630, 400, 832, 600),

	sheet.Box("animation/frame1", 100, 660, 300, 850),
	sheet.Box("animation/frame2", 320, 660, 520, 850),
	sheet.Box("animation/frame3", 540, 660, 740, 850),

	sheet.Box("accessories/hat", 50, 880, 280, 1080),
	sheet.Box("accessories/sunglasses", 300, 880, 530, 1080),
	sheet.Box("accessories/crown", 560, 880, 790, 1080),

	sheet.Box("states/wilted", 180, 1100, 420, 1248),
	sheet.Box("states/sick", 450, 1100, 700, 1248),
}

// The cyberpunk potatoes sit side by side in this horizontal band.
const (
	cyberpunkTop    = 400
	cyberpunkBottom = 750
)

// CyberpunkTable splits the cyberpunk band into one equal-width slice per
// emotion for a sheet of the passed width.
func CyberpunkTable(width int) sheet.Table {
	w := width / len(Emotions)
	t := make(sheet.Table, 0, len(Emotions))
	for i := range iter.N(len(Emotions)) {
		t = append(t, sheet.Box("cyberpunk/"+Emotions[i], i*w, cyberpunkTop, (i+1)*w, cyberpunkBottom))
	}
	return t
}

// Layout is one sheet to split. Table gets the bounds of the decoded sheet.
type Layout struct {
	Section string
	Label   string
	Path    string
	Table   func(bounds image.Rectangle) sheet.Table
}

// Layouts returns the two sheets in processing order, reading from the
// passed paths.
func Layouts(mainPath, cyberpunkPath string) []Layout {
	return []Layout{
		{
			Section: "Splitting main sprite sheet...",
			Label:   "Main sheet",
			Path:    mainPath,
			Table:   func(image.Rectangle) sheet.Table { return MainTable },
		},
		{
			Section: "Splitting cyberpunk sheet...",
			Label:   "Cyberpunk sheet",
			Path:    cyberpunkPath,
			Table:   func(b image.Rectangle) sheet.Table { return CyberpunkTable(b.Dx()) },
		},
	}
}
