package sheet

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/glog"

	"badc0de.net/pkg/spritesplit/ttesting"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open sprite: %s", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode sprite %s: %s", path, err)
	}
	return img
}

func openTestSheet(t *testing.T, w, h int) *Sheet {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.jpg")
	ttesting.WriteJPEGSheet(t, path, w, h)
	s, err := Open("Test sheet", path)
	if err != nil {
		t.Fatalf("failed to open sheet: %s", err)
	}
	return s
}

func TestOpen(t *testing.T) {
	s := openTestSheet(t, 832, 1248)
	w, h := s.Size()
	ttesting.AssertEqualInt(t, "width", w, 832)
	ttesting.AssertEqualInt(t, "height", h, 1248)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open("Missing", filepath.Join(t.TempDir(), "nope.jpg"))
	if err == nil {
		t.Fatalf("got nil error opening a missing sheet")
	}
	if !strings.Contains(err.Error(), "Missing") {
		t.Errorf("error %q does not name the sheet", err)
	}
}

func TestPrepareDirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not", "yet", "there")
	subdirs := []string{"baby", "adult", "golden"}

	for i := 0; i < 2; i++ {
		if err := PrepareDirs(root, subdirs); err != nil {
			t.Fatalf("pass %d: failed to prepare dirs: %s", i, err)
		}
	}
	for _, d := range subdirs {
		fi, err := os.Stat(filepath.Join(root, d))
		if err != nil {
			t.Errorf("%s: %s", d, err)
			continue
		}
		if !fi.IsDir() {
			t.Errorf("%s: not a directory", d)
		}
	}
}

func TestPrepareDirsBlockedByFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "baby"), nil, 0644); err != nil {
		t.Fatalf("failed to create blocking file: %s", err)
	}
	if err := PrepareDirs(root, []string{"baby"}); err == nil {
		t.Errorf("got nil error; want failure when a file is in the way")
	}
}

func TestProcess(t *testing.T) {
	s := openTestSheet(t, 832, 1248)
	root := t.TempDir()
	if err := PrepareDirs(root, []string{"baby", "states"}); err != nil {
		t.Fatalf("failed to prepare dirs: %s", err)
	}

	table := Table{
		Box("baby/happy", 0, 30, 200, 170),
		Box("baby/sleepy", 600, 30, 800, 170),
		Box("states/wilted", 180, 1100, 420, 1248),
	}

	out := &bytes.Buffer{}
	p := &Processor{Root: root, Reporter: NewReporter(out)}
	results := p.Process(s, table)

	ttesting.AssertEqualInt(t, "results", len(results), len(table))
	for i, e := range table {
		res := results[i]
		if !res.OK() {
			t.Errorf("%s: %s", e.Name, res.Err)
			continue
		}
		ttesting.AssertEqualString(t, e.Name+"/path", res.Path, filepath.Join(root, e.Name+".png"))
		img := decodePNG(t, res.Path)
		ttesting.AssertImageSize(t, e.Name+"/size", img, e.Rect.Dx(), e.Rect.Dy())
		ttesting.AssertHasAlpha(t, e.Name+"/alpha", img)
		if res.Size != e.Rect.Size() {
			t.Errorf("%s: result size %v; want %v", e.Name, res.Size, e.Rect.Size())
		}
	}

	want := "Test sheet: 832x1248\n" +
		"  Saved: baby/happy.png\n" +
		"  Saved: baby/sleepy.png\n" +
		"  Saved: states/wilted.png\n"
	ttesting.AssertEqualString(t, "report", out.String(), want)
}

func TestProcessBabyHappy(t *testing.T) {
	s := openTestSheet(t, 832, 1248)
	root := t.TempDir()
	if err := PrepareDirs(root, []string{"baby"}); err != nil {
		t.Fatalf("failed to prepare dirs: %s", err)
	}

	p := &Processor{Root: root}
	p.Process(s, Table{Box("baby/happy", 0, 30, 200, 170)})

	img := decodePNG(t, filepath.Join(root, "baby", "happy.png"))
	ttesting.AssertImageSize(t, "size", img, 200, 140)
}

func TestProcessOutOfBounds(t *testing.T) {
	s := openTestSheet(t, 400, 300)
	root := t.TempDir()
	if err := PrepareDirs(root, []string{"a"}); err != nil {
		t.Fatalf("failed to prepare dirs: %s", err)
	}

	table := Table{
		Box("a/first", 0, 0, 100, 100),
		Box("a/outside", 500, 400, 700, 600),
		Box("a/last", 300, 200, 400, 300),
	}
	out := &bytes.Buffer{}
	p := &Processor{Root: root, Reporter: NewReporter(out)}
	results := p.Process(s, table)

	if !results[0].OK() || !results[2].OK() {
		t.Fatalf("neighbours of the failing entry failed: %v, %v", results[0].Err, results[2].Err)
	}
	if results[1].OK() {
		t.Fatalf("a/outside succeeded; want failure")
	}
	if _, err := os.Stat(results[1].Path); !os.IsNotExist(err) {
		t.Errorf("a/outside left a file behind (stat err %v)", err)
	}
	if !strings.Contains(out.String(), "  Error a/outside: ") {
		t.Errorf("report %q does not mention the failing entry", out.String())
	}
	ttesting.AssertImageSize(t, "last", decodePNG(t, results[2].Path), 100, 100)
}

func TestProcessInverted(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    *Sheet
	}{
		{"nrgba", &Sheet{Label: "nrgba", Image: image.NewNRGBA(image.Rect(0, 0, 100, 100))}},
		{"jpeg", openTestSheet(t, 100, 100)},
		{"nosubimage", &Sheet{Label: "plain", Image: plainImage{image.NewGray(image.Rect(0, 0, 100, 100))}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := &Processor{Root: t.TempDir(), Reporter: NewReporter(out)}
			results := p.Process(tc.s, Table{
				Box("flipped_x", 50, 10, 10, 40),
				Box("flipped_y", 10, 40, 50, 10),
				Box("fine", 10, 10, 50, 40),
			})

			for _, res := range results[:2] {
				if res.OK() {
					t.Errorf("%s succeeded with size %v; want failure", res.Name, res.Size)
				}
				if _, err := os.Stat(res.Path); !os.IsNotExist(err) {
					t.Errorf("%s left a file behind (stat err %v)", res.Name, err)
				}
				if !strings.Contains(out.String(), "  Error "+res.Name+": ") {
					t.Errorf("report %q does not mention %s", out.String(), res.Name)
				}
			}
			if !results[2].OK() {
				t.Fatalf("fine: %s", results[2].Err)
			}
			ttesting.AssertImageSize(t, "fine", decodePNG(t, results[2].Path), 40, 30)
		})
	}
}

func TestReporterQuietLog(t *testing.T) {
	info, errs := glog.Stats.Info.Lines(), glog.Stats.Error.Lines()

	r := NewReporter(&bytes.Buffer{})
	r.Section("Splitting")
	r.SheetSize("Main sheet", 832, 1248)
	r.Saved("baby/happy")
	r.Failed("baby/sad", fmt.Errorf("boom"))
	r.Done()

	ttesting.AssertEqualInt(t, "info lines", int(glog.Stats.Info.Lines()-info), 0)
	ttesting.AssertEqualInt(t, "error lines", int(glog.Stats.Error.Lines()-errs), 0)
}

func TestProcessMissingDir(t *testing.T) {
	s := openTestSheet(t, 100, 100)
	p := &Processor{Root: t.TempDir()}
	results := p.Process(s, Table{Box("nodir/sprite", 0, 0, 10, 10), Box("top", 0, 0, 10, 10)})
	if results[0].OK() {
		t.Errorf("nodir/sprite succeeded without its directory")
	}
	if !results[1].OK() {
		t.Errorf("top: %s", results[1].Err)
	}
}

func TestProcessIdempotent(t *testing.T) {
	s := openTestSheet(t, 832, 1248)
	root := t.TempDir()
	table := Table{Box("one", 0, 30, 200, 170), Box("two", 630, 180, 832, 380)}

	read := func() map[string][]byte {
		p := &Processor{Root: root}
		got := map[string][]byte{}
		for _, res := range p.Process(s, table) {
			b, err := os.ReadFile(res.Path)
			if err != nil {
				t.Fatalf("failed to read %s: %s", res.Path, err)
			}
			got[res.Name] = b
		}
		return got
	}
	first, second := read(), read()
	for name := range first {
		if !bytes.Equal(first[name], second[name]) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestProcessOnSaved(t *testing.T) {
	s := openTestSheet(t, 64, 64)
	var seen []string
	p := &Processor{
		Root: t.TempDir(),
		OnSaved: func(res Result, img image.Image) {
			seen = append(seen, fmt.Sprintf("%s %dx%d", res.Name, img.Bounds().Dx(), img.Bounds().Dy()))
		},
	}
	p.Process(s, Table{Box("a", 0, 0, 10, 20), Box("gone", 100, 100, 110, 110), Box("b", 32, 32, 64, 64)})
	ttesting.AssertEqualString(t, "seen", strings.Join(seen, ","), "a 10x20,b 32x32")
}

func TestCropNRGBASheet(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	src.SetNRGBA(10, 10, color.NRGBA{R: 0xFF, A: 0x80})
	s := &Sheet{Label: "png", Image: src}

	crop := s.Crop(image.Rect(10, 10, 20, 30))
	ttesting.AssertImageSize(t, "size", crop, 10, 20)
	if got := WithAlpha(crop); got != crop {
		t.Errorf("WithAlpha copied an NRGBA crop")
	}
	if c := color.NRGBAModel.Convert(crop.At(10, 10)).(color.NRGBA); c.A != 0x80 {
		t.Errorf("got alpha %d; want 128", c.A)
	}
}

type plainImage struct {
	image.Image
}

func TestCropWithoutSubImage(t *testing.T) {
	s := &Sheet{Image: plainImage{image.NewGray(image.Rect(0, 0, 40, 40))}}
	crop := s.Crop(image.Rect(30, 30, 60, 60))
	ttesting.AssertImageSize(t, "clipped", crop, 10, 10)
}

func TestWithAlpha(t *testing.T) {
	for _, tc := range []struct {
		name string
		img  image.Image
		pass bool
	}{
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420), false},
		{"gray", image.NewGray(image.Rect(0, 0, 4, 4)), false},
		{"paletted", image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.Black}), false},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 4, 4)), true},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 4, 4)), true},
		{"nrgba64", image.NewNRGBA64(image.Rect(0, 0, 4, 4)), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := WithAlpha(tc.img)
			if tc.pass && got != tc.img {
				t.Errorf("got a copy; want pass through")
			}
			if !tc.pass {
				if _, ok := got.(*image.NRGBA); !ok {
					t.Errorf("got %T; want *image.NRGBA", got)
				}
			}
			if !HasAlpha(got) {
				t.Errorf("result %T has no alpha", got)
			}
		})
	}
}

func TestTable(t *testing.T) {
	table := Table{Box("x/a", 0, 0, 1, 1), Box("x/b", 1, 1, 2, 2)}
	ttesting.AssertEqualString(t, "names", strings.Join(table.Names(), ","), "x/a,x/b")
	if e, ok := table.Lookup("x/b"); !ok || e.Rect != image.Rect(1, 1, 2, 2) {
		t.Errorf("Lookup(x/b) = %v, %v", e, ok)
	}
	if _, ok := table.Lookup("x/c"); ok {
		t.Errorf("Lookup(x/c) found an entry")
	}

	inv := Box("inv", 50, 10, 10, 40)
	if inv.Rect.Min != image.Pt(50, 10) || inv.Rect.Max != image.Pt(10, 40) {
		t.Errorf("Box reordered the corners: %v", inv.Rect)
	}
	if !inv.Rect.Empty() {
		t.Errorf("inverted box %v is not empty", inv.Rect)
	}
}

// ExampleOutputPath shows where a sprite name lands under the output root.
func ExampleOutputPath() {
	fmt.Println(OutputPath("/srv/assets/potagotchi", "cyberpunk/sleepy"))
	// Output: /srv/assets/potagotchi/cyberpunk/sleepy.png
}
