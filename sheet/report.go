package sheet

import (
	"fmt"
	"io"

	"github.com/golang/glog"
)

// Reporter prints the progress of a run as plain lines. The lines are
// mirrored into glog at V(1) only, so stderr logging does not repeat them.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter printing to w. A nil w only logs.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) println(line string) {
	if r == nil || r.w == nil {
		return
	}
	fmt.Fprintln(r.w, line)
}

// Section announces the start of a part of the run.
func (r *Reporter) Section(title string) {
	r.println("\n" + title)
	glog.V(1).Info(title)
}

// SheetSize reports the decoded dimensions of a sheet.
func (r *Reporter) SheetSize(label string, w, h int) {
	r.println(fmt.Sprintf("%s: %dx%d", label, w, h))
	glog.V(1).Infof("%s: %dx%d", label, w, h)
}

// Saved reports a sprite written to disk.
func (r *Reporter) Saved(name string) {
	r.println(fmt.Sprintf("  Saved: %s.png", name))
	glog.V(1).Infof("saved %s.png", name)
}

// Failed reports a sprite that could not be produced.
func (r *Reporter) Failed(name string, err error) {
	r.println(fmt.Sprintf("  Error %s: %v", name, err))
	glog.V(1).Infof("sprite %s failed: %v", name, err)
}

// Done closes the run.
func (r *Reporter) Done() {
	r.println("\nDone!")
	glog.V(1).Info("done")
}
