// Package paths registers the command line flags naming the files a run
// reads and writes.
package paths

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

// SetupFilePathFlag creates a new string flag with the passed name whose
// default is the fixed location def. what describes the file in -help.
func SetupFilePathFlag(fs *flag.FlagSet, flagName, def string, flagPtr *string, what string) {
	fs.StringVar(flagPtr, flagName, def, "Path to "+what)
}

// LogMissing notes, at startup, which of the passed paths do not exist
// yet. It is informational only; the run decides what is fatal.
func LogMissing(paths ...string) int {
	missing := 0
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			glog.Warningf("paths: %s: %v", p, err)
			missing++
		}
	}
	return missing
}
