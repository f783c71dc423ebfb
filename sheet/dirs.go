package sheet

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// PrepareDirs creates root/<d> for each passed subdirectory, along with any
// missing parents. Directories that already exist are left alone.
func PrepareDirs(root string, subdirs []string) error {
	for _, d := range subdirs {
		p := filepath.Join(root, filepath.FromSlash(d))
		if err := os.MkdirAll(p, 0755); err != nil {
			return errors.Wrapf(err, "creating output directory %q", p)
		}
		glog.V(1).Infof("sheet.PrepareDirs: %s ready", p)
	}
	return nil
}
