package wheel

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

// ScanDir walks a directory tree and returns the paths of all wheel files
// found, sorted for deterministic processing order.
func ScanDir(dir string) ([]string, error) {
	var wheels []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), mockhouse.WheelExtension) {
			wheels = append(wheels, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(wheels)
	return wheels, nil
}
