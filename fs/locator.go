// Package fs provides file-based access to staged courses and tree snapshots.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/coursechef"
)

// Ensure AssetLocator implements coursechef.AssetLocator at compile time.
var _ coursechef.AssetLocator = (*AssetLocator)(nil)

// AssetLocator resolves static references against the course directory on disk.
type AssetLocator struct{}

// NewAssetLocator creates a new AssetLocator.
func NewAssetLocator() *AssetLocator {
	return &AssetLocator{}
}

// Locate joins href onto dir. Course exports often rename files with
// spaces to underscores in links only, so a missing file is retried once
// with underscores in href replaced by spaces. Paths that escape dir are
// never found.
func (l *AssetLocator) Locate(dir, href string) (string, bool) {
	path := filepath.Join(dir, filepath.FromSlash(href))
	if !within(dir, path) {
		return path, false
	}
	if exists(path) {
		return path, true
	}

	path = filepath.Join(dir, filepath.FromSlash(strings.ReplaceAll(href, "_", " ")))
	return path, within(dir, path) && exists(path)
}

// within reports whether path lies inside dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
