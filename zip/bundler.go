// Package zip writes deterministic bundle archives.
package zip

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fwojciec/coursechef"
	"github.com/klauspost/compress/zip"
)

// Ensure Bundler implements coursechef.Bundler at compile time.
var _ coursechef.Bundler = (*Bundler)(nil)

// ModTime is stamped on every archive entry.
var ModTime = time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC)

// Bundler writes zip archives below a base directory.
type Bundler struct {
	dir string
}

// NewBundler creates a new Bundler writing to dir.
func NewBundler(dir string) *Bundler {
	return &Bundler{dir: dir}
}

// WriteBundle writes entries to {dir}/{name}. Entries are sorted by name and
// stamped with ModTime and mode 0644 so identical input produces identical
// bytes.
func (b *Bundler) WriteBundle(ctx context.Context, name string, entries []coursechef.BundleEntry) (string, error) {
	if name == "" {
		return "", coursechef.Errorf(coursechef.EINVALID, "bundle name required")
	}
	if len(entries) == 0 {
		return "", coursechef.Errorf(coursechef.EINVALID, "bundle %s has no entries", name)
	}

	sorted := make([]coursechef.BundleEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Name == sorted[i-1].Name {
			return "", coursechef.Errorf(coursechef.EINVALID, "duplicate bundle entry %s", sorted[i].Name)
		}
	}

	path := filepath.Join(b.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", err
	}

	if err := writeArchive(ctx, f, sorted); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}

	return path, nil
}

func writeArchive(ctx context.Context, w io.Writer, entries []coursechef.BundleEntry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeEntry(zw, e); err != nil {
			return err
		}
	}
	return zw.Close()
}

func writeEntry(zw *zip.Writer, e coursechef.BundleEntry) error {
	header := &zip.FileHeader{
		Name:     e.Name,
		Method:   zip.Deflate,
		Modified: ModTime,
	}
	header.SetMode(0644)

	fw, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	if e.SourcePath == "" {
		_, err = fw.Write(e.Data)
		return err
	}

	src, err := os.Open(e.SourcePath)
	if os.IsNotExist(err) {
		return coursechef.Errorf(coursechef.ENOTFOUND, "bundle source not found: %s", e.SourcePath)
	} else if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(fw, src)
	return err
}
