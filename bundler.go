package coursechef

import "context"

// BundleEntry is one file inside a bundle. Either Data or SourcePath is set.
type BundleEntry struct {
	Name       string
	Data       []byte
	SourcePath string
}

// Bundler packages entries into a single archive.
type Bundler interface {
	// WriteBundle writes the archive name and returns its path. Identical
	// entries produce byte-identical archives.
	WriteBundle(ctx context.Context, name string, entries []BundleEntry) (string, error)
}
