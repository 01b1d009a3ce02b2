package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/coursechef"
)

// Ensure TreeWriter implements coursechef.TreeWriter at compile time.
var _ coursechef.TreeWriter = (*TreeWriter)(nil)

// TreeWriter writes tree snapshots as indented JSON files under a base
// directory: {baseDir}/{stage}trees/{id}.json.
type TreeWriter struct {
	baseDir     string
	channelFile string
}

// NewTreeWriter creates a new TreeWriter. The channel record is written to
// channelFile, relative to baseDir unless absolute.
func NewTreeWriter(baseDir, channelFile string) *TreeWriter {
	return &TreeWriter{baseDir: baseDir, channelFile: channelFile}
}

// TreePath returns the file path of a stage snapshot.
func (w *TreeWriter) TreePath(stage coursechef.Stage, id string) string {
	return filepath.Join(w.baseDir, string(stage)+"trees", id+".json")
}

// WriteTree writes v as the stage snapshot of course id.
func (w *TreeWriter) WriteTree(ctx context.Context, stage coursechef.Stage, id string, v any) error {
	if id == "" {
		return coursechef.Errorf(coursechef.EINVALID, "tree id required")
	}
	return writeJSON(w.TreePath(stage, id), v)
}

// WriteChannel writes the channel record.
func (w *TreeWriter) WriteChannel(ctx context.Context, ch *coursechef.Channel) error {
	path := w.channelFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.baseDir, path)
	}
	return writeJSON(path, ch)
}

// writeJSON writes v to a temporary file next to path and renames it into
// place, so readers never observe a partial file.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
