// Package etree implements course fragment parsing using beevik/etree.
package etree

import (
	"encoding/xml"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/fwojciec/coursechef"
)

// Ensure Resolver implements coursechef.FragmentResolver at compile time.
var _ coursechef.FragmentResolver = (*Resolver)(nil)

// Resolver loads XML fragment files without following their references.
type Resolver struct {
	// SkipKinds lists child kinds left out of the reference list entirely.
	SkipKinds []string

	Logger *slog.Logger
}

// NewResolver creates a new Resolver that drops references of the given kinds.
func NewResolver(skipKinds []string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{SkipKinds: skipKinds, Logger: logger}
}

// Resolve parses {dir}/{kind}/{id}.xml into an unresolved node.
func (r *Resolver) Resolve(dir, kind, id string) (*coursechef.Node, error) {
	path := fragmentPath(dir, kind, id, "xml")

	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	roots := doc.ChildElements()
	if len(roots) != 1 {
		return nil, coursechef.Errorf(coursechef.EMALFORMED, "%s: expected one root element, found %d", path, len(roots))
	}
	root := roots[0]

	node := &coursechef.Node{
		Kind:     root.Tag,
		ID:       id,
		Attrs:    make(map[string]string, len(root.Attr)),
		Refs:     []coursechef.Ref{},
		Children: []*coursechef.Node{},
	}
	for _, attr := range root.Attr {
		node.Attrs[attr.Key] = attr.Value
	}

	for _, child := range root.ChildElements() {
		ref, err := childRef(path, child)
		if err != nil {
			return nil, err
		}
		if r.skip(ref.Kind) {
			r.logger().Info("skipping reference", "kind", ref.Kind, "id", ref.ID, "parent", path)
			continue
		}
		node.Refs = append(node.Refs, ref)
	}

	return node, nil
}

// ReadLeaf returns the raw contents of {dir}/{kind}/{id}.{ext}.
func (r *Resolver) ReadLeaf(dir, kind, id, ext string) (string, error) {
	path := fragmentPath(dir, kind, id, ext)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", coursechef.Errorf(coursechef.ENOTFOUND, "%s file not found: %s", kind, path)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Resolver) skip(kind string) bool {
	for _, k := range r.SkipKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}

// childRef converts a child reference element. Reference elements carry
// exactly one attribute: url_name, or slug for wikis.
func childRef(path string, child *etree.Element) (coursechef.Ref, error) {
	if len(child.Attr) != 1 {
		return coursechef.Ref{}, coursechef.Errorf(coursechef.EMALFORMED,
			"%s: <%s> reference has %d attributes, expected 1", path, child.Tag, len(child.Attr))
	}

	key := coursechef.AttrURLName
	if child.Tag == coursechef.KindWiki {
		key = coursechef.AttrSlug
	}
	attr := child.Attr[0]
	if attr.Key != key {
		return coursechef.Ref{}, coursechef.Errorf(coursechef.EMALFORMED,
			"%s: <%s> reference has attribute %q, expected %q", path, child.Tag, attr.Key, key)
	}

	return coursechef.Ref{Kind: child.Tag, ID: attr.Value}, nil
}

func fragmentPath(dir, kind, id, ext string) string {
	if kind == "" {
		return filepath.Join(dir, id+"."+ext)
	}
	return filepath.Join(dir, kind, id+"."+ext)
}

// readDocument parses the XML file at path.
func readDocument(path string) (*etree.Document, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, coursechef.Errorf(coursechef.ENOTFOUND, "XML file not found: %s", path)
	}

	doc := newDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, coursechef.Errorf(coursechef.EMALFORMED, "%s: %v", path, err)
	}
	return doc, nil
}

// parseString parses an XML fragment held in memory.
func parseString(s string) (*etree.Document, error) {
	doc := newDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, coursechef.Errorf(coursechef.EMALFORMED, "parsing XML: %v", err)
	}
	return doc, nil
}

// newDocument returns a document that accepts HTML named entities, which
// course exports use freely inside XML.
func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.Entity = xml.HTMLEntity
	return doc
}
