package coursechef

// FragmentResolver loads fragment files from a course directory.
type FragmentResolver interface {
	// Resolve parses {dir}/{kind}/{id}.xml, or {dir}/{id}.xml when kind is
	// empty, into a node whose Refs list its direct child references.
	// Returns ENOTFOUND if the file does not exist and EMALFORMED if it
	// breaks the reference contract.
	Resolve(dir, kind, id string) (*Node, error)

	// ReadLeaf returns the raw contents of {dir}/{kind}/{id}.{ext}.
	// Returns ENOTFOUND if the file does not exist.
	ReadLeaf(dir, kind, id, ext string) (string, error)
}
