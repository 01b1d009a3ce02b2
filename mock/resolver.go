package mock

import "github.com/fwojciec/coursechef"

var _ coursechef.FragmentResolver = (*FragmentResolver)(nil)

// FragmentResolver is a mock implementation of coursechef.FragmentResolver.
type FragmentResolver struct {
	ResolveFn  func(dir, kind, id string) (*coursechef.Node, error)
	ReadLeafFn func(dir, kind, id, ext string) (string, error)
}

func (r *FragmentResolver) Resolve(dir, kind, id string) (*coursechef.Node, error) {
	return r.ResolveFn(dir, kind, id)
}

func (r *FragmentResolver) ReadLeaf(dir, kind, id, ext string) (string, error) {
	return r.ReadLeafFn(dir, kind, id, ext)
}
