package mock

import "github.com/fwojciec/coursechef"

var _ coursechef.AssetLocator = (*AssetLocator)(nil)

// AssetLocator is a mock implementation of coursechef.AssetLocator.
type AssetLocator struct {
	LocateFn func(dir, href string) (string, bool)
}

func (l *AssetLocator) Locate(dir, href string) (string, bool) {
	return l.LocateFn(dir, href)
}
