package coursechef

// AssetLocator resolves static references to files in a course directory.
type AssetLocator interface {
	// Locate maps href to a path under dir. When no file exists at the
	// direct path, underscores in href are replaced with spaces and the
	// lookup is tried once more. ok is false if neither path exists; path
	// is then the last candidate tried.
	Locate(dir, href string) (path string, ok bool)
}
