package api

// A FileSystem turns a base path and a name into a URL or a local path. Implementations must
// not access the file system during construction. Existence checks are the responsibility of
// the caller.
type FileSystem interface {
	// URL constructs a direct address from basePath and name. The name is passed through
	// as is when it already is a fully qualified URL. A nil address with a nil error means
	// that the pair does not carry enough information to form a URL. A non-nil error means
	// that a promising candidate turned out to be malformed.
	URL(basePath, name string) (Address, error)

	// ConstructPath combines basePath and name into a local path according to this file
	// systems path construction rule. An absolute name is returned as is. An empty basePath
	// yields a path relative to the process working directory.
	ConstructPath(basePath, name string) string
}
