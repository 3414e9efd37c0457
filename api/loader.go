package api

// A Loader resolves logical resource names into addresses. Loaders back the last step of the
// resolution chain where a name is no longer treated as a path but as a logical name in some
// externally supplied resource space.
type Loader interface {
	// Resolve returns the address of the named resource or nil when this loader does not
	// know the name
	Resolve(name string) Address
}
