package api

import (
	"github.com/lyraproj/dgo/dgo"
)

// An AddressKind describes the kind of a resolved address.
type AddressKind string

// KindURL indicates that the address was constructed directly as a URL
const KindURL = AddressKind(`url`)

// KindPath indicates that the address designates a path in the local file system
const KindPath = AddressKind(`path`)

// An Address is the resolved location of a configuration resource. It is either a direct URL
// or a local filesystem path. The external representation is always a URL string. An Address
// is immutable once produced.
type Address interface {
	dgo.Value

	// Kind returns the kind of this address
	Kind() AddressKind

	// URL returns the external URL representation of this address. A path address is rendered
	// using the file scheme.
	URL() string

	// Path returns the filesystem path that this address designates together with true. The
	// boolean is false for URL addresses that do not use the file scheme.
	Path() (string, bool)
}
