package api

import (
	"github.com/lyraproj/dgo/dgo"
)

// A Configuration is the minimal key/value capability required by the merge and promotion
// utilities. Values are opaque dgo values. The utilities never retain a reference to a
// Configuration after the call that received it returns.
type Configuration interface {
	// Keys returns the keys currently known to this configuration. The order is
	// implementation defined.
	Keys() []string

	// Get returns the value associated with the given key or nil when the key is unknown.
	Get(key string) dgo.Value

	// Set associates the given value with the given key, replacing any previous value.
	Set(key string, value dgo.Value)

	// Add accumulates the given value under the given key. A previous value is retained and
	// the key becomes associated with the collection of all added values.
	Add(key string, value dgo.Value)
}

// A HierarchicalConfiguration stores values in a tree of nested maps. Keys denote paths into
// that tree and are interpreted by the configurations KeyStrategy unless raw keys mode is in
// effect, in which case each key is one single path segment regardless of its spelling.
type HierarchicalConfiguration interface {
	Configuration

	// KeyStrategy returns the strategy used to interpret keys as paths
	KeyStrategy() KeyStrategy

	// SetKeyStrategy installs the strategy used to interpret keys as paths
	SetKeyStrategy(s KeyStrategy)

	// RawKeys reports whether key splitting is suppressed so that each key is stored as one
	// single path segment
	RawKeys() bool

	// SetRawKeys controls whether key splitting is suppressed
	SetRawKeys(raw bool)

	// AsMap returns the root of the tree. Nested values are maps for every interior node.
	AsMap() dgo.Map
}

// A Cloneable configuration can produce a deep copy of itself. The capability is part of the
// type, not discovered at runtime.
type Cloneable interface {
	// Clone returns a copy of this configuration. Subsequent changes to either of the two
	// configurations are not visible in the other.
	Clone() Configuration
}

// An ErrorSource reports error conditions that it would otherwise just log and ignore to an
// installed handler. It is the boundary required to enable fail fast mode on a configuration.
type ErrorSource interface {
	// OnError installs the handler that receives every reported error condition, replacing
	// any previously installed handler.
	OnError(handler func(error))
}
