// Package merge contains the generic merge utilities that operate on any Configuration
package merge

import (
	"github.com/lyraproj/confres/api"
)

// Copy sets every key currently enumerable in source to the corresponding key in target,
// overwriting any existing value. Values are treated as opaque payloads. Enumeration order is
// whatever the source exposes.
//
// Calling Copy with source == target is only safe when the configuration supports iteration
// during mutation. That is a caller obligation, not something Copy guards against.
func Copy(source, target api.Configuration) {
	for _, k := range source.Keys() {
		target.Set(k, source.Get(k))
	}
}

// Append adds every key currently enumerable in source to the corresponding key in target
// using the targets accumulate semantics. Existing values in target are retained.
//
// The caller obligation described for Copy applies to Append as well.
func Append(source, target api.Configuration) {
	for _, k := range source.Keys() {
		target.Add(k, source.Get(k))
	}
}

// Into merges every key of source into target. When target already holds a value for a key,
// the two values are combined using the given strategy with the target value in the role of
// the value with precedence. A nil strategy is the same as the first found strategy, i.e.
// existing values win.
func Into(source, target api.Configuration, s Strategy) {
	if s == nil {
		s = GetStrategy(`first`, nil)
	}
	for _, k := range source.Keys() {
		v := source.Get(k)
		if ex := target.Get(k); ex != nil {
			v = s.Merge(ex, v)
		}
		target.Set(k, v)
	}
}
