// Package config contains the in-memory configuration implementations and the promotion
// utility that turns any configuration into a hierarchical one
package config

import (
	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
)

type flat struct {
	props dgo.Map
}

// NewFlat creates an empty flat in-memory configuration
func NewFlat() api.Configuration {
	return &flat{props: vf.MutableMap()}
}

// FlatFromMap creates a flat in-memory configuration holding the entries of the given map
func FlatFromMap(m dgo.Map) api.Configuration {
	props := vf.MutableMap()
	props.PutAll(m)
	return &flat{props: props}
}

func (f *flat) Keys() []string {
	ks := make([]string, 0, f.props.Len())
	f.props.EachEntry(func(e dgo.MapEntry) {
		ks = append(ks, e.Key().String())
	})
	return ks
}

func (f *flat) Get(key string) dgo.Value {
	return f.props.Get(key)
}

func (f *flat) Set(key string, value dgo.Value) {
	f.props.Put(key, value)
}

func (f *flat) Add(key string, value dgo.Value) {
	accumulate(f.props, vf.String(key), value)
}

func (f *flat) Clone() api.Configuration {
	return FlatFromMap(f.props)
}

// accumulate adds value under the given key. The first added value is stored as is and any
// subsequent add turns the entry into an array of all added values.
func accumulate(m dgo.Map, key, value dgo.Value) {
	cur := m.Get(key)
	switch cur := cur.(type) {
	case nil:
		m.Put(key, value)
	case dgo.Array:
		m.Put(key, cur.WithAll(vf.Values(value)))
	default:
		m.Put(key, vf.Values(cur, value))
	}
}
