package merge

import (
	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
)

type (
	deepMerge struct{ opts dgo.Map }

	hashMerge struct{}

	firstFound struct{}

	unique struct{}
)

// A Strategy determines how two values found for the same key are combined. The first
// argument of Merge has precedence.
type Strategy interface {
	// Name returns the name that GetStrategy resolves
	Name() string

	// Label returns a human readable label for diagnostics
	Label() string

	// Merge combines the values a and b
	Merge(a, b dgo.Value) dgo.Value
}

// GetStrategy returns the Strategy that corresponds to the given name. The options argument
// is only applicable to deep merge
func GetStrategy(n string, opts dgo.Map) Strategy {
	switch n {
	case `first`:
		return &firstFound{}
	case `unique`:
		return &unique{}
	case `hash`:
		return &hashMerge{}
	case `deep`:
		if opts == nil {
			opts = vf.Map()
		}
		return &deepMerge{opts}
	default:
		panic(api.UnknownMergeStrategy(n))
	}
}

func (d *firstFound) Name() string {
	return `first`
}

func (d *firstFound) Label() string {
	return `first found strategy`
}

func (d *firstFound) Merge(a, b dgo.Value) dgo.Value {
	return a
}

func (d *unique) Name() string {
	return `unique`
}

func (d *unique) Label() string {
	return `unique merge strategy`
}

func (d *unique) Merge(a, b dgo.Value) dgo.Value {
	return toFlatArray(a).WithAll(toFlatArray(b)).Unique()
}

func toFlatArray(v dgo.Value) dgo.Array {
	if av, ok := v.(dgo.Array); ok {
		return av.Flatten()
	}
	return vf.Values(v)
}

func (d *hashMerge) Name() string {
	return `hash`
}

func (d *hashMerge) Label() string {
	return `hash merge strategy`
}

func (d *hashMerge) Merge(a, b dgo.Value) dgo.Value {
	if ah, ok := a.(dgo.Map); ok {
		var bh dgo.Map
		if bh, ok = b.(dgo.Map); ok {
			return bh.Merge(ah)
		}
	}
	return a
}

func (d *deepMerge) Name() string {
	return `deep`
}

func (d *deepMerge) Label() string {
	return `deep merge strategy`
}

func (d *deepMerge) Merge(a, b dgo.Value) dgo.Value {
	v, _ := Deep(a, b, d.opts)
	return v
}
