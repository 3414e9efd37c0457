package merge

import (
	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
)

// Deep will merge the values 'a' and 'b' if both values are maps or both values are arrays.
// When this is not the case, no merge takes place and the 'a' argument is returned. The
// second return value is true if a merge took place and false when the first argument is
// returned.
//
// When both values are maps, Deep is called recursively for entries with identical keys.
// When both values are arrays, the merge creates a union of the unique elements from the two
// arrays. No recursive merge takes place for the array elements.
func Deep(a, b dgo.Value, opi interface{}) (dgo.Value, bool) {
	var options dgo.Map
	if opi != nil {
		options = api.ToMap(`deep merge options`, opi)
	}
	return deep(a, b, options)
}

func deep(a, b dgo.Value, options dgo.Map) (dgo.Value, bool) {
	switch a := a.(type) {
	case dgo.Map:
		if bm, ok := b.(dgo.Map); ok {
			merged := vf.MapWithCapacity(a.Len() + bm.Len())
			a.EachEntry(func(e dgo.MapEntry) {
				if bv := bm.Get(e.Key()); bv != nil {
					if m, mh := deep(e.Value(), bv, options); mh {
						merged.Put(e.Key(), m)
						return
					}
				}
				merged.Put(e.Key(), e.Value())
			})
			bm.EachEntry(func(e dgo.MapEntry) {
				if !a.ContainsKey(e.Key()) {
					merged.Put(e.Key(), e.Value())
				}
			})
			if !a.Equals(merged) {
				return merged, true
			}
		}

	case dgo.Array:
		if ba, ok := b.(dgo.Array); ok && ba.Len() > 0 {
			if a.Len() == 0 {
				return ba, true
			}
			union := a.WithAll(ba).Unique()
			if !union.Equals(a) {
				return union, true
			}
		}
	}
	return a, false
}
