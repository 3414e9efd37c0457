package config

import (
	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgo/util"
	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
)

type hierarchical struct {
	root     dgo.Map
	strategy api.KeyStrategy
	rawKeys  bool
	handler  func(error)
}

// NewHierarchical creates an empty hierarchical in-memory configuration that interprets keys
// using the default dotted key strategy
func NewHierarchical() api.HierarchicalConfiguration {
	return &hierarchical{root: vf.MutableMap(), strategy: api.Dotted()}
}

func (h *hierarchical) KeyStrategy() api.KeyStrategy {
	return h.strategy
}

func (h *hierarchical) SetKeyStrategy(s api.KeyStrategy) {
	h.strategy = s
}

func (h *hierarchical) RawKeys() bool {
	return h.rawKeys
}

func (h *hierarchical) SetRawKeys(raw bool) {
	h.rawKeys = raw
}

func (h *hierarchical) AsMap() dgo.Map {
	return h.root
}

// OnError installs the handler that receives key parse errors. Without a handler such errors
// are logged and the offending key is retained as one single segment.
func (h *hierarchical) OnError(handler func(error)) {
	h.handler = handler
}

func (h *hierarchical) report(err error) {
	if h.handler != nil {
		h.handler(err)
		return
	}
	hclog.Default().Warn(`invalid key`, `error`, err.Error())
}

// parse interprets the given key using the installed strategy. In raw keys mode, and for keys
// that the strategy rejects, the key becomes one single path segment.
func (h *hierarchical) parse(key string) api.Key {
	if h.rawKeys {
		return api.NewRawKey(key)
	}
	var pk api.Key
	if err := util.Catch(func() { pk = h.strategy.Parse(key) }); err != nil {
		h.report(err)
		return api.NewRawKey(key)
	}
	return pk
}

func (h *hierarchical) Keys() []string {
	ks := make([]string, 0, h.root.Len())
	h.eachLeaf(h.root, nil, func(segments []interface{}) {
		if h.rawKeys && len(segments) == 1 {
			ks = append(ks, segments[0].(string))
		} else {
			ks = append(ks, h.strategy.Join(segments))
		}
	})
	return ks
}

func (h *hierarchical) eachLeaf(m dgo.Map, path []interface{}, doer func(segments []interface{})) {
	m.EachEntry(func(e dgo.MapEntry) {
		seg := segment(e.Key())
		if sm, ok := e.Value().(dgo.Map); ok {
			h.eachLeaf(sm, append(path, seg), doer)
			return
		}
		doer(append(path, seg))
	})
}

func (h *hierarchical) Get(key string) dgo.Value {
	k := h.parse(key)
	v := h.root.Get(k.Root())
	if v == nil {
		return nil
	}
	return k.Dig(v)
}

func (h *hierarchical) Set(key string, value dgo.Value) {
	k := h.parse(key)
	m, leaf := h.descend(k)
	m.Put(leaf, value)
}

func (h *hierarchical) Add(key string, value dgo.Value) {
	k := h.parse(key)
	m, leaf := h.descend(k)
	accumulate(m, leaf, value)
}

// descend walks the tree along all but the last part of the given key, creating interior
// maps as needed, and returns the map holding the leaf together with the leaf key.
func (h *hierarchical) descend(k api.Key) (dgo.Map, dgo.Value) {
	m := h.root
	parts := k.Parts()
	last := len(parts) - 1
	for i := 0; i < last; i++ {
		kx := segKey(parts[i])
		sub, ok := m.Get(kx).(dgo.Map)
		if !ok {
			sub = vf.MutableMap()
			m.Put(kx, sub)
		}
		m = sub
	}
	return m, segKey(parts[last])
}

func (h *hierarchical) Clone() api.Configuration {
	return &hierarchical{root: copyTree(h.root), strategy: h.strategy, rawKeys: h.rawKeys}
}

func copyTree(m dgo.Map) dgo.Map {
	c := vf.MutableMap()
	m.EachEntry(func(e dgo.MapEntry) {
		if sm, ok := e.Value().(dgo.Map); ok {
			c.Put(e.Key(), copyTree(sm))
		} else {
			c.Put(e.Key(), e.Value())
		}
	})
	return c
}

func segKey(p interface{}) dgo.Value {
	if ix, ok := p.(int); ok {
		return vf.Integer(int64(ix))
	}
	return vf.String(p.(string))
}

func segment(k dgo.Value) interface{} {
	if i, ok := k.(dgo.Integer); ok {
		return int(i.GoInt())
	}
	return k.String()
}
