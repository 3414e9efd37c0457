package config_test

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
	"github.com/lyraproj/confres/config"
	"github.com/stretchr/testify/require"
)

func TestFlat(t *testing.T) {
	c := config.NewFlat()
	require.Nil(t, c.Get(`a`))
	c.Set(`a`, vf.Integer(1))
	require.True(t, vf.Integer(1).Equals(c.Get(`a`)))
	c.Set(`a`, vf.Integer(2))
	require.True(t, vf.Integer(2).Equals(c.Get(`a`)))
}

func TestFlat_add(t *testing.T) {
	c := config.NewFlat()
	c.Add(`a`, vf.Integer(1))
	require.True(t, vf.Integer(1).Equals(c.Get(`a`)))
	c.Add(`a`, vf.Integer(2))
	require.True(t, vf.Values(1, 2).Equals(c.Get(`a`)))
	c.Add(`a`, vf.Integer(3))
	require.True(t, vf.Values(1, 2, 3).Equals(c.Get(`a`)))
}

func TestFlat_clone(t *testing.T) {
	c := config.FlatFromMap(vf.Map(`a`, 1))
	cc := c.(api.Cloneable).Clone()
	cc.Set(`a`, vf.Integer(2))
	require.True(t, vf.Integer(1).Equals(c.Get(`a`)))
	require.True(t, vf.Integer(2).Equals(cc.Get(`a`)))
}

func TestHierarchical(t *testing.T) {
	h := config.NewHierarchical()
	h.Set(`a.b`, vf.Integer(1))
	require.True(t, vf.Integer(1).Equals(h.Get(`a.b`)))
	sub, ok := h.Get(`a`).(dgo.Map)
	require.True(t, ok)
	require.True(t, vf.Integer(1).Equals(sub.Get(`b`)))
	require.Nil(t, h.Get(`a.c`))
}

func TestHierarchical_arrayIndex(t *testing.T) {
	h := config.NewHierarchical()
	h.Set(`a.b`, vf.Values(`x`, `y`))
	require.True(t, vf.String(`y`).Equals(h.Get(`a.b.1`)))
	require.Nil(t, h.Get(`a.b.2`))
}

func TestHierarchical_keys(t *testing.T) {
	h := config.NewHierarchical()
	h.Set(`a.b`, vf.Integer(1))
	h.Set(`c`, vf.Integer(2))
	ks := h.Keys()
	sort.Strings(ks)
	require.Equal(t, []string{`a.b`, `c`}, ks)
}

func TestHierarchical_invalidKeyIsRetainedVerbatim(t *testing.T) {
	h := config.NewHierarchical()
	h.Set(`a..b`, vf.Integer(1))
	require.True(t, vf.Integer(1).Equals(h.Get(`a..b`)))
}

func TestHierarchical_clone(t *testing.T) {
	h := config.NewHierarchical()
	h.Set(`a.b`, vf.Integer(1))
	hc := h.(api.Cloneable).Clone().(api.HierarchicalConfiguration)
	hc.Set(`a.b`, vf.Integer(2))
	require.True(t, vf.Integer(1).Equals(h.Get(`a.b`)))
	require.True(t, vf.Integer(2).Equals(hc.Get(`a.b`)))
}

func TestToHierarchical(t *testing.T) {
	c := config.FlatFromMap(vf.Map(`a.b`, 1, `c`, 2))
	h := config.ToHierarchical(c, nil)

	// a key that was one flat entry stays one path segment
	require.Nil(t, h.Get(`a.b`))
	require.True(t, vf.Integer(1).Equals(h.Get(`'a.b'`)))
	require.True(t, vf.Integer(2).Equals(h.Get(`c`)))

	ks := h.Keys()
	sort.Strings(ks)
	require.Equal(t, []string{`'a.b'`, `c`}, ks)
}

func TestToHierarchical_identity(t *testing.T) {
	h := config.NewHierarchical()
	require.True(t, h == config.ToHierarchical(h, nil))
	require.Nil(t, config.ToHierarchical(nil, nil))
}

func TestToHierarchical_rawKeysRestored(t *testing.T) {
	c := config.FlatFromMap(vf.Map(`a`, 1))
	h := config.ToHierarchical(c, api.Dotted())
	require.False(t, h.RawKeys())
}

func TestEnableFailFast(t *testing.T) {
	h := config.NewHierarchical()
	require.NoError(t, config.EnableFailFast(h))
	require.Panics(t, func() { h.Set(`a..b`, vf.Integer(1)) })
}

func TestEnableFailFast_notSupported(t *testing.T) {
	require.Error(t, config.EnableFailFast(config.NewFlat()))
}

func TestFromYamlFile(t *testing.T) {
	c := config.FromYamlFile(filepath.Join(`testdata`, `sample.yaml`))
	h := config.ToHierarchical(c, nil)
	require.True(t, vf.Integer(8080).Equals(h.Get(`server.port`)))
	require.True(t, vf.String(`a`).Equals(h.Get(`names.0`)))
}

func TestFromYaml_notHash(t *testing.T) {
	require.Panics(t, func() { config.FromYamlFile(filepath.Join(`testdata`, `list.yaml`)) })
}

func TestToString(t *testing.T) {
	c := config.FlatFromMap(vf.Map(`a`, 1))
	require.Equal(t, "a=1\n", config.ToString(c))
}

func TestAsMap(t *testing.T) {
	h := config.NewHierarchical()
	h.Set(`a.b`, vf.Integer(1))
	m := h.AsMap()
	sub, ok := m.Get(`a`).(dgo.Map)
	require.True(t, ok)
	require.True(t, vf.Integer(1).Equals(sub.Get(`b`)))
}
