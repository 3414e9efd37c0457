package confres_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/lyraproj/confres/api"
	"github.com/lyraproj/confres/confres"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	a := confres.Locate(`testdata`, `app.yaml`, nil)
	require.NotNil(t, a)
	p, _ := a.Path()
	require.Equal(t, filepath.Join(`testdata`, `app.yaml`), p)
}

func TestLocate_notFound(t *testing.T) {
	require.Nil(t, confres.Locate(`testdata`, `nonexistent.yaml`, nil))
}

func TestLocate_homeOption(t *testing.T) {
	a := confres.Locate(``, `app.yaml`, map[string]string{api.Home: `testdata`})
	require.NotNil(t, a)
	p, _ := a.Path()
	require.Equal(t, filepath.Join(`testdata`, `app.yaml`), p)
}

func TestTryLocate(t *testing.T) {
	a, err := confres.TryLocate(`testdata`, `app.yaml`, nil)
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestLocateAndRender_text(t *testing.T) {
	out := bytes.Buffer{}
	opts := &confres.CommandOptions{Base: `testdata`, RenderAs: `s`}
	require.True(t, confres.LocateAndRender(opts, []string{`app.yaml`}, &out))
	require.Contains(t, out.String(), `file://`)
	require.Contains(t, out.String(), `app.yaml`)
}

func TestLocateAndRender_json(t *testing.T) {
	out := bytes.Buffer{}
	opts := &confres.CommandOptions{Base: `testdata`, RenderAs: `json`}
	require.True(t, confres.LocateAndRender(opts, []string{`app.yaml`}, &out))
	require.Contains(t, out.String(), `"file://`)
}

func TestLocateAndRender_notFound(t *testing.T) {
	out := bytes.Buffer{}
	opts := &confres.CommandOptions{Base: `testdata`, RenderAs: `json`}
	require.False(t, confres.LocateAndRender(opts, []string{`nonexistent.yaml`}, &out))
	require.Equal(t, "null\n", out.String())
}

func TestLocateAndRender_roots(t *testing.T) {
	out := bytes.Buffer{}
	opts := &confres.CommandOptions{Roots: []string{`testdata`}, RenderAs: `s`}
	require.True(t, confres.LocateAndRender(opts, []string{`app.yaml`}, &out))
	require.Contains(t, out.String(), `app.yaml`)
}

func TestLocateAndRender_explain(t *testing.T) {
	out := bytes.Buffer{}
	opts := &confres.CommandOptions{Base: `testdata`, Explain: true}
	require.False(t, confres.LocateAndRender(opts, []string{`nonexistent.yaml`}, &out))
	require.Contains(t, out.String(), `Not found`)
}

func TestLocateAndRender_badRendering(t *testing.T) {
	out := bytes.Buffer{}
	opts := &confres.CommandOptions{Base: `testdata`, RenderAs: `bogus`}
	require.Panics(t, func() { confres.LocateAndRender(opts, []string{`app.yaml`}, &out) })
}
