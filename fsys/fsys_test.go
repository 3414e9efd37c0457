package fsys_test

import (
	"path/filepath"
	"testing"

	"github.com/lyraproj/confres/api"
	"github.com/lyraproj/confres/fsys"
	"github.com/stretchr/testify/require"
)

func TestURL_full(t *testing.T) {
	a, err := fsys.Default().URL(``, `http://example.com/conf.yaml`)
	require.NoError(t, err)
	require.NotNil(t, a)
	require.Equal(t, api.KindURL, a.Kind())
	require.Equal(t, `http://example.com/conf.yaml`, a.URL())
}

func TestURL_fullIgnoresBase(t *testing.T) {
	a, err := fsys.Default().URL(`http://other.example.com/etc/`, `http://example.com/conf.yaml`)
	require.NoError(t, err)
	require.Equal(t, `http://example.com/conf.yaml`, a.URL())
}

func TestURL_baseRelative(t *testing.T) {
	a, err := fsys.Default().URL(`http://example.com/etc/`, `conf.yaml`)
	require.NoError(t, err)
	require.NotNil(t, a)
	require.Equal(t, `http://example.com/etc/conf.yaml`, a.URL())
}

func TestURL_malformedName(t *testing.T) {
	_, err := fsys.Default().URL(`http://example.com/etc/`, `%zz`)
	require.Error(t, err)
}

func TestURL_notApplicable(t *testing.T) {
	a, err := fsys.Default().URL(`/etc`, `conf.yaml`)
	require.NoError(t, err)
	require.Nil(t, a)
}

func TestURL_driveLetterIsNotAScheme(t *testing.T) {
	a, err := fsys.Default().URL(``, `C:\temp\conf.yaml`)
	require.NoError(t, err)
	require.Nil(t, a)
}

func TestConstructPath(t *testing.T) {
	fs := fsys.Default()
	abs, err := filepath.Abs(`conf.yaml`)
	require.NoError(t, err)
	require.Equal(t, abs, fs.ConstructPath(`/etc`, abs))
	require.Equal(t, `conf.yaml`, fs.ConstructPath(``, `conf.yaml`))
	require.Equal(t, filepath.Join(`etc`, `conf.yaml`), fs.ConstructPath(`etc`, `conf.yaml`))
}

func TestPathAddress_url(t *testing.T) {
	a := fsys.NewPath(filepath.FromSlash(`/tmp/a b.txt`))
	require.Equal(t, api.KindPath, a.Kind())
	require.Equal(t, `file:///tmp/a%20b.txt`, a.URL())
	p, ok := a.Path()
	require.True(t, ok)
	require.Equal(t, filepath.FromSlash(`/tmp/a b.txt`), p)
}

func TestURLAddress_path(t *testing.T) {
	a, err := fsys.Default().URL(``, `file:///tmp/a%20b.txt`)
	require.NoError(t, err)
	p, ok := a.Path()
	require.True(t, ok)
	require.Equal(t, `/tmp/a b.txt`, p)

	a, err = fsys.Default().URL(``, `http://example.com/conf.yaml`)
	require.NoError(t, err)
	_, ok = a.Path()
	require.False(t, ok)
}

func TestFileFromURL(t *testing.T) {
	p, ok := fsys.FileFromURL(`file:///tmp/a%20b.txt`)
	require.True(t, ok)
	require.Equal(t, filepath.FromSlash(`/tmp/a b.txt`), p)

	_, ok = fsys.FileFromURL(`http://example.com/conf.yaml`)
	require.False(t, ok)
}

func TestAddress_equals(t *testing.T) {
	require.True(t, fsys.NewPath(`/tmp/x`).Equals(fsys.NewPath(`/tmp/x`)))
	require.False(t, fsys.NewPath(`/tmp/x`).Equals(fsys.NewPath(`/tmp/y`)))
	a, err := fsys.Default().URL(``, `http://example.com/x`)
	require.NoError(t, err)
	b, err := fsys.Default().URL(``, `http://example.com/x`)
	require.NoError(t, err)
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(fsys.NewPath(`/tmp/x`)))
}
