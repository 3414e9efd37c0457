package api_test

import (
	"fmt"
	"testing"

	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
	"github.com/stretchr/testify/require"
)

func ExampleNewKey_simple() {
	key := api.NewKey(`simple`)
	fmt.Printf(`%s, %d`, key.Source(), len(key.Parts()))
	// Output: simple, 1
}

func ExampleNewKey_dotted() {
	key := api.NewKey(`a.b.c`)
	fmt.Printf(`%s, %d`, key.Source(), len(key.Parts()))
	// Output: a.b.c, 3
}

func ExampleNewKey_dottedInt() {
	key := api.NewKey(`a.3`)
	fmt.Printf(`%T`, key.Parts()[1])
	// Output: int
}

func ExampleNewKey_quoted() {
	key := api.NewKey(`'a.b'.c`)
	fmt.Printf(`%s, %d`, key.Parts()[0], len(key.Parts()))
	// Output: a.b, 2
}

func ExampleNewKey_doubleQuoted() {
	key := api.NewKey(`a."b.c"`)
	fmt.Printf(`%s, %d`, key.Parts()[1], len(key.Parts()))
	// Output: b.c, 2
}

func TestNewKey_emptySegment(t *testing.T) {
	require.Panics(t, func() { api.NewKey(`a..b`) })
}

func TestNewKey_firstSegmentIndex(t *testing.T) {
	require.Panics(t, func() { api.NewKey(`1.a`) })
}

func TestNewKey_unterminatedQuote(t *testing.T) {
	require.Panics(t, func() { api.NewKey(`a.'b`) })
}

func TestNewRawKey(t *testing.T) {
	k := api.NewRawKey(`a.b`)
	require.Equal(t, 1, len(k.Parts()))
	require.Equal(t, `a.b`, k.Root())
}

func TestKey_dig(t *testing.T) {
	k := api.NewKey(`a.b.1`)
	v := k.Dig(vf.Map(`b`, vf.Values(`x`, `y`)))
	require.NotNil(t, v)
	require.True(t, vf.String(`y`).Equals(v))
}

func TestKey_digMiss(t *testing.T) {
	k := api.NewKey(`a.b.5`)
	require.Nil(t, k.Dig(vf.Map(`b`, vf.Values(`x`, `y`))))
}

func TestKey_bury(t *testing.T) {
	k := api.NewKey(`a.b`)
	v := k.Bury(vf.String(`x`))
	require.True(t, vf.Map(`b`, `x`).Equals(v))
}

func TestKey_equals(t *testing.T) {
	require.True(t, api.NewKey(`a.b`).Equals(api.NewKey(`a.b`)))
	require.False(t, api.NewKey(`a.b`).Equals(`a.b`))
}

func TestDotted_join(t *testing.T) {
	s := api.Dotted()
	k := s.Parse(`a.'b.c'.3`)
	require.Equal(t, `a.'b.c'.3`, s.Join(k.Parts()))
}
