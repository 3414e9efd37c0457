package config

import (
	"io"
	"strings"

	"github.com/lyraproj/dgo/util"
	"github.com/lyraproj/confres/api"
)

// Dump writes the key/value mappings of the given configuration to the given writer, one
// key=value line per key
func Dump(c api.Configuration, out io.Writer) {
	for _, k := range c.Keys() {
		util.WriteString(out, k)
		util.WriteByte(out, '=')
		util.Fprintln(out, c.Get(k))
	}
}

// ToString returns a string representation of the key/value mappings of the given
// configuration
func ToString(c api.Configuration) string {
	b := &strings.Builder{}
	Dump(c, b)
	return b.String()
}
