// Package loader contains loaders that resolve logical resource names into addresses
package loader

import (
	"net/url"

	"github.com/lyraproj/confres/api"
	"github.com/lyraproj/confres/fsys"
)

var global api.Loader

// Global returns the process wide loader or nil when none has been registered
func Global() api.Loader {
	return global
}

// SetGlobal registers the process wide loader
func SetGlobal(l api.Loader) {
	global = l
}

type mapLoader struct {
	entries map[string]api.Address
}

// NewMapLoader creates a loader that resolves names from an in-memory map of logical name to
// URL string. A panic is raised when a value cannot be parsed as a URL.
func NewMapLoader(entries map[string]string) api.Loader {
	am := make(map[string]api.Address, len(entries))
	for n, s := range entries {
		u, err := url.Parse(s)
		if err != nil {
			panic(err)
		}
		am[n] = fsys.NewURL(u)
	}
	return &mapLoader{entries: am}
}

func (m *mapLoader) Resolve(name string) api.Address {
	return m.entries[name]
}
