package config

import (
	"github.com/lyraproj/confres/api"
)

// EnableFailFast turns every error condition subsequently reported by the given configuration
// into a raised panic carrying the original cause. Per default such conditions are logged and
// ignored. The configuration must implement api.ErrorSource or an error describing the usage
// fault is returned. The mode is installed once and cannot be removed.
func EnableFailFast(c api.Configuration) error {
	es, ok := c.(api.ErrorSource)
	if !ok {
		return api.NotAnErrorSource(c)
	}
	es.OnError(func(err error) {
		panic(err)
	})
	return nil
}
