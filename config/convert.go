package config

import (
	"github.com/lyraproj/confres/api"
	"github.com/lyraproj/confres/merge"
)

// ToHierarchical converts the given configuration to a hierarchical one. A configuration
// that already is hierarchical is returned as is, except that a non-nil strategy is installed
// on it. The result is nil if and only if conf is nil.
//
// When a new tree must be built, key splitting is suppressed while the entries are appended
// so that flat keys become single path segments instead of exploding into nested sub trees,
// and then restored to its previous setting.
func ToHierarchical(conf api.Configuration, strategy api.KeyStrategy) api.HierarchicalConfiguration {
	if conf == nil {
		return nil
	}
	if hc, ok := conf.(api.HierarchicalConfiguration); ok {
		if strategy != nil {
			hc.SetKeyStrategy(strategy)
		}
		return hc
	}
	hc := NewHierarchical()
	if strategy != nil {
		hc.SetKeyStrategy(strategy)
	}
	raw := hc.RawKeys()
	hc.SetRawKeys(true)
	merge.Append(conf, hc)
	hc.SetRawKeys(raw)
	return hc
}
