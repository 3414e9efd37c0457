// Package locate contains the resource locator that finds a named configuration resource
// across a prioritized sequence of candidate locations
package locate

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/confres/api"
	"github.com/lyraproj/confres/fsys"
	"github.com/lyraproj/confres/loader"
)

// A Locator resolves a (basePath, name) pair into an Address by trying a fixed chain of
// search steps: direct URL construction, absolute local path, base directory relative path,
// user home relative path and finally logical name resolution through the loaders. The first
// step that produces an address wins.
//
// A Locator holds no mutable state between calls. Every Locate invocation derives its result
// from the supplied arguments and the current external state only.
type Locator struct {
	fs        api.FileSystem
	context   api.Loader
	global    api.Loader
	home      string
	explainer api.Explainer
}

type searchStep struct {
	name string
	find func(l *Locator, basePath, name string) api.Address
}

// The chain is fixed and is never reordered based on prior results, so identical inputs
// resolve identically for identical external state.
var chain = []searchStep{
	{`direct url`, (*Locator).directURL},
	{`absolute path`, (*Locator).absolutePath},
	{`base path`, (*Locator).basePath},
	{`user home`, (*Locator).homePath},
	{`loader`, (*Locator).loaderLookup},
}

// New creates a Locator that uses the given file system and loaders. A nil fs is replaced by
// the process wide default file system and a nil global loader by the loader registered with
// loader.SetGlobal. The context loader is consulted before the global one. The options
// argument is an optional map where the api.Home key overrides the home directory used by
// the user home step.
func New(fs api.FileSystem, context, global api.Loader, options interface{}) *Locator {
	if fs == nil {
		fs = fsys.Default()
	}
	om := api.ToMap(`locator options`, options)
	home := ``
	if h, ok := om.Get(api.Home).(dgo.String); ok {
		home = h.GoString()
	}
	return &Locator{fs: fs, context: context, global: global, home: home}
}

// WithExplainer returns a copy of this locator that records every attempted search step and
// its outcome in the given explainer
func (l *Locator) WithExplainer(ex api.Explainer) *Locator {
	lc := *l
	lc.explainer = ex
	return &lc
}

// Locate resolves the named resource and returns its address, or nil when the resource
// cannot be found. Absence is an expected outcome, not an error. An empty name always yields
// nil without any step being attempted.
//
// The absolute path step uses the platforms notion of an absolute path. A name with a
// leading path separator is absolute on Unix but not on Windows, so a relative name should
// never start with a separator.
func (l *Locator) Locate(basePath, name string) api.Address {
	log := hclog.Default()
	if log.IsDebug() {
		log.Debug(`locate`, `base`, basePath, `name`, name)
	}
	if name == `` {
		// undefined, always absent
		return nil
	}
	for _, s := range chain {
		if a := l.step(s, basePath, name); a != nil {
			return a
		}
	}
	return nil
}

func (l *Locator) step(s searchStep, basePath, name string) api.Address {
	if l.explainer == nil {
		return s.find(l, basePath, name)
	}
	defer l.explainer.Pop()
	l.explainer.PushStep(s.name, basePath, name)
	a := s.find(l, basePath, name)
	if a == nil {
		l.explainer.AcceptNotFound()
	} else {
		l.explainer.AcceptFound(a)
	}
	return a
}

// directURL trusts an address constructed by the file system as is. No existence check takes
// place. A malformed candidate is logged as a warning and the chain proceeds.
func (l *Locator) directURL(basePath, name string) api.Address {
	a, err := l.fs.URL(basePath, name)
	if err != nil {
		hclog.Default().Warn(`could not construct URL`, `base`, basePath, `name`, name, `error`, err.Error())
		return nil
	}
	if a != nil {
		hclog.Default().Debug(`loading configuration from URL`, `url`, a.URL())
	}
	return a
}

func (l *Locator) absolutePath(_, name string) api.Address {
	if filepath.IsAbs(name) && exists(name) {
		hclog.Default().Debug(`loading configuration from absolute path`, `path`, name)
		return fsys.NewPath(name)
	}
	return nil
}

func (l *Locator) basePath(basePath, name string) api.Address {
	p := l.fs.ConstructPath(basePath, name)
	if p != `` && exists(p) {
		hclog.Default().Debug(`loading configuration from path`, `path`, p)
		return fsys.NewPath(p)
	}
	return nil
}

func (l *Locator) homePath(_, name string) api.Address {
	h := l.home
	if h == `` {
		hd, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		h = hd
	}
	p := l.fs.ConstructPath(h, name)
	if p != `` && exists(p) {
		hclog.Default().Debug(`loading configuration from home path`, `path`, p)
		return fsys.NewPath(p)
	}
	return nil
}

// loaderLookup consults the context scoped loader first and the process wide loader second.
// The first hit wins and the results of the two tiers are never merged.
func (l *Locator) loaderLookup(_, name string) api.Address {
	if l.context != nil {
		if a := l.context.Resolve(name); a != nil {
			hclog.Default().Debug(`loading configuration from context loader`, `name`, name)
			return a
		}
	}
	g := l.global
	if g == nil {
		g = loader.Global()
	}
	if g != nil {
		if a := g.Resolve(name); a != nil {
			hclog.Default().Debug(`loading configuration from global loader`, `name`, name)
			return a
		}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
