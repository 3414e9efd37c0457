// Package confres contains the entry points to use when using the configuration resource
// locator as a library.
package confres

import (
	"io"

	"github.com/lyraproj/dgo/util"
	"github.com/lyraproj/dgo/vf"
	"github.com/lyraproj/confres/api"
	"github.com/lyraproj/confres/explain"
	"github.com/lyraproj/confres/loader"
	"github.com/lyraproj/confres/locate"
)

// A CommandOptions contains the options given to the CLI locate command or a REST invocation.
type CommandOptions struct {
	// Base is the directory or URL that relative names are resolved against
	Base string

	// Home overrides the user home directory consulted by the home relative search step
	Home string

	// Roots are directories that logical names are resolved against when no file
	// system step finds the resource
	Roots []string

	// RenderAs is the name of the desired rendering
	RenderAs string

	// Explain should be set to true to explain the progress of the location attempt
	Explain bool
}

// Locate resolves the named resource against the given base path using the default file
// system and the global loader. It returns nil when the resource cannot be found.
func Locate(basePath, name string, options interface{}) api.Address {
	return locate.New(nil, nil, nil, options).Locate(basePath, name)
}

// TryLocate resolves the named resource like Locate but recovers a panic raised during the
// attempt and returns it as an error.
func TryLocate(basePath, name string, options interface{}) (a api.Address, err error) {
	err = util.Catch(func() {
		a = Locate(basePath, name, options)
	})
	return
}

// LocateAndRender resolves each of the given names using the given command options and
// renders the result on the given io.Writer in accordance with the RenderAs option. It
// returns true when every name resolved to an address.
func LocateAndRender(opts *CommandOptions, args []string, out io.Writer) bool {
	var options interface{}
	if opts.Home != `` {
		options = map[string]string{api.Home: opts.Home}
	}
	var context api.Loader
	if len(opts.Roots) > 0 {
		context = loader.NewPathLoader(opts.Roots...)
	}
	lc := locate.New(nil, context, nil, options)

	var ex api.Explainer
	if opts.Explain {
		ex = explain.NewExplainer()
		lc = lc.WithExplainer(ex)
	}

	found := true
	results := vf.MutableMap()
	for _, name := range args {
		a := lc.Locate(opts.Base, name)
		if a == nil {
			found = false
			results.Put(name, vf.Nil)
		} else {
			results.Put(name, vf.String(a.URL()))
		}
	}

	if ex != nil {
		renderAs := Text
		if opts.RenderAs != `` {
			renderAs = RenderName(opts.RenderAs)
		}
		Render(renderAs, ex, out)
		return found
	}

	renderAs := YAML
	if opts.RenderAs != `` {
		renderAs = RenderName(opts.RenderAs)
	}
	if len(args) == 1 {
		Render(renderAs, results.Get(args[0]), out)
	} else {
		Render(renderAs, results, out)
	}
	return found
}
