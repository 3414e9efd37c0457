package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lyraproj/confres/api"
	"github.com/lyraproj/confres/fsys"
	"github.com/lyraproj/confres/util"
)

type pathLoader struct {
	roots []string
}

// NewPathLoader creates a loader that resolves logical names against an ordered list of root
// directories. The first root that contains the name wins. A name may contain glob patterns,
// including doublestar, in which case the lexically first match within a root is used.
func NewPathLoader(roots ...string) api.Loader {
	return &pathLoader{roots: roots}
}

func (p *pathLoader) Resolve(name string) api.Address {
	if name == `` {
		return nil
	}
	for _, root := range p.roots {
		if hasGlobMeta(name) {
			if ms, err := util.Glob(root, name); err == nil && len(ms) > 0 {
				return fsys.NewPath(ms[0])
			}
			continue
		}
		pt := filepath.Join(root, filepath.FromSlash(name))
		if _, err := os.Stat(pt); err == nil {
			return fsys.NewPath(pt)
		}
	}
	return nil
}

func hasGlobMeta(name string) bool {
	return strings.ContainsAny(name, `*?[{`)
}
