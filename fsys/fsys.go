// Package fsys provides the default file system abstraction used by the resource locator.
package fsys

import (
	"net/url"
	"path/filepath"

	"github.com/lyraproj/confres/api"
)

type defaultFS struct{}

var currentDefault api.FileSystem = defaultFS{}

// Default returns the process wide default file system
func Default() api.FileSystem {
	return currentDefault
}

// SetDefault replaces the process wide default file system
func SetDefault(fs api.FileSystem) {
	currentDefault = fs
}

// URL constructs a direct address from basePath and name. A fully qualified URL in name is
// passed through as is. When name is relative and basePath is a fully qualified URL, name is
// resolved against it. No file system access takes place.
func (defaultFS) URL(basePath, name string) (api.Address, error) {
	if u := parseFullURL(name); u != nil {
		return NewURL(u), nil
	}
	if bu := parseFullURL(basePath); bu != nil {
		u, err := bu.Parse(name)
		if err != nil {
			return nil, err
		}
		return NewURL(u), nil
	}
	return nil, nil
}

// ConstructPath combines basePath and name. An absolute name is returned as is and an empty
// basePath yields the name itself, i.e. a path relative to the process working directory.
func (defaultFS) ConstructPath(basePath, name string) string {
	if filepath.IsAbs(name) || basePath == `` {
		return name
	}
	return filepath.Join(basePath, name)
}

// parseFullURL returns the parsed URL when s is a fully qualified URL and nil otherwise. A
// scheme of one single letter is not considered a scheme since it then is impossible to
// distinguish it from a Windows drive letter.
func parseFullURL(s string) *url.URL {
	if s == `` {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || len(u.Scheme) < 2 {
		return nil
	}
	return u
}

// FileFromAddress returns the local filesystem path that the given address designates. The
// second return value is false when the address is a URL that does not use the file scheme.
func FileFromAddress(a api.Address) (string, bool) {
	if a == nil {
		return ``, false
	}
	return a.Path()
}

// FileFromURL parses the given URL string and returns its percent-decoded path when the URL
// uses the file scheme.
func FileFromURL(urlStr string) (string, bool) {
	u, err := url.Parse(urlStr)
	if err != nil || u.Scheme != `file` {
		return ``, false
	}
	return fromSlash(u.Path), true
}

func toSlash(path string) string {
	return filepath.ToSlash(path)
}

func fromSlash(path string) string {
	return filepath.FromSlash(path)
}
