package util

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
)

// Glob returns the paths beneath root that match the given pattern. The pattern is matched
// against the path relative to root using slash separators and may contain `**` to match
// any number of directories.
func Glob(root string, pattern string) (matches []string, e error) {
	matches = make([]string, 0, 64)
	e = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return rerr
		}
		m, merr := doublestar.Match(pattern, filepath.ToSlash(rel))
		if merr != nil {
			return merr
		}
		if m {
			matches = append(matches, path)
		}
		return nil
	})
	if e != nil {
		matches = nil
	}
	return
}
