// Package assets resolves slide references against the local asset
// directory and serves that directory over HTTP.
package assets

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"
)

// LocalScheme marks a slide entry as a glob over the asset directory.
const LocalScheme = "local:"

// URLPrefix is where the asset directory is mounted.
const URLPrefix = "/assets/"

// Resolve expands every "local:<glob>" entry in refs into asset URLs, in
// sorted order, and passes other entries through unchanged. A local pattern
// that matches nothing is an error, since the slide set must stay non-empty
// and in the configured order.
func Resolve(dir string, refs []string) ([]string, error) {
	var out []string
	for _, ref := range refs {
		pattern, ok := strings.CutPrefix(ref, LocalScheme)
		if !ok {
			out = append(out, ref)
			continue
		}

		pattern = strings.TrimPrefix(strings.TrimSpace(pattern), "/")
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid asset pattern %q", pattern)
		}
		if dir == "" {
			return nil, fmt.Errorf("slide %q needs slideshow.asset_dir", ref)
		}

		matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q in %s: %w", pattern, dir, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files in %s", pattern, dir)
		}
		sort.Strings(matches)
		for _, m := range matches {
			out = append(out, URLPrefix+m)
		}
	}
	return out, nil
}

// LocalPath maps an asset URL back to its path relative to the asset dir.
// It reports false for references that are not local assets.
func LocalPath(ref string) (string, bool) {
	rel, ok := strings.CutPrefix(ref, URLPrefix)
	if !ok || rel == "" {
		return "", false
	}
	return path.Clean(rel), true
}

// RegisterRoutes mounts a file server for dir under URLPrefix. An empty or
// missing dir registers nothing.
func RegisterRoutes(r chi.Router, dir string) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}
	fs := http.StripPrefix(URLPrefix, http.FileServer(http.Dir(dir)))
	r.Handle(URLPrefix+"*", fs)
}
