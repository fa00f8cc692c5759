// Package discover finds lintable JavaScript files in a repository.
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/paramlint/paramlint/internal/parser"
)

var skipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	".hg":          {},
	".svn":         {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
	"vendor":       {},
}

// Options control which files are returned.
type Options struct {
	// Include globs; empty means every detected JavaScript file.
	Include []string
	// Exclude globs, applied after Include.
	Exclude []string
}

// Files discovers JavaScript source files under root, honoring .gitignore
// and the include/exclude globs. Paths are relative to root and sorted.
func Files(root string, opts Options) ([]string, error) {
	gi := loadGitignore(root)

	var results []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		if parser.DetectLanguage(name) == parser.LanguageUnknown {
			return nil
		}

		if !matches(rel, opts.Include, true) || matches(rel, opts.Exclude, false) {
			return nil
		}

		results = append(results, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)
	return results, nil
}

// matches reports whether rel matches any of the globs, testing both the
// full relative path and the base name. Doublestar segments are reduced to
// path-suffix matching since filepath.Match has no "**".
func matches(rel string, globs []string, emptyResult bool) bool {
	if len(globs) == 0 {
		return emptyResult
	}
	base := filepath.Base(rel)
	for _, glob := range globs {
		pattern := strings.TrimPrefix(glob, "**/")
		if strings.HasSuffix(pattern, "/**") {
			prefix := strings.TrimSuffix(pattern, "/**")
			if strings.Contains("/"+rel+"/", "/"+prefix+"/") {
				return true
			}
			continue
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
