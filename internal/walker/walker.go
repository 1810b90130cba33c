// Package walker discovers files under a set of roots, applying the
// same dotfile-skipping and exclusion-prefix rules as the original
// flat filter/process split, adapted to filepath.WalkDir and to constructing
// entity.FileContext values with per-directory sibling snapshots.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Br3nda/polyloc/internal/entity"
)

// Options configures a walk.
type Options struct {
	// Exclusions are path prefixes (relative to the walk root, or
	// absolute) skipped entirely, mirroring the teacher's -exclude
	// flag semantics: an exact match or a "/"-bounded prefix match.
	Exclusions []string
	// SkipDotfiles skips any path component starting with ".". The
	// teacher always did this; here it is a flag so tests can turn it
	// off without synthesizing dotfile-free fixtures.
	SkipDotfiles bool
}

// DefaultOptions returns the teacher's historical behavior: dotfiles
// skipped, no exclusions.
func DefaultOptions() Options {
	return Options{SkipDotfiles: true}
}

// Visit is called once per discovered regular file, with a
// FileContext whose Load lazily reads the file and whose Siblings
// reflects every other entry in the same directory.
type Visit func(*entity.FileContext) error

// Walk visits every regular file under each root not excluded by opts,
// in per-directory lexical order. Sibling snapshots are computed once
// per directory and shared by every FileContext constructed for that
// directory's files, so the SiblingSet's memoized flags amortize
// across a directory instead of recomputing per file.
func Walk(roots []string, opts Options, visit Visit) error {
	siblingCache := make(map[string]*entity.SiblingSet)

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if excluded(root, path, opts) {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}

			dir := filepath.Dir(path)
			siblings, ok := siblingCache[dir]
			if !ok {
				siblings, err = siblingsOf(dir)
				if err != nil {
					return err
				}
				siblingCache[dir] = siblings
			}

			fc := &entity.FileContext{
				Path:     path,
				Siblings: siblings,
				Load:     loader(path),
			}
			return visit(fc)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// excluded reports whether path should be skipped, per the teacher's
// dotfile and prefix-exclusion rules.
func excluded(root, path string, opts Options) bool {
	if opts.SkipDotfiles && isDotPath(path) {
		return true
	}
	rel, relErr := filepath.Rel(root, path)
	for _, ex := range opts.Exclusions {
		if ex == "" {
			continue
		}
		if hasPathPrefix(path, ex) || (relErr == nil && hasPathPrefix(rel, ex)) {
			return true
		}
	}
	return false
}

func hasPathPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+string(filepath.Separator))
}

func isDotPath(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// loader returns a lazy content reader bound to path, matching
// FileContext.Load's contract.
func loader(path string) func() ([]byte, error) {
	return func() ([]byte, error) {
		return os.ReadFile(path)
	}
}

// siblingsOf lists the basenames of every entry in dir, sorted for
// deterministic snapshot content.
func siblingsOf(dir string) (*entity.SiblingSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return entity.NewSiblingSet(names), nil
}
