// Package gestalt infers platform/tooling facts about a scanned tree
// from a declarative rule table ("Rails project" from Gemfile plus
// app/controllers, "Go module" from go.mod, and so on), the way
// spec.md's out-of-scope gestalt engine is described but never
// specified in detail. Rules are data (TOML), not code, matching the
// pack's own preference for BurntSushi/toml settings tables over
// hand-rolled parsing.
package gestalt

import (
	_ "embed"
	"fmt"
	"path"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed rules.toml
var defaultRulesTOML []byte

// Rule is one gestalt inference: name it if every Requires glob
// matches some scanned path and no Forbids glob does.
type Rule struct {
	Name     string   `toml:"name"`
	Requires []string `toml:"requires"`
	Forbids  []string `toml:"forbids"`
}

type ruleTable struct {
	Rules []Rule `toml:"rule"`
}

// Engine evaluates a fixed set of rules against a path list.
type Engine struct {
	rules []Rule
}

// Default returns an Engine loaded from the bundled rule table.
func Default() *Engine {
	e, err := decode(defaultRulesTOML)
	if err != nil {
		// The embedded table is a build-time asset; a decode failure
		// here means the asset itself is broken, not a runtime input.
		panic(fmt.Sprintf("gestalt: bundled rule table: %v", err))
	}
	return e
}

// Load reads a custom rule table from disk, replacing the bundled
// defaults entirely.
func Load(path string) (*Engine, error) {
	var t ruleTable
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("gestalt: decoding %s: %w", path, err)
	}
	return &Engine{rules: t.Rules}, nil
}

func decode(data []byte) (*Engine, error) {
	var t ruleTable
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &Engine{rules: t.Rules}, nil
}

// Infer evaluates every rule against paths (relative to the scanned
// root, forward-slash separated) and returns the matching rule names,
// sorted for deterministic output.
func (e *Engine) Infer(paths []string) []string {
	var matched []string
	for _, r := range e.rules {
		if ruleMatches(r, paths) {
			matched = append(matched, r.Name)
		}
	}
	sort.Strings(matched)
	return matched
}

func ruleMatches(r Rule, paths []string) bool {
	for _, req := range r.Requires {
		if !anyMatches(req, paths) {
			return false
		}
	}
	for _, forbid := range r.Forbids {
		if anyMatches(forbid, paths) {
			return false
		}
	}
	return true
}

func anyMatches(pattern string, paths []string) bool {
	for _, p := range paths {
		p = filepath.ToSlash(p)
		if ok, _ := path.Match(pattern, p); ok {
			return true
		}
		if ok, _ := path.Match(pattern, path.Base(p)); ok {
			return true
		}
		if pattern == p || (len(p) > len(pattern) && p[:len(pattern)+1] == pattern+"/") {
			return true
		}
	}
	return false
}
