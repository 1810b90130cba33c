// Package license sniffs common OSS license headers out of a file's
// leading bytes using a small regex bank loaded from an embedded TOML
// table, so the bank is data rather than a hardcoded if/else chain.
package license

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

//go:embed licenses.toml
var defaultBankTOML []byte

// headScanBytes bounds how much of a file is scanned for a license
// header; headers live near the top, and scanning whole files would
// waste time on large sources.
const headScanBytes = 4096

// Entry is one bank record: a license name and the compiled regex
// that identifies it.
type Entry struct {
	Name    string
	pattern *regexp.Regexp
}

type rawEntry struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
}

type rawBank struct {
	Licenses []rawEntry `toml:"license"`
}

// Bank is a compiled set of license-detection entries, checked in
// table order; the first match wins.
type Bank struct {
	entries []Entry
}

// Default returns a Bank loaded from the bundled license table.
func Default() *Bank {
	b, err := decode(defaultBankTOML)
	if err != nil {
		panic(fmt.Sprintf("license: bundled bank: %v", err))
	}
	return b
}

// Load reads a custom license table from disk.
func Load(path string) (*Bank, error) {
	var raw rawBank
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("license: decoding %s: %w", path, err)
	}
	return compile(raw)
}

func decode(data []byte) (*Bank, error) {
	var raw rawBank
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return compile(raw)
}

func compile(raw rawBank) (*Bank, error) {
	entries := make([]Entry, 0, len(raw.Licenses))
	for _, r := range raw.Licenses {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("license: compiling pattern for %s: %w", r.Name, err)
		}
		entries = append(entries, Entry{Name: r.Name, pattern: re})
	}
	return &Bank{entries: entries}, nil
}

// Identify returns the name of the first matching license in content,
// or ("", false) if none match. Only the first headScanBytes bytes are
// considered.
func (b *Bank) Identify(content []byte) (string, bool) {
	if len(content) > headScanBytes {
		content = content[:headScanBytes]
	}
	for _, e := range b.entries {
		if e.pattern.Match(content) {
			return e.Name, true
		}
	}
	return "", false
}
