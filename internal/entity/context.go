package entity

import (
	"path/filepath"
	"strings"
	"sync"
)

// FileContext bundles what detection needs to know about one file:
// its path, a lazy content loader, and the sibling snapshot of its
// logical source set.
type FileContext struct {
	Path     string
	Load     func() ([]byte, error)
	Siblings *SiblingSet

	once    sync.Once
	content []byte
	loadErr error
}

// Content reads and caches the file's bytes for the duration of this
// FileContext's lifetime.
func (f *FileContext) Content() ([]byte, error) {
	f.once.Do(func() {
		if f.Load != nil {
			f.content, f.loadErr = f.Load()
		}
	})
	return f.content, f.loadErr
}

// SiblingSet is the immutable set of basenames present alongside a
// file in its logical source set (typically a directory), plus a set
// of derived boolean flags computed lazily and cached against this
// set's identity, per spec.md's memoization requirement.
type SiblingSet struct {
	names map[string]struct{}
	stems map[string][]string // stem (without ext) -> extensions present

	mOnce    sync.Once
	mFlag    bool
	pikeOnce sync.Once
	pikeFlag bool
	vbOnce   sync.Once
	vbFlag   bool
}

// NewSiblingSet builds an immutable snapshot from a list of basenames
// in one directory.
func NewSiblingSet(basenames []string) *SiblingSet {
	s := &SiblingSet{
		names: make(map[string]struct{}, len(basenames)),
		stems: make(map[string][]string),
	}
	for _, n := range basenames {
		s.names[n] = struct{}{}
		ext := filepath.Ext(n)
		stem := strings.TrimSuffix(n, ext)
		s.stems[stem] = append(s.stems[stem], strings.ToLower(ext))
	}
	return s
}

// Has reports whether basename is present in the set.
func (s *SiblingSet) Has(basename string) bool {
	_, ok := s.names[basename]
	return ok
}

// HasExt reports whether any sibling carries the given (lowercased)
// extension, e.g. ".m".
func (s *SiblingSet) HasExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, n := range s.namesSlice() {
		if strings.ToLower(filepath.Ext(n)) == ext {
			return true
		}
	}
	return false
}

// HasStemWithExt reports whether a sibling with the given stem (the
// basename of path, minus its extension) and extension exists.
func (s *SiblingSet) HasStemWithExt(path, ext string) bool {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for _, e := range s.stems[stem] {
		if e == strings.ToLower(ext) {
			return true
		}
	}
	return false
}

func (s *SiblingSet) namesSlice() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	return out
}

// ContainsM reports, with one-shot memoization, whether the set
// contains any .m file. Used by the .h disambiguator.
func (s *SiblingSet) ContainsM() bool {
	s.mOnce.Do(func() { s.mFlag = s.HasExt(".m") })
	return s.mFlag
}

// ContainsPikeOrPmod reports, with one-shot memoization, whether the
// set contains any .pike or .pmod file. Used by the .h disambiguator.
func (s *SiblingSet) ContainsPikeOrPmod() bool {
	s.pikeOnce.Do(func() {
		s.pikeFlag = s.HasExt(".pike") || s.HasExt(".pmod")
	})
	return s.pikeFlag
}

// ContainsVB reports, with one-shot memoization, whether the set
// contains any Visual Basic sibling (.vb, .vba, .vbs, .frm, .frx).
// Used by the .bas disambiguator.
func (s *SiblingSet) ContainsVB() bool {
	s.vbOnce.Do(func() {
		for _, ext := range []string{".vb", ".vba", ".vbs", ".frm", ".frx"} {
			if s.HasExt(ext) {
				s.vbFlag = true
				return
			}
		}
	})
	return s.vbFlag
}
