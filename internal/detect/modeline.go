package detect

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/Br3nda/polyloc/internal/entity"
)

var modeLineRe = regexp.MustCompile(`-\*-\s*(?:(.*?)\s*;\s*)?mode:\s*([A-Za-z0-9+_-]+)(?:\s*;.*?)?\s*-\*-|-\*-\s*([A-Za-z0-9+_-]+)\s*-\*-`)

// modeLineRemap handles the two non-identity spellings spec.md §4.4
// stage 5 calls out.
var modeLineRemap = map[string]entity.Lang{
	"c++":  entity.LangCPP,
	"caml": entity.LangOCaml,
}

// emacsModeLine parses the first line (or first two lines if a
// shebang is present) for an emacs "-*- ... mode: NAME ... -*-" or
// "-*- NAME -*-" marker, per spec.md §4.4 stage 5.
func emacsModeLine(content []byte) (entity.Lang, bool) {
	lines := firstLines(content, 2)
	for i, line := range lines {
		if i == 1 && !bytes.HasPrefix(lines[0], []byte("#!")) {
			break // only consult line 2 when line 1 is a shebang
		}
		m := modeLineRe.FindSubmatch(line)
		if m == nil {
			continue
		}
		name := string(m[2])
		if name == "" {
			name = string(m[3])
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if remapped, ok := modeLineRemap[name]; ok {
			return remapped, true
		}
		if lang, ok := knownModeLineNames[name]; ok {
			return lang, true
		}
	}
	return entity.Absent, false
}

func firstLines(content []byte, n int) [][]byte {
	var out [][]byte
	start := 0
	for i := 0; i < len(content) && len(out) < n; i++ {
		if content[i] == '\n' {
			out = append(out, content[start:i])
			start = i + 1
		}
	}
	if len(out) < n && start < len(content) {
		out = append(out, content[start:])
	}
	return out
}

// knownModeLineNames maps an emacs mode name to a language
// identifier, accepting the name only if it appears here.
var knownModeLineNames = map[string]entity.Lang{
	"c":          entity.LangC,
	"c++":        entity.LangCPP,
	"cperl":      entity.LangPerl,
	"perl":       entity.LangPerl,
	"python":     entity.LangPython,
	"ruby":       entity.LangRuby,
	"shell-script": entity.LangShell,
	"sh":         entity.LangShell,
	"html":       entity.LangHTML,
	"xml":        entity.LangXML,
	"objc":       entity.LangObjectiveC,
	"java":       entity.LangJava,
	"go":         entity.LangGo,
}
