package detect

import (
	"regexp"
	"strings"

	"github.com/Br3nda/polyloc/internal/entity"
)

// ExternalProbe is the pipeline's view of spec.md §6's external
// file-type probe: a pure, content-derived description string for a
// realized file on disk. internal/probe supplies the default
// `file`-command-backed implementation; the pipeline only depends on
// this function type, not on internal/probe, keeping the dependency
// swappable per spec.md §9.
type ExternalProbe func(path string) (string, error)

var (
	shellScriptRe = regexp.MustCompile(`(?i)bourne-again shell script|bash script`)
	scriptTextRe  = regexp.MustCompile(`(?i)([a-z0-9_+-]+)\s+script text`)
	xmlDocRe      = regexp.MustCompile(`(?i)XML document text`)
)

// interpretProbe maps a raw `file`-style description to a language
// identifier per spec.md §4.4 stage 6, or reports no answer.
func interpretProbe(desc string) (entity.Lang, bool) {
	if desc == "" {
		return entity.Absent, false
	}
	if shellScriptRe.MatchString(desc) {
		return entity.LangShell, true
	}
	if xmlDocRe.MatchString(desc) {
		return entity.LangXML, true
	}
	if m := scriptTextRe.FindStringSubmatch(desc); m != nil {
		if lang, ok := scriptLangByProbeName[strings.ToLower(m[1])]; ok {
			return lang, true
		}
	}
	return entity.Absent, false
}

var scriptLangByProbeName = map[string]entity.Lang{
	"python": entity.LangPython,
	"ruby":   entity.LangRuby,
	"perl":   entity.LangPerl,
	"php":    entity.LangPHP,
	"shell":  entity.LangShell,
}
