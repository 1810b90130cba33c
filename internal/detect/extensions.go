package detect

import "github.com/Br3nda/polyloc/internal/entity"

// extEntry is the tagged variant spec.md §9 describes: an extension
// maps to either a terminal language id or a disambiguator key,
// modeled as a Go struct with a discriminant instead of an untyped
// union.
type extEntry struct {
	terminal entity.Lang
	disambig string // non-empty means "dispatch to this disambiguator"
}

func term(l entity.Lang) extEntry  { return extEntry{terminal: l} }
func disambiguator(key string) extEntry { return extEntry{disambig: key} }

// extensionTable maps a lowercased extension (including the leading
// dot) to its terminal language or disambiguator key, per spec.md
// §4.4 stage 3's table. Looked up case-sensitively first by the
// pipeline, then lowercased.
var extensionTable = map[string]extEntry{
	".c":     term(entity.LangC),
	".cc":    term(entity.LangCPP),
	".cpp":   term(entity.LangCPP),
	".cxx":   term(entity.LangCPP),
	".hpp":   term(entity.LangCPP),
	".hxx":   term(entity.LangCPP),
	".m":     disambiguator("m"),
	".h":     disambiguator("h"),
	".go":    term(entity.LangGo),
	".java":  term(entity.LangJava),
	".cs":    disambiguator("cs"),
	".py":    term(entity.LangPython),
	".rb":    term(entity.LangRuby),
	".pl":    term(entity.LangPerl),
	".pm":    term(entity.LangPerl),
	".sh":    term(entity.LangShell),
	".bash":  term(entity.LangShell),
	".php":   term(entity.LangPHP),
	".phtml": term(entity.LangPHP),
	".js":    term(entity.LangJavaScript),
	".mjs":   term(entity.LangJavaScript),
	".css":   term(entity.LangCSS),
	".html":  term(entity.LangHTML),
	".htm":   term(entity.LangHTML),
	".xml":   term(entity.LangXML),
	".xsd":   term(entity.LangXML),
	".xsl":   term(entity.LangXML),
	".in":    disambiguator("in"),
	".inc":   disambiguator("inc"),
	".f":     disambiguator("f"),
	".for":   disambiguator("f"),
	".ftn":   disambiguator("f"),
	".f77":   disambiguator("f"),
	".f90":   disambiguator("f"),
	".f95":   disambiguator("f"),
	".f03":   disambiguator("f"),
	".aspx":  disambiguator("aspx"),
	".ascx":  disambiguator("aspx"),
	".bas":   disambiguator("bas"),
	".bi":    disambiguator("bi"),
	".st":    disambiguator("st"),
	".b":     disambiguator("b"),
	".pike":  term(entity.LangPike),
	".pmod":  term(entity.LangPike),
	".sma":   term(entity.LangSmalltalk),
	".wscript": term(entity.LangWaf),
}
