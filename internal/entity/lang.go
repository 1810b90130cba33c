// Package entity defines the data model shared by every scanner and
// detector: language identifiers, entity kinds, line events, entity
// spans, and the file/sibling context passed into detection.
package entity

// Lang is an opaque language identifier. The zero value Absent means
// "no decision"; any other value is drawn from an open-ended set —
// new languages are added by registering a scanner, not by editing
// this type.
type Lang string

// Absent is the language identifier returned when detection yields no
// decision.
const Absent Lang = ""

// Closed-ish enumeration of the identifiers this module ships
// scanners and detection rules for. Detection and scanning code must
// treat any other non-empty string as a valid, if unscannable,
// language id (e.g. one contributed only by the extension table).
const (
	LangC              Lang = "c"
	LangCPP            Lang = "cpp"
	LangObjectiveC     Lang = "objective-c"
	LangGo             Lang = "go"
	LangJava           Lang = "java"
	LangCSharp         Lang = "csharp"
	LangClearsilver    Lang = "clearsilver"
	LangClearsilverTemplate Lang = "clearsilver-template"
	LangCSAspx         Lang = "cs-aspx"
	LangVBAspx         Lang = "vb-aspx"
	LangPython         Lang = "python"
	LangRuby           Lang = "ruby"
	LangPerl           Lang = "perl"
	LangShell          Lang = "shell"
	LangWaf            Lang = "waf"
	LangPHP            Lang = "php"
	LangJavaScript     Lang = "javascript"
	LangCSS            Lang = "css"
	LangHTML           Lang = "html"
	LangXML            Lang = "xml"
	LangFortranFixed   Lang = "fortran-fixed"
	LangFortranFree    Lang = "fortran-free"
	LangClassicBasic   Lang = "classic-basic"
	LangVisualBasic    Lang = "visualbasic"
	LangStructuredBasic Lang = "structured-basic"
	LangSmalltalk      Lang = "smalltalk"
	LangMatlab         Lang = "matlab"
	LangOctave         Lang = "octave"
	LangLimbo          Lang = "limbo"
	LangPike           Lang = "pike"
	LangMakefile       Lang = "makefile"
	LangCMake          Lang = "cmake"
	LangAutoconf       Lang = "autoconf"
	LangOCaml          Lang = "ocaml"
)
