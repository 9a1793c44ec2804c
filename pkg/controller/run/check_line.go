package run

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config is the effective whitespace style for one file. It is a value,
// not a shared pointer; a modeline produces a new Config instead of
// modifying the base one.
type Config struct {
	ExpandTabs bool
	TabSize    int
	LineLength int
}

func DefaultConfig() Config {
	return Config{
		ExpandTabs: false,
		TabSize:    4,
		LineLength: 80,
	}
}

// CheckResult counts the violations of one line or of one file.
// Results are added pointwise to aggregate per line results into per
// file totals.
type CheckResult struct {
	Fixable   int
	Unfixable int
}

func (r CheckResult) Add(other CheckResult) CheckResult {
	return CheckResult{
		Fixable:   r.Fixable + other.Fixable,
		Unfixable: r.Unfixable + other.Unfixable,
	}
}

func (r CheckResult) OK() bool {
	return r.Fixable == 0 && r.Unfixable == 0
}

// checkLine classifies one line without modifying it. Every rule
// contributes at most one violation, and the rules which fire here are
// exactly the rules fixLine fixes or reports.
func checkLine(cfg Config, line string) CheckResult {
	result := CheckResult{}
	body, term := splitTerminator(line)
	if cfg.ExpandTabs && strings.Contains(body, "\t") {
		result.Fixable++
	}
	if !cfg.ExpandTabs && tabsAfterIndent(body) {
		result.Unfixable++
	}
	if term == termCR || term == termCRLF {
		result.Fixable++
	}
	if term != termNone && endsWithWhitespace(body) {
		result.Fixable++
	}
	if visibleLength(cfg, body) > cfg.LineLength {
		result.Unfixable++
	}
	return result
}

// tabsAfterIndent reports whether a tab occurs after the leading run of
// tabs. Mixed indentation once non tab content has begun is ambiguous
// to correct automatically.
func tabsAfterIndent(body string) bool {
	return strings.ContainsRune(strings.TrimLeft(body, "\t"), '\t')
}

// endsWithWhitespace reports whether the character immediately before
// the terminator is whitespace. An empty body never fires.
func endsWithWhitespace(body string) bool {
	last, size := utf8.DecodeLastRuneInString(body)
	return size != 0 && unicode.IsSpace(last)
}

// visibleLength is the column width of a line body where every tab
// occupies TabSize columns. The terminator is excluded by construction.
func visibleLength(cfg Config, body string) int {
	return utf8.RuneCountInString(body) + strings.Count(body, "\t")*(cfg.TabSize-1)
}
