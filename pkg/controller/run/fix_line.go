package run

import (
	"strings"
	"unicode"
)

const (
	tagMacEnding         = "fixed mac line ending"
	tagWindowsEnding     = "fixed windows line ending"
	tagExpandedTabs      = "expanded tabs"
	tagTabsAfterOther    = "tabs after other characters"
	tagRemovedWhitespace = "removed whitespace from end"
	tagLineTooLong       = "line too long"
)

// fixLine fixes every fixable violation of one line and returns the
// fixed line together with the tags of the rules which fired, in fix
// order. Unfixable violations are tagged but the content is not
// rewritten. A line which checkLine finds compliant is returned as is,
// with no tags and no allocation.
func fixLine(cfg Config, line string) (string, []string) {
	if checkLine(cfg, line).OK() {
		return line, nil
	}
	body, term := splitTerminator(line)
	var tags []string

	switch term {
	case termCR:
		term = termLF
		tags = append(tags, tagMacEnding)
	case termCRLF:
		term = termLF
		tags = append(tags, tagWindowsEnding)
	}

	if cfg.ExpandTabs && strings.Contains(body, "\t") {
		body = strings.ReplaceAll(body, "\t", strings.Repeat(" ", cfg.TabSize))
		tags = append(tags, tagExpandedTabs)
	}

	if !cfg.ExpandTabs && tabsAfterIndent(body) {
		tags = append(tags, tagTabsAfterOther)
	}

	if term != termNone && endsWithWhitespace(body) {
		body = strings.TrimRightFunc(body, unicode.IsSpace)
		tags = append(tags, tagRemovedWhitespace)
	}

	// The length is recomputed on the possibly already modified body.
	if visibleLength(cfg, body) > cfg.LineLength {
		tags = append(tags, tagLineTooLong)
	}

	return body + term.String(), tags
}

// unfixableTag reports whether a tag names a violation which is only
// reported, not fixed.
func unfixableTag(tag string) bool {
	return tag == tagTabsAfterOther || tag == tagLineTooLong
}
