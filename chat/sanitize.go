package chat

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// MaxNameLength bounds nicknames and room names, in code points.
	MaxNameLength = 32
	// MaxMessageLength bounds chat messages, in code points.
	MaxMessageLength = 1000
)

var (
	nameSymbols = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)
	spaceRuns   = regexp.MustCompile(` +`)
)

// outputPolicy is applied to rendered chat lines before they leave the
// server. Markdown rendering only ever produces this element set; the
// policy forces every surviving link to open in a new tab.
var outputPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "em", "b", "i", "u", "s", "del", "code")
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

// Clean sanitizes an untrusted nickname or room name. Inputs longer than
// MaxNameLength collapse to the empty string; otherwise every character
// outside letters, digits and spaces is stripped, the remainder is
// HTML-escaped, and whitespace is trimmed and collapsed. Clean is pure,
// total and idempotent.
func Clean(raw string) string {
	if utf8.RuneCountInString(raw) > MaxNameLength {
		return ""
	}
	name := nameSymbols.ReplaceAllString(raw, "")
	name = html.EscapeString(name)
	name = strings.TrimSpace(name)
	return spaceRuns.ReplaceAllString(name, " ")
}
