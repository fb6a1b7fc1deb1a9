// Package sanitize strips HTML markup from free-text user input before it
// is stored or forwarded to the model.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var (
	// scriptRe removes script/style elements together with their bodies.
	scriptRe = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)>`)
	// tagRe removes any remaining tags, keeping their inner text.
	tagRe = regexp.MustCompile(`(?s)<[^>]*>`)
)

// Strip removes HTML/script markup from s and collapses surrounding
// whitespace. `<b>hi</b>` becomes `hi`; script tags are dropped with
// their contents.
func Strip(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}
