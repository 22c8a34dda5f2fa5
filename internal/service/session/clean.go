package session

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy = bluemonday.StrictPolicy()
	spaceRE     = regexp.MustCompile(`\s+`)
)

// CleanText removes mention markup and HTML-like tags from raw chat text and
// collapses whitespace. An input that carries nothing else becomes "".
func CleanText(text string, mentions []string) string {
	for _, mention := range mentions {
		text = strings.ReplaceAll(text, mention, "")
	}

	// StrictPolicy drops every tag; unescape restores literal &, <, > the
	// sanitizer entity-encoded on the way through.
	text = html.UnescapeString(stripPolicy.Sanitize(text))
	text = spaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
