package telegram

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/askbot/internal/core"
)

const (
	maxDisplayCitations = 3
	maxCitationChars    = 200
)

var collapseRE = regexp.MustCompile(`\s+`)

// FormatAnswer renders a normalized answer with its sources as markdown.
// Citation content is flattened to plain text, truncated to a display
// length, and capped at the first three sources regardless of how many the
// bridge returned.
func FormatAnswer(a core.Answer) string {
	var sb strings.Builder
	sb.WriteString(a.Text)

	if len(a.Citations) == 0 {
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\n\n**📚 Sources (%d found):**\n", len(a.Citations)))

	shown := a.Citations
	if len(shown) > maxDisplayCitations {
		shown = shown[:maxDisplayCitations]
	}

	for i, citation := range shown {
		title := citation.Title
		if title == "" {
			title = fmt.Sprintf("Document %d", i+1)
		}
		sb.WriteString(fmt.Sprintf("\n📄 **%s**\n", title))

		if content := truncate(flatten(citation.Content), maxCitationChars); content != "" {
			sb.WriteString(content + "\n")
		}
	}

	return sb.String()
}

// flatten strips HTML fragments the backend may embed in citation snippets
// and collapses whitespace.
func flatten(s string) string {
	if strings.Contains(s, "<") {
		if text, err := html2text.FromString(s); err == nil {
			s = text
		}
	}
	return strings.TrimSpace(collapseRE.ReplaceAllString(s, " "))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
