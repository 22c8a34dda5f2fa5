package telegram

import (
	"strings"
	"testing"

	"github.com/sandevgo/askbot/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnswer_NoCitations(t *testing.T) {
	out := FormatAnswer(core.Answer{Text: "plain answer", Citations: []core.Citation{}})
	assert.Equal(t, "plain answer", out)
	assert.NotContains(t, out, "Sources")
}

func TestFormatAnswer_WithCitations(t *testing.T) {
	answer := core.Answer{
		Text: "15 days per year.",
		Citations: []core.Citation{
			{Title: "hr-policy.pdf", Content: "Vacation: 15 days."},
		},
	}

	out := FormatAnswer(answer)
	assert.Contains(t, out, "15 days per year.")
	assert.Contains(t, out, "Sources (1 found)")
	assert.Contains(t, out, "**hr-policy.pdf**")
	assert.Contains(t, out, "Vacation: 15 days.")
}

func TestFormatAnswer_CapsDisplayedCitations(t *testing.T) {
	citations := make([]core.Citation, 5)
	for i := range citations {
		citations[i] = core.Citation{Title: "doc-" + string(rune('a'+i)), Content: "snippet"}
	}

	out := FormatAnswer(core.Answer{Text: "ans", Citations: citations})
	assert.Contains(t, out, "Sources (5 found)")
	assert.Contains(t, out, "doc-c")
	assert.NotContains(t, out, "doc-d")
	assert.NotContains(t, out, "doc-e")
}

func TestFormatAnswer_TruncatesLongSnippets(t *testing.T) {
	long := strings.Repeat("x", maxCitationChars+50)
	out := FormatAnswer(core.Answer{
		Text:      "ans",
		Citations: []core.Citation{{Title: "doc", Content: long}},
	})

	assert.Contains(t, out, strings.Repeat("x", maxCitationChars)+"...")
	assert.NotContains(t, out, strings.Repeat("x", maxCitationChars+1))
}

func TestFormatAnswer_UntitledCitation(t *testing.T) {
	out := FormatAnswer(core.Answer{
		Text:      "ans",
		Citations: []core.Citation{{Content: "snippet"}},
	})
	assert.Contains(t, out, "Document 1")
}

func TestFlatten_StripsHTML(t *testing.T) {
	assert.Equal(t, "Policy says 15 days", flatten("<p>Policy says</p> <b>15 days</b>"))
}

func TestFlatten_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", flatten("  a\n\n b\tc "))
}

func TestSplitHTML(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := splitHTML("hello", 100)
		assert.Equal(t, []string{"hello"}, chunks)
	})

	t.Run("prefers newline cut", func(t *testing.T) {
		text := strings.Repeat("a", 80) + "\n" + strings.Repeat("b", 80)
		chunks := splitHTML(text, 100)
		assert.Len(t, chunks, 2)
		assert.Equal(t, strings.Repeat("a", 80), chunks[0])
		assert.Equal(t, strings.Repeat("b", 80), chunks[1])
	})

	t.Run("hard cut without newline", func(t *testing.T) {
		text := strings.Repeat("a", 150)
		chunks := splitHTML(text, 100)
		assert.Len(t, chunks, 2)
		assert.Equal(t, 100, len(chunks[0]))
		assert.Equal(t, 50, len(chunks[1]))
	})

	t.Run("never cuts inside a tag", func(t *testing.T) {
		text := strings.Repeat("a", 40) + " " + strings.Repeat("b", 50) + "<strong>bold</strong>"
		chunks := splitHTML(text, 100)
		assert.Len(t, chunks, 2)
		assert.Equal(t, strings.Repeat("a", 40), chunks[0])
		assert.Contains(t, chunks[1], "<strong>bold</strong>")
	})

	t.Run("never cuts inside an entity", func(t *testing.T) {
		text := strings.Repeat("a", 50) + " " + strings.Repeat("b", 45) + "&amp;" + strings.Repeat("c", 20)
		chunks := splitHTML(text, 100)
		assert.Len(t, chunks, 2)
		assert.Equal(t, strings.Repeat("a", 50), chunks[0])
		assert.Contains(t, chunks[1], "&amp;")
	})

	t.Run("cuts after a closing tag", func(t *testing.T) {
		text := "<b>" + strings.Repeat("a", 90) + "</b>" + strings.Repeat("b", 60)
		chunks := splitHTML(text, 100)
		assert.Len(t, chunks, 2)
		assert.Equal(t, "<b>"+strings.Repeat("a", 90)+"</b>", chunks[0])
		assert.Equal(t, strings.Repeat("b", 60), chunks[1])
	})
}

func TestSafeCut(t *testing.T) {
	assert.Equal(t, 0, safeCut("<strong"))
	assert.Equal(t, 0, safeCut("&amp"))
	assert.Equal(t, 3, safeCut("<b>xy"))
	assert.Equal(t, 5, safeCut("&amp;xy"))
	assert.Equal(t, 5, safeCut("hello world"))
	assert.Equal(t, 7, safeCut("a &nope word"))
}
