package rag

import (
	"encoding/json"

	"github.com/sandevgo/askbot/internal/core"
)

// The backend replies in one of two schema variants. Variant A nests the
// answer at message.content with citations in context.data_points; variant B
// is flat. Detection is an ordered attempt preferring the richer variant A.
type backendResponse struct {
	Message *struct {
		Content string `json:"content"`
	} `json:"message"`
	Context *backendContext `json:"context"`

	Answer    string          `json:"answer"`
	Citations []core.Citation `json:"citations"`
}

type backendContext struct {
	DataPoints []dataPoint `json:"data_points"`
}

type dataPoint struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Sourcepage string `json:"sourcepage"`
	Sourcefile string `json:"sourcefile"`
}

// Normalize maps a raw 200 body into the internal answer shape. A body that
// matches neither variant, or does not parse at all, yields the literal
// "No answer found" rather than failing the turn.
func Normalize(data []byte) core.Answer {
	var resp backendResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fallback(answerNotFound)
	}

	switch {
	case resp.Message != nil && resp.Message.Content != "":
		return core.Answer{
			Text:      resp.Message.Content,
			Citations: citationsFromDataPoints(resp.Context),
		}
	case resp.Answer != "" || resp.Citations != nil:
		citations := resp.Citations
		if citations == nil {
			citations = []core.Citation{}
		}
		return core.Answer{Text: resp.Answer, Citations: citations}
	default:
		return fallback(answerNotFound)
	}
}

func citationsFromDataPoints(c *backendContext) []core.Citation {
	if c == nil {
		return []core.Citation{}
	}

	citations := make([]core.Citation, 0, len(c.DataPoints))
	for _, dp := range c.DataPoints {
		title := dp.Sourcefile
		if title == "" {
			title = dp.Title
		}
		citations = append(citations, core.Citation{
			Title:    title,
			Content:  dp.Content,
			URL:      dp.Sourcepage,
			Filepath: dp.Sourcefile,
		})
	}
	return citations
}
