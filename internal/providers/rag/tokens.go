package rag

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/askbot/internal/core"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

// countTokens is swapped out in tests to avoid loading the real encoder.
var countTokens = func(text string) int {
	return len(getTokenizer().Encode(text, nil, nil))
}

// trimToBudget drops the oldest turns until the history fits the token
// budget. A budget of zero disables the trim.
func trimToBudget(turns []core.Turn, budget int) []core.Turn {
	if budget <= 0 {
		return turns
	}

	total := 0
	for i := len(turns) - 1; i >= 0; i-- {
		total += countTokens(turns[i].Content)
		if total > budget {
			return turns[i+1:]
		}
	}
	return turns
}

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return tk
}
