package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		mentions []string
		want     string
	}{
		{
			name:     "mention and padding stripped",
			text:     " @AskBot   what is the vacation policy?  ",
			mentions: []string{"@AskBot"},
			want:     "what is the vacation policy?",
		},
		{
			name: "html tags removed",
			text: "<b>what</b> is <i>the</i> policy?",
			want: "what is the policy?",
		},
		{
			name: "script content dropped",
			text: "hello <script>alert(1)</script>world",
			want: "hello world",
		},
		{
			name: "entities restored after sanitizing",
			text: "salary < 100k & bonus > 0",
			want: "salary < 100k & bonus > 0",
		},
		{
			name: "whitespace collapsed",
			text: "what\n\nis   the\tpolicy?",
			want: "what is the policy?",
		},
		{
			name:     "only mention yields empty",
			text:     "  @AskBot  ",
			mentions: []string{"@AskBot"},
			want:     "",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.text, tt.mentions))
		})
	}
}
