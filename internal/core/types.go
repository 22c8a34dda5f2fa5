package core

const (
	BotName       = "AskBot"
	BotUserAgent  = "AskBot/0.1"
	BotRepository = "https://github.com/sandevgo/askbot"
	BotVersion    = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message in a conversation history.
// Timestamp is a sortable key, strictly increasing within a conversation;
// ordering is defined by it, not by insertion order.
type Turn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Citation references a source document backing part of an answer.
// All fields default to empty strings, never to null.
type Citation struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	URL      string `json:"url"`
	Filepath string `json:"filepath"`
}

// Answer is the normalized result of one backend query.
// Citations is always non-nil.
type Answer struct {
	Text      string
	Citations []Citation
}

// Inbound is one incoming chat message, detached from the transport.
type Inbound struct {
	ConversationID string
	Text           string
	UserID         string
	UserName       string
	Mentions       []string
}

// UserContext carries the sender identity into the bridge call.
type UserContext struct {
	UserID   string
	UserName string
}
