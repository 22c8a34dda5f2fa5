package session

import (
	"context"

	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/pkg/log"
)

const (
	emptyPrompt   = "Please ask me a question about your documents!"
	troubleAnswer = "I'm having trouble processing your request. Please try again."
)

// HistoryStore is the slice of the history store the orchestrator needs.
type HistoryStore interface {
	Append(ctx context.Context, conversationID, role, content string) bool
	Read(ctx context.Context, conversationID string, maxMessages int) []core.Turn
}

// Bridge turns one chat turn plus history into a normalized answer.
type Bridge interface {
	Query(ctx context.Context, text string, turns []core.Turn, user core.UserContext) core.Answer
}

// Reply is what a turn hands back to the transport: either plain text or a
// normalized answer for rich rendering.
type Reply struct {
	Text   string
	Answer *core.Answer
}

type RenderFunc func(Reply) error

// Service is the per-turn controller binding history store, command router
// and query bridge to one inbound message. It keeps no state across turns;
// all conversation state lives in the store.
type Service struct {
	store  HistoryStore
	bridge Bridge
	router core.CmdRouter
	window int
	locks  keyedMutex
}

func New(store HistoryStore, bridge Bridge, router core.CmdRouter, windowSize int) *Service {
	return &Service{
		store:  store,
		bridge: bridge,
		router: router,
		window: windowSize,
	}
}

// Handle runs one inbound turn through clean, command dispatch, history
// load, bridge query, persist and render. Nothing escapes: any panic or
// failure degrades to a static reply so the transport always answers.
func (s *Service) Handle(ctx context.Context, in core.Inbound, render RenderFunc) {
	logger := log.FromCtx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Str("conversation", in.ConversationID).Msg("turn handling panicked")
			if err := render(Reply{Text: troubleAnswer}); err != nil {
				logger.Error().Err(err).Msg("failed to render fallback reply")
			}
		}
	}()

	text := CleanText(in.Text, in.Mentions)

	if out, ok := s.router.Execute(ctx, in.ConversationID, text); ok {
		s.render(ctx, render, Reply{Text: out})
		return
	}

	if text == "" {
		s.render(ctx, render, Reply{Text: emptyPrompt})
		return
	}

	unlock := s.locks.lock(in.ConversationID)
	defer unlock()

	turns := s.store.Read(ctx, in.ConversationID, s.window)
	answer := s.bridge.Query(ctx, text, turns, core.UserContext{
		UserID:   in.UserID,
		UserName: in.UserName,
	})

	// Persistence is best-effort: the user sees the answer even when the
	// store silently degraded.
	if !s.store.Append(ctx, in.ConversationID, core.RoleUser, text) {
		logger.Warn().Str("conversation", in.ConversationID).Msg("failed to persist user turn")
	}
	if !s.store.Append(ctx, in.ConversationID, core.RoleAssistant, answer.Text) {
		logger.Warn().Str("conversation", in.ConversationID).Msg("failed to persist assistant turn")
	}

	s.render(ctx, render, Reply{Answer: &answer})
}

func (s *Service) render(ctx context.Context, render RenderFunc, reply Reply) {
	if err := render(reply); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to render reply")
	}
}
