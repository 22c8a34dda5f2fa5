package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/pkg/log"
)

// Canned answers for degraded outcomes. Every failure mode maps to one of
// these; the bridge never returns an error to the orchestrator.
const (
	answerAuthError   = "Authentication error occurred. Please contact your administrator."
	answerUnavailable = "The search service is temporarily unavailable. Please try again in a few minutes."
	answerGeneric     = "I couldn't process your request right now. Please try again later."
	answerTimeout     = "The search is taking too long. Please try again with a simpler question."
	answerConnection  = "I'm having trouble connecting to the search service. Please try again."
	answerNotFound    = "No answer found"
)

// Client bridges one chat turn to the RAG backend's /chat contract.
// It holds no mutable state; every call is independent.
type Client struct {
	client *http.Client
	cfg    *config.BackendConfig
}

func NewClient(cfg *config.BackendConfig) *Client {
	return &Client{
		client: &http.Client{Timeout: cfg.Timeout()},
		cfg:    cfg,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOverrides struct {
	Top                  int     `json:"top"`
	Temperature          float64 `json:"temperature"`
	MinimumSearchScore   float64 `json:"minimum_search_score"`
	MinimumRerankerScore float64 `json:"minimum_reranker_score"`
}

type chatContext struct {
	Overrides chatOverrides `json:"overrides"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
	Context  chatContext   `json:"context"`
}

// Query issues a single POST to the backend and normalizes the reply.
// No retries: a failed or timed-out generation call degrades immediately
// instead of stacking latency and duplicate cost.
func (c *Client) Query(ctx context.Context, text string, turns []core.Turn, user core.UserContext) core.Answer {
	logger := log.FromCtx(ctx)

	body, err := json.Marshal(c.buildRequest(text, turns))
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal backend request")
		return fallback(answerConnection)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/chat", bytes.NewReader(body))
	if err != nil {
		logger.Error().Err(err).Msg("failed to build backend request")
		return fallback(answerConnection)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.BotUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			logger.Warn().Err(err).Str("user", user.UserID).Msg("backend query timed out")
			return fallback(answerTimeout)
		}
		logger.Error().Err(err).Msg("backend query failed")
		return fallback(answerConnection)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read backend response")
		return fallback(answerConnection)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return Normalize(data)
	case resp.StatusCode == http.StatusUnauthorized:
		logger.Error().Str("user", user.UserID).Msg("backend rejected request: unauthorized")
		return fallback(answerAuthError)
	case resp.StatusCode >= http.StatusInternalServerError:
		logger.Error().Int("status", resp.StatusCode).Msg("backend unavailable")
		return fallback(answerUnavailable)
	default:
		logger.Error().Int("status", resp.StatusCode).Str("body", string(data)).Msg("unexpected backend status")
		return fallback(answerGeneric)
	}
}

func (c *Client) buildRequest(text string, turns []core.Turn) chatRequest {
	turns = trimToBudget(turns, c.cfg.MaxHistoryTokens)

	messages := make([]chatMessage, 0, len(turns)+1)
	for _, turn := range turns {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: core.RoleUser, Content: text})

	return chatRequest{
		Messages: messages,
		Context: chatContext{
			Overrides: chatOverrides{
				Top:                  c.cfg.TopK,
				Temperature:          c.cfg.Temperature,
				MinimumSearchScore:   c.cfg.MinSearchScore,
				MinimumRerankerScore: c.cfg.MinRerankerScore,
			},
		},
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func fallback(answer string) core.Answer {
	return core.Answer{Text: answer, Citations: []core.Citation{}}
}
