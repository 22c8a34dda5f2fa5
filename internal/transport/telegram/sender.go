package telegram

import (
	"context"
	"strings"

	"github.com/sandevgo/askbot/pkg/conv"
	"github.com/sandevgo/askbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if needed.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)

	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		if _, err := s.bot.Send(to, chunk, tele.ModeHTML); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It prefers to cut at a newline, then at a boundary that does not land
// inside an HTML tag or character entity, which ModeHTML would reject.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		} else if idx := safeCut(text[:maxLen]); idx > 0 {
			cut = idx
		}

		chunks = append(chunks, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}

// safeCut returns the largest index in s where a cut does not split an HTML
// tag or entity: right after a closing '>' or ';', or at a space outside
// both. Zero means no safe boundary exists in s.
func safeCut(s string) int {
	last := 0
	var inTag, inEntity bool

	for i, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
				last = i + 1
			}
		case inEntity:
			switch r {
			case ';':
				inEntity = false
				last = i + 1
			case ' ':
				// Not an entity after all
				inEntity = false
				last = i
			case '<':
				inEntity = false
				inTag = true
			}
		default:
			switch r {
			case '<':
				inTag = true
			case '&':
				inEntity = true
			case ' ':
				last = i
			}
		}
	}
	return last
}
