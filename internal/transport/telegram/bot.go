package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/internal/service/session"
	"github.com/sandevgo/askbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	session *session.Service
	sender  *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	sess *session.Service,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		cfg:     cfg,
		session: sess,
		sender:  newSender(b),
	}

	// Carry the signal context (with logger) into every handler
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: restrict to the owner when one is configured
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if cfg.OwnerID != 0 && c.Sender().ID != cfg.OwnerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	in := inboundFromContext(c)
	b.session.Handle(ctx, in, func(reply session.Reply) error {
		if reply.Answer != nil {
			return b.sender.sendMarkdown(ctx, c.Chat(), FormatAnswer(*reply.Answer))
		}
		return b.sender.sendMarkdown(ctx, c.Chat(), reply.Text)
	})

	return nil
}

func inboundFromContext(c tele.Context) core.Inbound {
	return core.Inbound{
		ConversationID: fmt.Sprintf("telegram-%d", c.Chat().ID),
		Text:           c.Text(),
		UserID:         strconv.FormatInt(c.Sender().ID, 10),
		UserName:       senderName(c.Sender()),
		Mentions:       mentions(c.Message()),
	}
}

func senderName(u *tele.User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}

// mentions extracts the literal @mention substrings from message entities so
// the orchestrator can strip them before querying. Entity offsets are UTF-16
// code units; EntityText does the decode.
func mentions(m *tele.Message) []string {
	if m == nil {
		return nil
	}

	var out []string
	for _, e := range m.Entities {
		if e.Type != tele.EntityMention {
			continue
		}
		if text := m.EntityText(e); text != "" {
			out = append(out, text)
		}
	}
	return out
}
