package tgclient

import (
	"context"

	"github.com/go-telegram/bot"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

type client struct {
	bot    *bot.Bot
	chatID int64
}

func NewClient(b *bot.Bot, chatID int64) *client {
	return &client{bot: b, chatID: chatID}
}

// Send delivers one message to the configured chat. A rejection or
// unreachable endpoint surfaces as a model.DeliveryError carrying the
// endpoint diagnostic verbatim. No retry: once sent, the call is
// fire-and-forget and a resend could duplicate delivery.
func (c *client) Send(ctx context.Context, text string) error {
	if _, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: c.chatID,
		Text:   text,
	}); err != nil {
		return &model.DeliveryError{Diagnostic: err.Error()}
	}

	return nil
}
