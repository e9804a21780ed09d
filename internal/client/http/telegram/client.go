package tgclient

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Sender is the part of *bot.Bot used to deliver repair notifications.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type client struct {
	bot Sender
}

func NewClient(b Sender) *client {
	return &client{bot: b}
}

// SendMessage posts a rendered repair notification. Texts are HTML and may
// carry customer phone numbers, so link previews stay off.
func (c *client) SendMessage(ctx context.Context, chatID int64, text string) error {
	const op = "tgclient.SendMessage"

	if _, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:             chatID,
		Text:               text,
		ParseMode:          models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: bot.True()},
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
