package telegram_client

import (
	"context"

	tgBotApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

type TelegramClient struct {
	bot    *tgBotApi.BotAPI
	chatID int64
}

func NewTelegramClient(apiToken string, chatID int64) (*TelegramClient, error) {
	bot, err := tgBotApi.NewBotAPI(apiToken)
	if err != nil {
		return nil, errors.Wrap(err, "NewBotAPI")
	}

	return &TelegramClient{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (tc *TelegramClient) SendMessage(ctx context.Context, text string) error {
	msg := tgBotApi.NewMessage(tc.chatID, text)

	_, err := tc.bot.Send(msg)
	if err != nil {
		return errors.Wrap(err, "Send")
	}

	return nil
}
