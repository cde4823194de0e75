package main

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (a *App) initTgBot() error {
	chatID, err := strconv.ParseInt(a.Config.TelegramChatID, 10, 64)
	if err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(a.Config.TelegramApiToken)
	if err != nil {
		return err
	}
	bot.Debug = false

	a.TGM = bot
	a.TgmChatID = chatID

	return nil
}
