package handler

import (
	tele "gopkg.in/telebot.v3"
)

// BotSender adapts the Telegram bot to the broadcast Sender interface
type BotSender struct {
	bot *tele.Bot
}

// NewBotSender creates a sender over the bot
func NewBotSender(bot *tele.Bot) *BotSender {
	return &BotSender{bot: bot}
}

// Send delivers one message to one chat
func (s *BotSender) Send(userID int64, text string) error {
	_, err := s.bot.Send(tele.ChatID(userID), text)
	return err
}
