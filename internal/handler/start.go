package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const welcomeMessage = "Добро пожаловать в CNC Luga!\n\n" +
	"Этот бот — ваш помощник в мире ЧПУ. Мы не только отвечаем на технические вопросы с помощью ИИ, " +
	"но и стоим на страже ваших прав.\n\n" +
	"Тут вы найдёте:\n" +
	"🔧 *Техническая помощь*:\n" +
	"  - /valera — Введите название инструмента или вопрос по ЧПУ, и Валера подберёт режимы резания и поможет с программированием.\n\n" +
	"⚖ *Юридическая поддержка*:\n" +
	"  - /legal — Юридическая помощь по вопросам больничных, отпусков и переработок.\n" +
	"  - /report — Анонимно сообщите о проблемах на работе.\n\n" +
	"📰 *Сообщество и новости*:\n" +
	"  - /news — Новости и обновления из мира ЧПУ.\n" +
	"  - /contact — Контакты для связи с администрацией.\n\n" +
	"Мы здесь, чтобы сделать вашу работу проще, а жизнь — лучше. Вместе мы сильнее!"

// handleStart handles /start, /help and /menu: registers the user,
// resets any active flow and shows the welcome menu.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.dialog.Lock(userID)
	defer h.dialog.Unlock(userID)

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.users.Register(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send(msgGenericError)
	}

	h.dialog.Reset(userID)
	return c.Send(welcomeMessage, mainMenuMarkup(), tele.ModeMarkdown)
}

// handleNews shows the current bulletin
func (h *Handler) handleNews(c tele.Context) error {
	userID := c.Sender().ID

	h.dialog.Lock(userID)
	defer h.dialog.Unlock(userID)

	h.breakDialogue(c, userID)

	text, err := h.news.Current()
	if err != nil {
		h.logger.Error("Failed to read news", zap.Error(err))
		return c.Send(msgGenericError)
	}
	return c.Send(text, mainMenuMarkup())
}

// handleContact shows the administration contacts
func (h *Handler) handleContact(c tele.Context) error {
	userID := c.Sender().ID

	h.dialog.Lock(userID)
	defer h.dialog.Unlock(userID)

	h.breakDialogue(c, userID)
	return c.Send(msgContact, mainMenuMarkup())
}
