package handler

import (
	"cncbot/internal/config"
	"cncbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// User-visible messages. Kept in one place so flows stay consistent.
const (
	msgGenericError    = "Произошла ошибка. Попробуйте позже."
	msgDialogueEnded   = "Вы выбрали другую команду. Диалог завершен."
	msgCompletionError = "⚠ Не удалось получить ответ. Попробуйте позже."
	msgNotInMode       = "Вы не находитесь в этом режиме."
	msgAdminOnly       = "⛔ Команда доступна только администраторам."
	msgTextOnly        = "Я понимаю только текстовые сообщения."

	msgReportIntro    = "🔴 Опишите проблему анонимно:"
	msgReportAccepted = "✅ Ваше сообщение принято и передано анонимно."
	msgReportFailed   = "⚠ Не удалось сохранить сообщение. Попробуйте позже."

	msgNewsEditIntro = "Введите новый текст новостей:"
	msgNewsUpdated   = "✅ Новости успешно обновлены!"
	msgNewsFailed    = "⚠ Не удалось обновить новости. Попробуйте позже."

	msgBroadcastIntro  = "Введите сообщение для рассылки:"
	msgBroadcastFailed = "⚠ Не удалось выполнить рассылку. Попробуйте позже."

	msgContact = "📞 Связаться с нами можно по email: support@cncluga.com"
)

// Main menu button labels
const (
	btnValeraLabel = "📸 Валера"
	btnLegalLabel  = "⚖ Юрист"
	btnReportLabel = "🔴 Аноним"
)

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	cfg       *config.Config
	users     *service.UserService
	dialog    *service.DialogService
	reports   *service.ReportService
	news      *service.NewsService
	broadcast *service.BroadcastService
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	cfg *config.Config,
	users *service.UserService,
	dialog *service.DialogService,
	reports *service.ReportService,
	news *service.NewsService,
	broadcast *service.BroadcastService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		cfg:       cfg,
		users:     users,
		dialog:    dialog,
		reports:   reports,
		news:      news,
		broadcast: broadcast,
		logger:    logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleStart)
	h.bot.Handle("/menu", h.handleStart)
	h.bot.Handle("/valera", h.handleValeraStart)
	h.bot.Handle("/legal", h.handleLegalStart)
	h.bot.Handle("/report", h.handleReportStart)
	h.bot.Handle("/news", h.handleNews)
	h.bot.Handle("/update_news", h.handleNewsEditStart)
	h.bot.Handle("/contact", h.handleContact)
	h.bot.Handle("/broadcast", h.handleBroadcastStart)

	// Free text is dispatched on the user's current flow
	h.bot.Handle(tele.OnText, h.handleText)

	// Media is not supported, only text
	h.bot.Handle(tele.OnPhoto, h.handleMedia)
	h.bot.Handle(tele.OnDocument, h.handleMedia)
	h.bot.Handle(tele.OnVoice, h.handleMedia)
}

// mainMenuMarkup returns the reply keyboard with the main menu
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnValeraLabel)),
		menu.Row(menu.Text(btnLegalLabel), menu.Text(btnReportLabel)),
	)
	return menu
}

// removeKeyboardMarkup hides the reply keyboard while a flow is active
func removeKeyboardMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}

// handleMedia answers non-text content without touching the user's state
func (h *Handler) handleMedia(c tele.Context) error {
	return c.Send(msgTextOnly)
}
