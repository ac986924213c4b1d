package handler

import (
	"context"
	"fmt"
	"strings"

	"cncbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// breakDialogue ends any active flow before another command takes over.
// Users in an AI dialogue get an explicit notice; one-shot flows (report,
// news edit, broadcast) are cleared silently. Returns true if a flow was
// interrupted.
func (h *Handler) breakDialogue(c tele.Context, userID int64) bool {
	inDialogue := h.dialog.InDialogue(userID)
	if !inDialogue && h.dialog.Flow(userID) == domain.FlowNone {
		return false
	}

	h.dialog.Reset(userID)
	if inDialogue {
		if err := c.Send(msgDialogueEnded, mainMenuMarkup()); err != nil {
			h.logger.Warn("Failed to send dialogue-ended notice", zap.Error(err))
		}
	}
	return true
}

// handleValeraStart enters the technical assistant dialogue
func (h *Handler) handleValeraStart(c tele.Context) error {
	return h.startDialogue(c, domain.FlowTechAssist)
}

// handleLegalStart enters the legal assistant dialogue
func (h *Handler) handleLegalStart(c tele.Context) error {
	return h.startDialogue(c, domain.FlowLegal)
}

func (h *Handler) startDialogue(c tele.Context, flow domain.Flow) error {
	userID := c.Sender().ID

	h.dialog.Lock(userID)
	defer h.dialog.Unlock(userID)

	intro, err := h.dialog.Begin(userID, flow)
	if err != nil {
		h.logger.Error("Failed to begin dialogue",
			zap.Int64("user_id", userID),
			zap.String("flow", string(flow)),
			zap.Error(err),
		)
		return c.Send(msgGenericError, mainMenuMarkup())
	}

	h.logger.Info("Dialogue started",
		zap.Int64("user_id", userID),
		zap.String("flow", string(flow)),
	)
	return c.Send(intro, removeKeyboardMarkup())
}

// handleReportStart enters the anonymous report flow
func (h *Handler) handleReportStart(c tele.Context) error {
	userID := c.Sender().ID

	h.dialog.Lock(userID)
	defer h.dialog.Unlock(userID)

	h.breakDialogue(c, userID)
	h.dialog.Enter(userID, domain.FlowReport)
	return c.Send(msgReportIntro, removeKeyboardMarkup())
}

// handleNewsEditStart enters the bulletin-editing flow (admin only)
func (h *Handler) handleNewsEditStart(c tele.Context) error {
	userID := c.Sender().ID

	h.dialog.Lock(userID)
	defer h.dialog.Unlock(userID)

	if !h.cfg.IsAdmin(userID) {
		return c.Send(msgAdminOnly, mainMenuMarkup())
	}

	h.breakDialogue(c, userID)
	h.dialog.Enter(userID, domain.FlowNewsEdit)
	return c.Send(msgNewsEditIntro, removeKeyboardMarkup())
}

// handleBroadcastStart enters the broadcast flow (admin only)
func (h *Handler) handleBroadcastStart(c tele.Context) error {
	userID := c.Sender().ID

	h.dialog.Lock(userID)
	defer h.dialog.Unlock(userID)

	if !h.cfg.IsAdmin(userID) {
		return c.Send(msgAdminOnly, mainMenuMarkup())
	}

	h.breakDialogue(c, userID)
	h.dialog.Enter(userID, domain.FlowBroadcast)
	return c.Send(msgBroadcastIntro, removeKeyboardMarkup())
}

// handleText dispatches free text on the user's current flow
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Menu buttons are plain text messages with fixed labels
	switch text {
	case btnValeraLabel:
		return h.handleValeraStart(c)
	case btnLegalLabel:
		return h.handleLegalStart(c)
	case btnReportLabel:
		return h.handleReportStart(c)
	}

	h.dialog.Lock(userID)
	defer h.dialog.Unlock(userID)

	switch h.dialog.Flow(userID) {
	case domain.FlowTechAssist, domain.FlowLegal:
		return h.handleDialogueMessage(c, userID, text)
	case domain.FlowReport:
		return h.handleReportResponse(c, userID, text)
	case domain.FlowNewsEdit:
		return h.handleNewsEditResponse(c, userID, text)
	case domain.FlowBroadcast:
		return h.handleBroadcastResponse(c, userID, text)
	default:
		// Idle users get the menu back
		return c.Send(welcomeMessage, mainMenuMarkup(), tele.ModeMarkdown)
	}
}

// handleDialogueMessage forwards one message to the active persona
func (h *Handler) handleDialogueMessage(c tele.Context, userID int64, text string) error {
	// A command marker mid-dialogue only lands here when the command is
	// not registered; treat it as a flow abort either way. Known
	// limitation: literal text starting with "/" cannot be sent to the
	// assistant.
	if strings.HasPrefix(text, "/") {
		h.dialog.Reset(userID)
		return c.Send(msgDialogueEnded, mainMenuMarkup())
	}

	// The completion round-trip takes a while; show typing meanwhile
	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Debug("Failed to send chat action", zap.Error(err))
	}

	reply, err := h.dialog.Converse(context.Background(), userID, text)
	if err != nil {
		return c.Send(msgCompletionError, mainMenuMarkup())
	}
	return c.Send(reply)
}

// handleReportResponse persists one anonymous report
func (h *Handler) handleReportResponse(c tele.Context, userID int64, text string) error {
	if h.dialog.Flow(userID) != domain.FlowReport {
		return c.Send(msgNotInMode)
	}

	if err := h.reports.Submit(userID, text); err != nil {
		h.dialog.Reset(userID)
		return c.Send(msgReportFailed, mainMenuMarkup())
	}

	h.dialog.Reset(userID)
	return c.Send(msgReportAccepted, mainMenuMarkup())
}

// handleNewsEditResponse replaces the bulletin text
func (h *Handler) handleNewsEditResponse(c tele.Context, userID int64, text string) error {
	if h.dialog.Flow(userID) != domain.FlowNewsEdit {
		return c.Send(msgNotInMode)
	}

	if err := h.news.Update(text); err != nil {
		h.logger.Error("Failed to update news", zap.Error(err))
		h.dialog.Reset(userID)
		return c.Send(msgNewsFailed, mainMenuMarkup())
	}

	h.dialog.Reset(userID)
	return c.Send(msgNewsUpdated, mainMenuMarkup())
}

// handleBroadcastResponse fans the text out to the whole directory
func (h *Handler) handleBroadcastResponse(c tele.Context, userID int64, text string) error {
	if h.dialog.Flow(userID) != domain.FlowBroadcast {
		return c.Send(msgNotInMode)
	}

	result, err := h.broadcast.Send(text)
	h.dialog.Reset(userID)
	if err != nil {
		return c.Send(msgBroadcastFailed, mainMenuMarkup())
	}

	summary := fmt.Sprintf(
		"✅ Сообщение отправлено всем пользователям.\n\nПолучателей: %d, доставлено: %d, ошибок: %d",
		result.Attempted, result.Succeeded, result.Failed,
	)
	return c.Send(summary, mainMenuMarkup())
}
