package service

import (
	"context"
	"fmt"
	"strings"

	"cncbot/internal/domain"
	"cncbot/internal/gpt"
	"cncbot/internal/persona"
	"cncbot/internal/state"

	"go.uber.org/zap"
)

// EmptyAnswerText is substituted when the model returns a blank reply
const EmptyAnswerText = "⚠ Не удалось получить данные. Попробуйте уточнить запрос."

// DialogService drives the AI persona dialogues: it owns the transition
// into a dialogue flow, the prompt round-trip and the history updates.
type DialogService struct {
	store     state.Store
	personas  *persona.Registry
	completer gpt.Completer
	logger    *zap.Logger
}

// NewDialogService creates a new dialog service
func NewDialogService(
	store state.Store,
	personas *persona.Registry,
	completer gpt.Completer,
	logger *zap.Logger,
) *DialogService {
	return &DialogService{
		store:     store,
		personas:  personas,
		completer: completer,
		logger:    logger,
	}
}

// Begin enters a dialogue flow with a cleared history and returns the
// persona's intro text to show the user.
func (s *DialogService) Begin(userID int64, flow domain.Flow) (string, error) {
	p, ok := s.personas.Get(flow)
	if !ok {
		return "", fmt.Errorf("no persona configured for flow %q", flow)
	}

	s.store.Set(userID, domain.DialogState{Flow: flow})
	return p.Intro, nil
}

// Converse sends one user message through the current persona and returns
// the formatted reply. On success both turns are appended and the user
// stays in the flow; on completion failure the state resets to idle and
// the error is returned for the caller to translate.
func (s *DialogService) Converse(ctx context.Context, userID int64, text string) (string, error) {
	st := s.store.Get(userID)
	if !st.InDialogue() {
		return "", fmt.Errorf("user %d is not in a dialogue flow", userID)
	}

	p, ok := s.personas.Get(st.Flow)
	if !ok {
		s.store.Reset(userID)
		return "", fmt.Errorf("no persona configured for flow %q", st.Flow)
	}

	prompt := persona.ComposePrompt(p, st.History, text)

	answer, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("Completion failed, resetting dialogue",
			zap.Int64("user_id", userID),
			zap.String("flow", string(st.Flow)),
			zap.Error(err),
		)
		s.store.Reset(userID)
		return "", err
	}

	if strings.TrimSpace(answer) == "" {
		answer = EmptyAnswerText
	}

	s.store.AppendTurns(userID,
		domain.Turn{Speaker: domain.SpeakerUser, Text: text},
		domain.Turn{Speaker: domain.SpeakerAssistant, Text: answer},
	)

	return p.ReplyPrefix + "\n\n" + answer, nil
}

// Flow returns the user's current flow
func (s *DialogService) Flow(userID int64) domain.Flow {
	return s.store.Get(userID).Flow
}

// InDialogue reports whether the user is in one of the AI persona flows
func (s *DialogService) InDialogue(userID int64) bool {
	return s.store.Get(userID).InDialogue()
}

// Enter puts the user into a non-dialogue flow (report, news edit,
// broadcast) with a cleared history.
func (s *DialogService) Enter(userID int64, flow domain.Flow) {
	s.store.Set(userID, domain.DialogState{Flow: flow})
}

// Reset returns the user to the idle state
func (s *DialogService) Reset(userID int64) {
	s.store.Reset(userID)
}

// Lock serializes handling for one user across a full message round-trip
func (s *DialogService) Lock(userID int64) { s.store.Lock(userID) }

// Unlock releases the per-user handling lock
func (s *DialogService) Unlock(userID int64) { s.store.Unlock(userID) }
