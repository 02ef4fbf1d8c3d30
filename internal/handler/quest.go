package handler

import (
	"strings"

	"subquest/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	user := userFromSender(c.Sender())

	h.logger.Info("User started bot",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	out := h.quest.Start(requestContext(), user)
	h.logOutcome("start", user, out)
	return h.send(c, out)
}

// handleID answers /id with the sender's numeric id
func (h *Handler) handleID(c tele.Context) error {
	user := userFromSender(c.Sender())
	return h.send(c, h.quest.Identity(user))
}

// handleLanguage handles /language command
func (h *Handler) handleLanguage(c tele.Context) error {
	user := userFromSender(c.Sender())

	out := h.quest.AskLanguage(requestContext(), user)
	h.logOutcome("language", user, out)
	return h.send(c, out)
}

// handleText handles all text messages
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()

	// Ignore unknown commands
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	user := userFromSender(c.Sender())
	out := h.quest.HandleText(requestContext(), user, text)
	h.logOutcome("text", user, out)
	return h.send(c, out)
}

// handlePhoto handles photo messages
func (h *Handler) handlePhoto(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Chat == nil {
		return nil
	}

	user := userFromSender(c.Sender())
	ref := domain.MessageRef{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	}

	out := h.quest.HandlePhoto(requestContext(), user, ref)
	h.logOutcome("photo", user, out)
	return h.send(c, out)
}
