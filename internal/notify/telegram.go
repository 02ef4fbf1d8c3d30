// Package notify delivers player submissions to the admin chat.
package notify

import (
	"context"
	"strconv"

	"subquest/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender is the part of *tele.Bot the sink needs
type Sender interface {
	Forward(to tele.Recipient, msg tele.Editable, opts ...interface{}) (*tele.Message, error)
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// TelegramSink forwards photos and posts notices into a fixed chat
type TelegramSink struct {
	sender Sender
	chat   tele.ChatID
	logger *zap.Logger
}

// NewTelegramSink creates a sink posting into chatID
func NewTelegramSink(sender Sender, chatID int64, logger *zap.Logger) *TelegramSink {
	return &TelegramSink{
		sender: sender,
		chat:   tele.ChatID(chatID),
		logger: logger,
	}
}

// Forward copies the referenced message into the admin chat
func (s *TelegramSink) Forward(ctx context.Context, ref domain.MessageRef) error {
	msg := tele.StoredMessage{
		MessageID: strconv.Itoa(ref.MessageID),
		ChatID:    ref.ChatID,
	}
	return s.run(ctx, func() error {
		_, err := s.sender.Forward(s.chat, msg)
		return err
	})
}

// Notify posts a plain text notice into the admin chat
func (s *TelegramSink) Notify(ctx context.Context, text string) error {
	return s.run(ctx, func() error {
		_, err := s.sender.Send(s.chat, text)
		return err
	})
}

// run bounds a Bot API call by ctx. The call itself cannot be canceled,
// so a late result is only logged.
func (s *TelegramSink) run(ctx context.Context, call func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- call()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		go func() {
			if err := <-done; err == nil {
				s.logger.Warn("Admin chat call finished after timeout", zap.Int64("chat_id", int64(s.chat)))
			}
		}()
		return ctx.Err()
	}
}
