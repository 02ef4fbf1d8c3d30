package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const languagePrefix = "lang_"

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleLanguageChoice handles a press on the language keyboard
func (h *Handler) handleLanguageChoice(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	user := userFromSender(c.Sender())
	out := h.quest.ChooseLanguage(requestContext(), user, cleanCallbackData(callback.Data))
	h.logOutcome("language_choice", user, out)
	return h.send(c, out)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	if h.languageSelection && (callback.Unique == btnLangRU.Unique || strings.HasPrefix(data, languagePrefix)) {
		return h.handleLanguageChoice(c)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
