package handler

import (
	"testing"

	"subquest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "lang_ru",
			expected: "lang_ru",
		},
		{
			name:     "string with whitespace",
			input:    "  lang_en  ",
			expected: "lang_en",
		},
		{
			name:     "string with newline",
			input:    "lang\n_en",
			expected: "lang_en",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "\flang|en\x00",
			expected: "lang|en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHandler_LanguageCallback(t *testing.T) {
	tests := []struct {
		name     string
		callback *tele.Callback
		wantLang domain.Language
	}{
		{
			name:     "unique button",
			callback: &tele.Callback{Unique: "lang", Data: "en"},
			wantLang: domain.LangEN,
		},
		{
			name:     "legacy data",
			callback: &tele.Callback{Data: "lang_ru"},
			wantLang: domain.LangRU,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t, true)
			f.allow.On("IsAllowed", mock.Anything, int64(1)).Return(true, nil)
			c := newFakeContext(1)
			c.callback = tt.callback

			assert.NoError(t, f.handler.handleCallback(c))

			assert.Equal(t, 1, c.responded)
			msgs := f.catalog.Messages(tt.wantLang)
			assert.Equal(t, msgs.LanguageChosen, c.texts()[0])
			assert.Equal(t, msgs.Welcome, c.texts()[1])
		})
	}
}

func TestHandler_UnknownCallbackIsAcknowledged(t *testing.T) {
	f := newHandlerFixture(t, true)
	c := newFakeContext(1)
	c.callback = &tele.Callback{Data: "page_2"}

	assert.NoError(t, f.handler.handleCallback(c))

	assert.Equal(t, 1, c.responded)
	assert.Empty(t, c.sent)
	f.allow.AssertNotCalled(t, "IsAllowed", mock.Anything, mock.Anything)
}
