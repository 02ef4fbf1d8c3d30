package handler

import (
	"context"
	"os"

	"subquest/internal/catalog"
	"subquest/internal/domain"
	"subquest/internal/middleware"
	"subquest/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot     *tele.Bot
	quest   *service.QuestService
	access  *service.AccessService
	catalog *catalog.Catalog
	logger  *zap.Logger

	languageSelection bool
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	quest *service.QuestService,
	access *service.AccessService,
	cat *catalog.Catalog,
	languageSelection bool,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:               bot,
		quest:             quest,
		access:            access,
		catalog:           cat,
		logger:            logger,
		languageSelection: languageSelection,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.Logger(h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/id", h.handleID)

	if h.languageSelection {
		h.bot.Handle("/language", h.handleLanguage)
		h.bot.Handle(&btnLangRU, h.handleLanguageChoice)
	}

	if h.access.AdminCommandsEnabled() {
		adminOnly := middleware.AdminOnly(h.access, h.adminMessages().AdminDenied, h.logger)
		h.bot.Handle("/add", h.handleAdd, adminOnly)
		h.bot.Handle("/remove", h.handleRemove, adminOnly)
	}

	// Player input
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)

	// Generic callback handler for buttons sent without a unique id
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Language buttons share one unique id and carry the language code as data
var (
	btnLangRU = tele.Btn{
		Unique: "lang",
		Text:   "🇷🇺 Русский",
		Data:   string(domain.LangRU),
	}
	btnLangEN = tele.Btn{
		Unique: "lang",
		Text:   "🇬🇧 English",
		Data:   string(domain.LangEN),
	}
)

// languageMarkup returns the language keyboard
func languageMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLangRU, btnLangEN),
	)
	return menu
}

// sendOptions maps reply formatting onto telebot options
func sendOptions(r domain.Reply) *tele.SendOptions {
	opts := &tele.SendOptions{
		DisableWebPagePreview: r.NoPreview,
	}
	if r.Markdown {
		opts.ParseMode = tele.ModeMarkdown
	}
	if r.Markup == domain.MarkupLanguage {
		opts.ReplyMarkup = languageMarkup()
	}
	return opts
}

func userFromSender(sender *tele.User) domain.User {
	if sender == nil {
		return domain.User{}
	}
	return domain.User{
		ID:       sender.ID,
		Username: sender.Username,
	}
}

// send delivers every reply of an outcome in order and stops at the first
// failed send
func (h *Handler) send(c tele.Context, out domain.Outcome) error {
	for _, r := range out.Replies {
		if err := h.sendReply(c, r); err != nil {
			h.logger.Error("Failed to send reply",
				zap.Int64("user_id", c.Sender().ID),
				zap.Error(err),
			)
			return nil
		}
	}
	return nil
}

func (h *Handler) sendReply(c tele.Context, r domain.Reply) error {
	opts := sendOptions(r)

	if r.PhotoPath != "" {
		if _, err := os.Stat(r.PhotoPath); err == nil {
			return c.Send(&tele.Photo{File: tele.FromDisk(r.PhotoPath), Caption: r.Text}, opts)
		}
		h.logger.Warn("Image not found, sending text only", zap.String("path", r.PhotoPath))
	}

	return c.Send(r.Text, opts)
}

// logOutcome records how the update was classified
func (h *Handler) logOutcome(event string, user domain.User, out domain.Outcome) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.Int64("user_id", user.ID),
		zap.Stringer("stage", out.Stage),
	}
	if out.Err != nil {
		fields = append(fields, zap.NamedError("outcome", out.Err))
	}
	h.logger.Debug("Update processed", fields...)
}

func (h *Handler) adminMessages() catalog.Messages {
	return h.catalog.Messages(h.catalog.Fallback())
}

func requestContext() context.Context {
	return context.Background()
}
