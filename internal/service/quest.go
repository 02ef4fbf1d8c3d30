package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subquest/internal/catalog"
	"subquest/internal/domain"
	"subquest/internal/repository"

	"go.uber.org/zap"
)

// Sink delivers user submissions and status notices to the admin chat
type Sink interface {
	Forward(ctx context.Context, ref domain.MessageRef) error
	Notify(ctx context.Context, text string) error
}

// QuestOptions tunes the quest flow
type QuestOptions struct {
	LanguageSelection bool
	WelcomeImagePath  string
	SinkTimeout       time.Duration
}

const defaultSinkTimeout = 10 * time.Second

// QuestService is the quest state machine. Every inbound update is handled
// under the user's session lock and yields an Outcome with the replies.
type QuestService struct {
	catalog  *catalog.Catalog
	sessions repository.SessionRepository
	access   *AccessService
	sink     Sink
	opts     QuestOptions
	logger   *zap.Logger
}

// NewQuestService creates a new quest service
func NewQuestService(
	cat *catalog.Catalog,
	sessions repository.SessionRepository,
	access *AccessService,
	sink Sink,
	opts QuestOptions,
	logger *zap.Logger,
) *QuestService {
	if opts.SinkTimeout <= 0 {
		opts.SinkTimeout = defaultSinkTimeout
	}
	return &QuestService{
		catalog:  cat,
		sessions: sessions,
		access:   access,
		sink:     sink,
		opts:     opts,
		logger:   logger,
	}
}

// Start handles /start: language selection, the allow-list gate, then task 1.
// It always restarts the quest from the beginning.
func (s *QuestService) Start(ctx context.Context, user domain.User) domain.Outcome {
	return s.update(ctx, user, func(sess *domain.Session, out *domain.Outcome) error {
		s.begin(ctx, user, sess, out)
		return nil
	})
}

// AskLanguage handles /language by showing the language keyboard
func (s *QuestService) AskLanguage(ctx context.Context, user domain.User) domain.Outcome {
	return s.update(ctx, user, func(sess *domain.Session, out *domain.Outcome) error {
		sess.Enter(domain.StageLanguage)
		out.Add(s.languagePrompt(sess))
		return nil
	})
}

// ChooseLanguage stores the chosen language and starts the quest
func (s *QuestService) ChooseLanguage(ctx context.Context, user domain.User, code string) domain.Outcome {
	lang, ok := s.catalog.ParseLanguage(code)
	return s.update(ctx, user, func(sess *domain.Session, out *domain.Outcome) error {
		if !ok {
			out.Add(s.languagePrompt(sess))
			out.Err = fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, code)
			return nil
		}

		sess.Language = lang
		out.Say(s.catalog.Messages(lang).LanguageChosen)
		s.begin(ctx, user, sess, out)
		return nil
	})
}

// HandleText processes a text message for the current stage
func (s *QuestService) HandleText(ctx context.Context, user domain.User, text string) domain.Outcome {
	return s.update(ctx, user, func(sess *domain.Session, out *domain.Outcome) error {
		if !s.checkStage(sess, out) {
			return nil
		}

		n := sess.Stage.Task()
		task, _ := s.catalog.Task(n)
		texts := task.Text(sess.Language, s.catalog.Fallback())

		switch task.Kind {
		case domain.KindPhotos:
			out.Say(texts.WrongKind)
			out.Err = domain.ErrWrongInputKind

		case domain.KindFreeText:
			out.Say(texts.Success)
			s.advance(sess, out, n)

		default:
			if task.Accepts(text) {
				out.Say(texts.Success)
				s.advance(sess, out, n)
				return nil
			}

			sess.Attempts++
			out.Err = domain.ErrValidationMismatch
			msgs := s.catalog.Messages(s.lang(sess))
			limit := task.AttemptLimit()
			if sess.Attempts < limit {
				out.Say(texts.Retry + " " + fmt.Sprintf(msgs.AttemptsLeftF, limit-sess.Attempts))
				return nil
			}

			s.logger.Info("Attempts exhausted, moving on",
				zap.Int64("user_id", user.ID),
				zap.Int("task", n),
			)
			out.Say(fmt.Sprintf(msgs.RevealF, texts.Answer))
			s.advance(sess, out, n)
		}
		return nil
	})
}

// HandlePhoto processes a photo for the current stage. The photo is
// forwarded to the sink before it is counted; if forwarding fails nothing
// changes and the user may send it again.
func (s *QuestService) HandlePhoto(ctx context.Context, user domain.User, ref domain.MessageRef) domain.Outcome {
	return s.update(ctx, user, func(sess *domain.Session, out *domain.Outcome) error {
		if !s.checkStage(sess, out) {
			return nil
		}

		msgs := s.catalog.Messages(s.lang(sess))
		n := sess.Stage.Task()
		task, _ := s.catalog.Task(n)
		texts := task.Text(sess.Language, s.catalog.Fallback())

		if !task.ExpectsPhoto() {
			out.Say(msgs.TextExpected)
			out.Err = domain.ErrWrongInputKind
			return nil
		}

		limit := task.PhotoLimit()
		if sess.Photos >= limit {
			out.Say(fmt.Sprintf(msgs.PhotoEnoughF, limit))
			out.Err = domain.ErrPhotoLimit
			return nil
		}

		if err := s.forward(ctx, ref); err != nil {
			s.logger.Warn("Failed to forward photo to admin chat",
				zap.Int64("user_id", user.ID),
				zap.Int("task", n),
				zap.Error(err),
			)
			out.Say(msgs.SinkFailed)
			out.Err = err
			return err
		}

		sess.Photos++
		s.logger.Info("Photo accepted",
			zap.Int64("user_id", user.ID),
			zap.Int("task", n),
			zap.Int("photos", sess.Photos),
			zap.Int("required", limit),
		)

		if sess.Photos < limit {
			out.Say(fmt.Sprintf(msgs.PhotoProgressF, sess.Photos, limit, limit-sess.Photos))
			return nil
		}

		final := s.catalog.IsLast(n)
		admin := s.catalog.Messages(s.catalog.Fallback())
		notice := fmt.Sprintf(admin.SinkPhotosF, user.Handle(), limit, n)
		if final {
			notice = fmt.Sprintf(admin.SinkCompletedF, user.Handle(), n)
		}
		// the photo already reached the admin chat; rolling back would make
		// the user resend it and forward a duplicate, so only the notice is lost
		if err := s.notify(ctx, notice); err != nil {
			s.logger.Warn("Failed to notify admin chat",
				zap.Int64("user_id", user.ID),
				zap.Int("task", n),
				zap.Error(err),
			)
		}

		out.Add(domain.Reply{Text: texts.Success, Markdown: final, NoPreview: final})
		s.advance(sess, out, n)
		return nil
	})
}

// Identity answers /id with the user's own id
func (s *QuestService) Identity(user domain.User) domain.Outcome {
	msgs := s.catalog.Messages(s.catalog.Fallback())
	return domain.Outcome{
		Replies: []domain.Reply{{Text: fmt.Sprintf(msgs.IdentityF, user.ID), Markdown: true}},
	}
}

// update runs fn under the user's session lock and turns storage failures
// into a reset of the user's session
func (s *QuestService) update(
	ctx context.Context,
	user domain.User,
	fn func(sess *domain.Session, out *domain.Outcome) error,
) domain.Outcome {
	var out domain.Outcome
	lang := s.catalog.Fallback()

	err := s.sessions.Update(ctx, user.ID, func(sess *domain.Session) error {
		out = domain.Outcome{}
		err := fn(sess, &out)
		lang = s.lang(sess)
		if out.Stage == domain.StageNone {
			out.Stage = sess.Stage
		}
		return err
	})
	if err == nil || errors.Is(err, domain.ErrSinkDelivery) {
		return out
	}

	s.logger.Error("Session storage unavailable, resetting user",
		zap.Int64("user_id", user.ID),
		zap.Error(err),
	)
	if delErr := s.sessions.Delete(context.Background(), user.ID); delErr != nil {
		s.logger.Error("Failed to reset session", zap.Int64("user_id", user.ID), zap.Error(delErr))
	}

	if !errors.Is(err, domain.ErrStorageUnavailable) {
		err = fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return domain.Outcome{
		Replies: []domain.Reply{{Text: s.catalog.Messages(lang).StorageFailed}},
		Stage:   domain.StageNone,
		Err:     err,
	}
}

// begin evaluates language selection and the gate, then enters task 1
func (s *QuestService) begin(ctx context.Context, user domain.User, sess *domain.Session, out *domain.Outcome) {
	if s.opts.LanguageSelection && sess.Language == "" {
		sess.Enter(domain.StageLanguage)
		out.Add(s.languagePrompt(sess))
		return
	}

	msgs := s.catalog.Messages(s.lang(sess))

	allowed, err := s.access.IsAllowed(ctx, user.ID)
	if !allowed {
		// nothing is kept for rejected users, /start checks the gate again
		sess.Clear()
		out.Stage = domain.StageGated
		out.Add(domain.Reply{Text: msgs.Gate, Markdown: true, NoPreview: true})
		out.Err = domain.ErrNotAuthorized
		if err != nil {
			out.Err = err
		}
		s.logger.Info("User is not on the allow-list", zap.Int64("user_id", user.ID))
		return
	}

	s.logger.Info("Quest started", zap.Int64("user_id", user.ID), zap.String("language", string(s.lang(sess))))
	out.Add(domain.Reply{Text: msgs.Welcome, PhotoPath: s.opts.WelcomeImagePath})
	s.enterTask(sess, out, 1)
}

// checkStage answers updates that arrive outside of a task and reports
// whether the update should be handled by the current task
func (s *QuestService) checkStage(sess *domain.Session, out *domain.Outcome) bool {
	msgs := s.catalog.Messages(s.lang(sess))

	switch {
	case sess.Stage == domain.StageLanguage:
		out.Add(s.languagePrompt(sess))
		out.Err = domain.ErrWrongInputKind
		return false
	case sess.Stage.IsTask():
		if _, ok := s.catalog.Task(sess.Stage.Task()); ok {
			return true
		}
	}

	out.Say(msgs.StartHint)
	return false
}

func (s *QuestService) enterTask(sess *domain.Session, out *domain.Outcome, n int) {
	task, _ := s.catalog.Task(n)
	sess.Enter(domain.TaskStage(n))
	out.Say(task.Text(sess.Language, s.catalog.Fallback()).Prompt)
}

// advance leaves task n for the next one, or finishes the quest
func (s *QuestService) advance(sess *domain.Session, out *domain.Outcome, n int) {
	if s.catalog.IsLast(n) {
		s.logger.Info("Quest completed", zap.Int64("user_id", sess.UserID))
		sess.Clear()
		out.Stage = domain.StageCompleted
		return
	}
	s.enterTask(sess, out, n+1)
}

func (s *QuestService) languagePrompt(sess *domain.Session) domain.Reply {
	return domain.Reply{
		Text:   s.catalog.Messages(s.lang(sess)).LanguagePrompt,
		Markup: domain.MarkupLanguage,
	}
}

func (s *QuestService) lang(sess *domain.Session) domain.Language {
	if sess.Language != "" {
		return sess.Language
	}
	return s.catalog.Fallback()
}

func (s *QuestService) forward(ctx context.Context, ref domain.MessageRef) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.SinkTimeout)
	defer cancel()

	if err := s.sink.Forward(ctx, ref); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSinkDelivery, err)
	}
	return nil
}

func (s *QuestService) notify(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.SinkTimeout)
	defer cancel()

	if err := s.sink.Notify(ctx, text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSinkDelivery, err)
	}
	return nil
}
