package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logger logs every update with its handling time and any error the
// handler returned
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			var userID int64
			if sender := c.Sender(); sender != nil {
				userID = sender.ID
			}

			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Int64("user_id", userID),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				logger.Error("Handler failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
