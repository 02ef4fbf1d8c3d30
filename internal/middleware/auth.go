package middleware

import (
	"subquest/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly lets only the configured administrator through and answers
// everyone else with denyText
func AdminOnly(access *service.AccessService, denyText string, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || !access.IsAdmin(sender.ID) {
				var userID int64
				if sender != nil {
					userID = sender.ID
				}
				logger.Warn("Admin command rejected",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Send(denyText)
			}

			return next(c)
		}
	}
}
