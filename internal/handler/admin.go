package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"subquest/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var errBadTarget = errors.New("expected a single positive user id")

// parseTargetID reads the user id argument of /add and /remove
func parseTargetID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errBadTarget
	}
	id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadTarget
	}
	return id, nil
}

// handleAdd handles /add <id>
func (h *Handler) handleAdd(c tele.Context) error {
	msgs := h.adminMessages()

	target, err := parseTargetID(c.Args())
	if err != nil {
		return c.Send(fmt.Sprintf(msgs.AdminUsageF, "add"))
	}

	if err := h.access.Grant(requestContext(), c.Sender().ID, target); err != nil {
		return c.Send(h.adminError(err, target))
	}
	return c.Send(fmt.Sprintf(msgs.AdminAddedF, target))
}

// handleRemove handles /remove <id>
func (h *Handler) handleRemove(c tele.Context) error {
	msgs := h.adminMessages()

	target, err := parseTargetID(c.Args())
	if err != nil {
		return c.Send(fmt.Sprintf(msgs.AdminUsageF, "remove"))
	}

	if err := h.access.Revoke(requestContext(), c.Sender().ID, target); err != nil {
		return c.Send(h.adminError(err, target))
	}
	return c.Send(fmt.Sprintf(msgs.AdminRemovedF, target))
}

func (h *Handler) adminError(err error, target int64) string {
	msgs := h.adminMessages()
	if errors.Is(err, domain.ErrNotAuthorized) {
		return msgs.AdminDenied
	}
	h.logger.Error("Allow-list update failed", zap.Int64("target_id", target), zap.Error(err))
	return msgs.AdminFailed
}
