package service

import (
	"context"
	"fmt"

	"subquest/internal/domain"
	"subquest/internal/repository"

	"go.uber.org/zap"
)

// AccessService guards the quest behind the allow-list and handles the
// administrator's add/remove commands
type AccessService struct {
	repo          repository.AllowListRepository
	adminID       int64
	adminCommands bool
	logger        *zap.Logger
}

// NewAccessService creates a new access service
func NewAccessService(
	repo repository.AllowListRepository,
	adminID int64,
	adminCommands bool,
	logger *zap.Logger,
) *AccessService {
	return &AccessService{
		repo:          repo,
		adminID:       adminID,
		adminCommands: adminCommands,
		logger:        logger,
	}
}

// IsAdmin reports whether userID may run admin commands
func (s *AccessService) IsAdmin(userID int64) bool {
	return s.adminCommands && s.adminID != 0 && userID == s.adminID
}

// AdminCommandsEnabled reports whether /add and /remove are served
func (s *AccessService) AdminCommandsEnabled() bool {
	return s.adminCommands
}

// IsAllowed checks the allow-list. It fails closed: on a storage error the
// user is reported as not allowed and the error is returned for logging.
func (s *AccessService) IsAllowed(ctx context.Context, userID int64) (bool, error) {
	allowed, err := s.repo.IsAllowed(ctx, userID)
	if err != nil {
		s.logger.Error("Allow-list check failed, denying access",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return false, err
	}
	return allowed, nil
}

// Grant adds target to the allow-list on behalf of adminID
func (s *AccessService) Grant(ctx context.Context, adminID, target int64) error {
	if !s.IsAdmin(adminID) {
		s.logger.Warn("Rejected add command", zap.Int64("user_id", adminID), zap.Int64("target_id", target))
		return fmt.Errorf("add user %d: %w", target, domain.ErrNotAuthorized)
	}
	if err := s.repo.Add(ctx, target); err != nil {
		s.logger.Error("Failed to add user to allow-list", zap.Int64("target_id", target), zap.Error(err))
		return fmt.Errorf("add user %d: %w", target, err)
	}
	s.logger.Info("User added to allow-list", zap.Int64("admin_id", adminID), zap.Int64("target_id", target))
	return nil
}

// Revoke removes target from the allow-list on behalf of adminID
func (s *AccessService) Revoke(ctx context.Context, adminID, target int64) error {
	if !s.IsAdmin(adminID) {
		s.logger.Warn("Rejected remove command", zap.Int64("user_id", adminID), zap.Int64("target_id", target))
		return fmt.Errorf("remove user %d: %w", target, domain.ErrNotAuthorized)
	}
	if err := s.repo.Remove(ctx, target); err != nil {
		s.logger.Error("Failed to remove user from allow-list", zap.Int64("target_id", target), zap.Error(err))
		return fmt.Errorf("remove user %d: %w", target, err)
	}
	s.logger.Info("User removed from allow-list", zap.Int64("admin_id", adminID), zap.Int64("target_id", target))
	return nil
}
