package service

import (
	"context"

	"subquest/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService runs periodic housekeeping
type MaintenanceService struct {
	reloader repository.Reloader
	logger   *zap.Logger
}

// NewMaintenanceService creates a new maintenance service.
// reloader may be nil when the allow-list backend needs no reloading.
func NewMaintenanceService(reloader repository.Reloader, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		reloader: reloader,
		logger:   logger,
	}
}

// ReloadAllowList re-reads the allow-list so that hand edits take effect
func (s *MaintenanceService) ReloadAllowList(ctx context.Context) error {
	if s.reloader == nil {
		return nil
	}

	s.logger.Debug("Reloading allow-list")

	if err := s.reloader.Reload(ctx); err != nil {
		s.logger.Error("Failed to reload allow-list, keeping previous snapshot", zap.Error(err))
		return err
	}

	s.logger.Debug("Allow-list reloaded")
	return nil
}
