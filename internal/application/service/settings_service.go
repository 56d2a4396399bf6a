package service

import (
	"context"

	"github.com/andikurnia/siperjaka/internal/application/port"
	"github.com/andikurnia/siperjaka/internal/domain/entity"
	"github.com/andikurnia/siperjaka/internal/domain/workflow"
)

// SettingsService manages the organization settings singleton.
type SettingsService interface {
	// Get returns the saved settings, or the fixed defaults before any save.
	Get(ctx context.Context) (*entity.Settings, error)

	// Update replaces the singleton. Admin only.
	Update(ctx context.Context, actor Actor, set *entity.Settings) error
}

type settingsServiceImpl struct {
	repo   port.SettingsRepository
	logger Logger
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo port.SettingsRepository, logger Logger) SettingsService {
	return &settingsServiceImpl{repo: repo, logger: logger}
}

func (s *settingsServiceImpl) Get(ctx context.Context) (*entity.Settings, error) {
	set, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return entity.DefaultSettings(), nil
	}
	return set, nil
}

func (s *settingsServiceImpl) Update(ctx context.Context, actor Actor, set *entity.Settings) error {
	if err := requireRole(actor, workflow.RoleAdmin); err != nil {
		return err
	}
	if set.OfficialName == "" {
		return validationErr("official_name", "must not be empty")
	}
	if set.OPDName == "" {
		return validationErr("opd_name", "must not be empty")
	}

	if err := s.repo.Put(ctx, set); err != nil {
		s.logger.Error("Failed to save settings", "error", err)
		return err
	}

	s.logger.Info("Settings updated", "official_name", set.OfficialName)
	return nil
}
