package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/andikurnia/siperjaka/internal/domain/entity"
)

// SettingsRepository handles the organization settings singleton
type SettingsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sql.DB, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the saved settings. Returns (nil, nil) before the first save.
func (r *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	query := `
		SELECT signature_date, logo_url, official_name, official_nip,
			official_position, official_rank, opd_name, sk_official
		FROM settings
		WHERE id = ?`

	var set entity.Settings
	err := r.db.QueryRowContext(ctx, query, entity.SettingsID).Scan(
		&set.SignatureDate,
		&set.LogoURL,
		&set.OfficialName,
		&set.OfficialNIP,
		&set.OfficialPosition,
		&set.OfficialRank,
		&set.OPDName,
		&set.SKOfficial,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get settings", zap.Error(err))
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &set, nil
}

// Put saves the settings singleton, replacing any previous row
func (r *SettingsRepository) Put(ctx context.Context, set *entity.Settings) error {
	query := `
		INSERT INTO settings (
			id, signature_date, logo_url, official_name, official_nip,
			official_position, official_rank, opd_name, sk_official
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			signature_date = excluded.signature_date,
			logo_url = excluded.logo_url,
			official_name = excluded.official_name,
			official_nip = excluded.official_nip,
			official_position = excluded.official_position,
			official_rank = excluded.official_rank,
			opd_name = excluded.opd_name,
			sk_official = excluded.sk_official
	`

	_, err := r.db.ExecContext(ctx, query,
		entity.SettingsID,
		set.SignatureDate,
		set.LogoURL,
		set.OfficialName,
		set.OfficialNIP,
		set.OfficialPosition,
		set.OfficialRank,
		set.OPDName,
		set.SKOfficial,
	)
	if err != nil {
		r.logger.Error("Failed to save settings", zap.Error(err))
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
