package repository

import (
	"context"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
)

// SettingsRepository stores the singleton site settings record. Writes are
// upsert-only so a second insert cannot race past the uniqueness constraint.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Upsert(ctx context.Context, settings *model.Settings) (*model.Settings, error)
}
