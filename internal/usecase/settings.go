package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// SettingsUseCase manages the singleton site settings record.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get returns the full settings record, creating defaults on first access.
func (u *SettingsUseCase) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return u.settings.Upsert(ctx, model.DefaultSettings())
		}
		return nil, err
	}
	return settings, nil
}

// Public returns the customer-visible subset, with payment credentials
// stripped.
func (u *SettingsUseCase) Public(ctx context.Context) (*model.Settings, error) {
	settings, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	public := *settings
	public.Payment = model.PaymentCredentials{}
	return &public, nil
}

// Update replaces the settings record via upsert.
func (u *SettingsUseCase) Update(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	return u.settings.Upsert(ctx, settings)
}
