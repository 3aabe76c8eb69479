package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
)

type settingsRepository struct {
	storage *Storage
}

const settingsColumns = `store_name, contact_email, phone, address, business_hours, social_links,
       mpesa_consumer_key, mpesa_consumer_secret, mpesa_passkey, business_short_code,
       created_at, updated_at`

func scanSettings(row rowScanner) (*model.Settings, error) {
	var (
		s         model.Settings
		hoursRaw  []byte
		socialRaw []byte
	)
	err := row.Scan(
		&s.StoreName, &s.ContactEmail, &s.Phone, &s.Address, &hoursRaw, &socialRaw,
		&s.Payment.ConsumerKey, &s.Payment.ConsumerSecret, &s.Payment.Passkey,
		&s.Payment.ShortCode, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(hoursRaw) > 0 {
		if err := json.Unmarshal(hoursRaw, &s.BusinessHours); err != nil {
			return nil, fmt.Errorf("decode business hours: %w", err)
		}
	}
	if len(socialRaw) > 0 {
		if err := json.Unmarshal(socialRaw, &s.SocialLinks); err != nil {
			return nil, fmt.Errorf("decode social links: %w", err)
		}
	}
	return &s, nil
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE id=1`
	settings, err := scanSettings(r.storage.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return settings, nil
}

// Upsert writes the singleton row. The fixed id plus ON CONFLICT keeps
// concurrent first-writes from ever producing a second record.
func (r *settingsRepository) Upsert(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	hours, err := json.Marshal(settings.BusinessHours)
	if err != nil {
		return nil, fmt.Errorf("encode business hours: %w", err)
	}
	if settings.BusinessHours == nil {
		hours = []byte(`{}`)
	}
	social, err := json.Marshal(settings.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("encode social links: %w", err)
	}
	if settings.SocialLinks == nil {
		social = []byte(`{}`)
	}

	query := `INSERT INTO settings (
            id, store_name, contact_email, phone, address, business_hours, social_links,
            mpesa_consumer_key, mpesa_consumer_secret, mpesa_passkey, business_short_code
        ) VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (id) DO UPDATE SET
            store_name=EXCLUDED.store_name,
            contact_email=EXCLUDED.contact_email,
            phone=EXCLUDED.phone,
            address=EXCLUDED.address,
            business_hours=EXCLUDED.business_hours,
            social_links=EXCLUDED.social_links,
            mpesa_consumer_key=EXCLUDED.mpesa_consumer_key,
            mpesa_consumer_secret=EXCLUDED.mpesa_consumer_secret,
            mpesa_passkey=EXCLUDED.mpesa_passkey,
            business_short_code=EXCLUDED.business_short_code,
            updated_at=NOW()
        RETURNING ` + settingsColumns

	stored, err := scanSettings(r.storage.pool.QueryRow(ctx, query,
		settings.StoreName, settings.ContactEmail, settings.Phone, settings.Address,
		hours, social, settings.Payment.ConsumerKey, settings.Payment.ConsumerSecret,
		settings.Payment.Passkey, settings.Payment.ShortCode,
	))
	if err != nil {
		return nil, err
	}
	return stored, nil
}
