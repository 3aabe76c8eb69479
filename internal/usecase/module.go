package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
	"github.com/sweetcrumb/bakehouse/internal/config"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewCatalogUseCase,
	NewContentUseCase,
	NewSettingsUseCase,
	NewUserUseCase,
	newOrderUseCase,
	newPaymentUseCase,
)

func newOrderUseCase(orders repository.OrderRepository, cfg *config.Config) *OrderUseCase {
	return NewOrderUseCase(orders, cfg.OrderPrefix)
}

func newPaymentUseCase(
	orders repository.OrderRepository,
	settings repository.SettingsRepository,
	client mpesa.Client,
	cfg *config.Config,
	logger *slog.Logger,
) *PaymentUseCase {
	defaults := mpesa.Credentials{
		ConsumerKey:    cfg.MpesaConsumerKey,
		ConsumerSecret: cfg.MpesaConsumerSecret,
		Passkey:        cfg.MpesaPasskey,
		ShortCode:      cfg.MpesaShortCode,
	}
	return NewPaymentUseCase(orders, settings, client, defaults, cfg.CallbackBaseURL, logger)
}
