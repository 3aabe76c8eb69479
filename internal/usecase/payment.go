package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// PaymentUseCase drives push payments against the mobile-money provider and
// reconciles its asynchronous callbacks against stored orders.
type PaymentUseCase struct {
	orders   repository.OrderRepository
	settings repository.SettingsRepository
	client   mpesa.Client

	defaults        mpesa.Credentials
	callbackBaseURL string
	logger          *slog.Logger
	now             func() time.Time
}

// NewPaymentUseCase constructs PaymentUseCase. defaults are the process-wide
// credential fallbacks applied per field when the stored settings leave one blank.
func NewPaymentUseCase(
	orders repository.OrderRepository,
	settings repository.SettingsRepository,
	client mpesa.Client,
	defaults mpesa.Credentials,
	callbackBaseURL string,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orders:          orders,
		settings:        settings,
		client:          client,
		defaults:        defaults,
		callbackBaseURL: callbackBaseURL,
		logger:          logger,
		now:             time.Now,
	}
}

// VerifyResult is the locally stored payment state for an order.
type VerifyResult struct {
	Verified bool
	Status   model.PaymentStatus
	Details  model.PaymentDetails
}

// credentials resolves provider credentials from the settings singleton,
// falling back to process defaults per field.
func (u *PaymentUseCase) credentials(ctx context.Context) (mpesa.Credentials, error) {
	creds := u.defaults

	stored, err := u.settings.Get(ctx)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return mpesa.Credentials{}, err
	}
	if stored != nil {
		if stored.Payment.ConsumerKey != "" {
			creds.ConsumerKey = stored.Payment.ConsumerKey
		}
		if stored.Payment.ConsumerSecret != "" {
			creds.ConsumerSecret = stored.Payment.ConsumerSecret
		}
		if stored.Payment.Passkey != "" {
			creds.Passkey = stored.Payment.Passkey
		}
		if stored.Payment.ShortCode != "" {
			creds.ShortCode = stored.Payment.ShortCode
		}
	}

	if creds.ConsumerKey == "" || creds.ConsumerSecret == "" || creds.Passkey == "" || creds.ShortCode == "" {
		return mpesa.Credentials{}, domainErrors.ErrPaymentNotConfigured
	}
	return creds, nil
}

// Initiate sends a push request for the order and records the provider's
// correlation identifiers. No local state is written until the provider
// acknowledges, so a failed push leaves the order untouched.
func (u *PaymentUseCase) Initiate(ctx context.Context, phone string, amount float64, orderID int64) (*mpesa.PushResponse, error) {
	fields := map[string]string{}
	if phone == "" {
		fields["phone"] = "please provide a phone number"
	}
	if amount <= 0 {
		fields["amount"] = "please provide a positive amount"
	}
	if len(fields) > 0 {
		return nil, &domainErrors.ValidationError{Fields: fields}
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	creds, err := u.credentials(ctx)
	if err != nil {
		return nil, err
	}

	ack, err := u.client.Push(ctx, creds, mpesa.PushRequest{
		Phone:            phone,
		Amount:           amount,
		AccountReference: fmt.Sprintf("Order %s", order.OrderNumber),
		Description:      "Bakehouse order payment",
		CallbackURL:      u.callbackBaseURL + "/api/payments/mpesa/callback",
	})
	if err != nil {
		if errors.Is(err, mpesa.ErrAuthFailed) {
			return nil, &domainErrors.UpstreamError{Op: "mpesa auth", Err: err}
		}
		return nil, &domainErrors.UpstreamError{Op: "mpesa push", Err: err}
	}

	details := model.PaymentDetails{
		"checkoutRequestId": ack.CheckoutRequestID,
		"merchantRequestId": ack.MerchantRequestID,
		"initiatedAt":       u.now().UTC().Format(time.RFC3339),
	}
	if err := u.orders.SetPaymentInitiated(ctx, order.ID, mpesa.ProviderName, details); err != nil {
		return nil, err
	}
	return ack, nil
}

// Reconcile matches a provider callback to the originating order and
// finalizes its payment status. An unmatched callback is logged and dropped:
// the provider must always receive an acknowledgement or it retries forever,
// so the caller treats any returned error as log-only.
func (u *PaymentUseCase) Reconcile(ctx context.Context, callback mpesa.STKCallback) error {
	order, err := u.orders.GetByCheckoutRequestID(ctx, callback.CheckoutRequestID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Warn("payment callback without matching order",
				slog.String("checkoutRequestId", callback.CheckoutRequestID))
			return nil
		}
		return err
	}

	if callback.ResultCode == 0 {
		details := model.PaymentDetails{
			"transactionDetails": callback.CallbackMetadata.Item,
			"completedAt":        u.now().UTC().Format(time.RFC3339),
		}
		if _, err := u.orders.UpdatePayment(ctx, order.ID, model.PaymentStatusCompleted, details); err != nil {
			return err
		}
		u.logger.Info("payment completed",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("checkoutRequestId", callback.CheckoutRequestID))
		return nil
	}

	details := model.PaymentDetails{
		"failureReason": callback.ResultDesc,
		"failedAt":      u.now().UTC().Format(time.RFC3339),
	}
	if _, err := u.orders.UpdatePayment(ctx, order.ID, model.PaymentStatusFailed, details); err != nil {
		return err
	}
	u.logger.Info("payment failed",
		slog.String("orderNumber", order.OrderNumber),
		slog.Int("resultCode", callback.ResultCode),
		slog.String("reason", callback.ResultDesc))
	return nil
}

// Verify returns the locally stored payment state. The provider is never
// contacted again; the ledger is only updated by Reconcile.
func (u *PaymentUseCase) Verify(ctx context.Context, orderID int64, requester *model.User) (*VerifyResult, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() {
		if order.Customer.UserID == nil || *order.Customer.UserID != requester.ID {
			return nil, domainErrors.ErrForbidden
		}
	}

	result := &VerifyResult{
		Verified: order.PaymentStatus == model.PaymentStatusCompleted,
		Status:   order.PaymentStatus,
	}
	if order.PaymentMethod == mpesa.ProviderName {
		result.Details = order.PaymentDetails
	}
	return result, nil
}
