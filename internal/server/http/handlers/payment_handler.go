package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
)

// PaymentHandler manages push-payment endpoints.
type PaymentHandler struct {
	facade PaymentFacade
	logger *slog.Logger
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{facade: facade, logger: logger}
}

// Initiate handles POST /api/payments/mpesa/initiate.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	ack, err := h.facade.InitiatePayment(c.Request.Context(), req.PhoneNumber, req.Amount, req.OrderID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToInitiatePaymentResponse(ack)))
}

// Callback handles POST /api/payments/mpesa/callback. The provider retries
// until it sees success, so this route acknowledges unconditionally; any
// internal fault is logged and swallowed.
func (h *PaymentHandler) Callback(c *gin.Context) {
	var envelope mpesa.CallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		h.logger.Warn("unreadable payment callback", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.OKMessage("callback received"))
		return
	}

	if err := h.facade.ReconcilePayment(c.Request.Context(), envelope.Body.STKCallback); err != nil {
		h.logger.Error("payment reconciliation failed",
			slog.String("checkoutRequestId", envelope.Body.STKCallback.CheckoutRequestID),
			slog.String("error", err.Error()),
		)
	}
	c.JSON(http.StatusOK, dto.OKMessage("callback received"))
}

// Verify handles GET /api/payments/verify/:id.
func (h *PaymentHandler) Verify(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	result, err := h.facade.VerifyPayment(c.Request.Context(), id, CurrentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToVerifyPaymentResponse(result)))
}
