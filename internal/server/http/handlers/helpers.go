package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
	"github.com/sweetcrumb/bakehouse/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated account from context.
func CurrentUser(c *gin.Context) *model.User {
	return middleware.CurrentUser(c)
}

// paramID parses the named path parameter as an identifier.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError funnels every handler fault through the single status
// mapping. Unexpected faults are logged with detail and answered with a
// generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var validation *domainErrors.ValidationError
	var conflict *domainErrors.ConflictError
	var upstream *domainErrors.UpstreamError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: validation.Fields})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: conflict.Message})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "already exists"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrForbidden), errors.Is(err, domainErrors.ErrAccountInactive):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrPaymentNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: domainErrors.ErrPaymentNotConfigured.Error()})
	case errors.As(err, &upstream):
		logger.Error("upstream failure", slog.String("op", upstream.Op), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "payment provider unavailable"})
	default:
		logger.Error("unexpected fault", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
	}
}

// badRequest answers a malformed body.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
