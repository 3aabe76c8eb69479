package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
)

// SettingsHandler manages site settings endpoints.
type SettingsHandler struct {
	facade SettingsFacade
	logger *slog.Logger
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{facade: facade, logger: logger}
}

// Public handles GET /api/settings. Payment credentials are stripped.
func (h *SettingsHandler) Public(c *gin.Context) {
	settings, err := h.facade.PublicSettings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSettingsResponse(settings, false)))
}

// Get handles GET /api/admin/settings with the full record.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.facade.Settings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSettingsResponse(settings, true)))
}

// Update handles PUT /api/admin/settings via upsert.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	settings, err := h.facade.UpdateSettings(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSettingsResponse(settings, true)))
}
