package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
	"github.com/sweetcrumb/bakehouse/internal/server/http/query"
)

// UserHandler manages account endpoints.
type UserHandler struct {
	facade UserFacade
	logger *slog.Logger
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade, logger *slog.Logger) *UserHandler {
	return &UserHandler{facade: facade, logger: logger}
}

// Profile handles GET /api/users/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	user := CurrentUser(c)
	profile, err := h.facade.Profile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(*profile)))
}

// UpdateProfile handles PUT /api/users/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	user := CurrentUser(c)
	updated, err := h.facade.UpdateProfile(c.Request.Context(), user.ID, req.ToUpdate())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(*updated)))
}

// ChangePassword handles PUT /api/users/password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	user := CurrentUser(c)
	if err := h.facade.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("password updated"))
}

// Wishlist handles GET /api/users/wishlist.
func (h *UserHandler) Wishlist(c *gin.Context) {
	user := CurrentUser(c)
	products, err := h.facade.Wishlist(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToProductResponses(products), len(products)))
}

// AddToWishlist handles POST /api/users/wishlist.
func (h *UserHandler) AddToWishlist(c *gin.Context) {
	var req dto.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	user := CurrentUser(c)
	products, err := h.facade.AddToWishlist(c.Request.Context(), user.ID, req.ProductID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToProductResponses(products), len(products)))
}

// RemoveFromWishlist handles DELETE /api/users/wishlist/:productId.
func (h *UserHandler) RemoveFromWishlist(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}
	user := CurrentUser(c)
	products, err := h.facade.RemoveFromWishlist(c.Request.Context(), user.ID, productID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToProductResponses(products), len(products)))
}

// List handles the admin GET /api/users list query.
func (h *UserHandler) List(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query())
	users, total, err := h.facade.Users(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	data := dto.Project(dto.ToUserResponses(users), q.Select)
	c.JSON(http.StatusOK, dto.NewListResponse(data, len(users), total, q))
}

// Get handles GET /api/users/:id for the admin panel.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := h.facade.User(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(*user)))
}

// Update handles PUT /api/users/:id for the admin panel.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	user, err := h.facade.UpdateUser(c.Request.Context(), id, req.ToUpdate())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(*user)))
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("user deleted"))
}

// UpdateNotes handles PUT /api/users/:id/notes.
func (h *UserHandler) UpdateNotes(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	user, err := h.facade.UpdateUserNotes(c.Request.Context(), id, req.Notes)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(*user)))
}

// Activate handles PUT /api/users/:id/activate.
func (h *UserHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate handles PUT /api/users/:id/deactivate.
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := h.facade.SetUserActive(c.Request.Context(), id, active)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(*user)))
}
