package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
	"github.com/sweetcrumb/bakehouse/internal/server/http/query"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
	logger *slog.Logger
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{facade: facade, logger: logger}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query())
	products, total, err := h.facade.Products(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	data := dto.Project(dto.ToProductResponses(products), q.Select)
	c.JSON(http.StatusOK, dto.NewListResponse(data, len(products), total, q))
}

// Featured handles GET /api/products/featured.
func (h *ProductHandler) Featured(c *gin.Context) {
	products, err := h.facade.FeaturedProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToProductResponses(products), len(products)))
}

// ByCategory handles GET /api/products/category/:id.
func (h *ProductHandler) ByCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	products, err := h.facade.ProductsByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToProductResponses(products), len(products)))
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToProductResponse(*product)))
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	product, err := h.facade.CreateProduct(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToProductResponse(*product)))
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	product := req.ToModel()
	product.ID = id
	updated, err := h.facade.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToProductResponse(*updated)))
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("product deleted"))
}

// Categories handles GET /api/products/categories.
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToCategoryResponses(categories), len(categories)))
}

// CreateCategory handles POST /api/products/categories.
func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	category, err := h.facade.CreateCategory(c.Request.Context(), &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToCategoryResponse(*category)))
}

// UpdateCategory handles PUT /api/products/categories/:id.
func (h *ProductHandler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	category, err := h.facade.UpdateCategory(c.Request.Context(), &model.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryResponse(*category)))
}

// DeleteCategory handles DELETE /api/products/categories/:id.
func (h *ProductHandler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("category deleted"))
}
