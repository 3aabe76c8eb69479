package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
	"github.com/sweetcrumb/bakehouse/internal/server/http/query"
)

// ContentHandler manages FAQ and testimonial endpoints.
type ContentHandler struct {
	facade ContentFacade
	logger *slog.Logger
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(facade ContentFacade, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{facade: facade, logger: logger}
}

// FAQs handles GET /api/faqs.
func (h *ContentHandler) FAQs(c *gin.Context) {
	faqs, err := h.facade.FAQs(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToFAQResponses(faqs), len(faqs)))
}

// FAQCategories handles GET /api/faqs/categories.
func (h *ContentHandler) FAQCategories(c *gin.Context) {
	categories, err := h.facade.FAQCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(categories, len(categories)))
}

// ListFAQs handles the admin GET /api/admin/faqs list query.
func (h *ContentHandler) ListFAQs(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query())
	faqs, total, err := h.facade.ListFAQs(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	data := dto.Project(dto.ToFAQResponses(faqs), q.Select)
	c.JSON(http.StatusOK, dto.NewListResponse(data, len(faqs), total, q))
}

// CreateFAQ handles POST /api/admin/faqs.
func (h *ContentHandler) CreateFAQ(c *gin.Context) {
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	faq, err := h.facade.CreateFAQ(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToFAQResponse(*faq)))
}

// UpdateFAQ handles PUT /api/admin/faqs/:id.
func (h *ContentHandler) UpdateFAQ(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	faq := req.ToModel()
	faq.ID = id
	updated, err := h.facade.UpdateFAQ(c.Request.Context(), faq)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToFAQResponse(*updated)))
}

// DeleteFAQ handles DELETE /api/admin/faqs/:id.
func (h *ContentHandler) DeleteFAQ(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteFAQ(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("faq deleted"))
}

// ReorderFAQs handles PUT /api/admin/faqs/reorder.
func (h *ContentHandler) ReorderFAQs(c *gin.Context) {
	var req dto.ReorderFAQsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if err := h.facade.ReorderFAQs(c.Request.Context(), req.ToItems()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("faqs reordered"))
}

// Testimonials handles GET /api/testimonials with approved entries only.
func (h *ContentHandler) Testimonials(c *gin.Context) {
	testimonials, err := h.facade.ApprovedTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToTestimonialResponses(testimonials), len(testimonials)))
}

// SubmitTestimonial handles POST /api/testimonials. Submissions await
// moderation before appearing publicly.
func (h *ContentHandler) SubmitTestimonial(c *gin.Context) {
	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	testimonial, err := h.facade.SubmitTestimonial(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Data:    dto.ToTestimonialResponse(*testimonial),
		Message: "thank you for your testimonial, it will appear after review",
	})
}

// ListTestimonials handles the admin GET /api/admin/testimonials list query.
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query())
	testimonials, total, err := h.facade.Testimonials(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	data := dto.Project(dto.ToTestimonialResponses(testimonials), q.Select)
	c.JSON(http.StatusOK, dto.NewListResponse(data, len(testimonials), total, q))
}

// UpdateTestimonial handles PUT /api/admin/testimonials/:id.
func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	testimonial := req.ToModel()
	testimonial.ID = id
	updated, err := h.facade.UpdateTestimonial(c.Request.Context(), testimonial)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTestimonialResponse(*updated)))
}

// ApproveTestimonial handles PUT /api/admin/testimonials/:id/approve.
func (h *ContentHandler) ApproveTestimonial(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ApproveTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	testimonial, err := h.facade.ApproveTestimonial(c.Request.Context(), id, req.Approved)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTestimonialResponse(*testimonial)))
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/:id.
func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteTestimonial(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("testimonial deleted"))
}
