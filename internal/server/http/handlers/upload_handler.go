package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
)

// UploadHandler stores admin image uploads under a static-served directory,
// one sub-directory per resource kind.
type UploadHandler struct {
	dir      string
	maxBytes int64
	logger   *slog.Logger
	now      func() time.Time
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(dir string, maxBytes int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{dir: dir, maxBytes: maxBytes, logger: logger, now: time.Now}
}

// ProductImage handles POST /api/products/upload.
func (h *UploadHandler) ProductImage(c *gin.Context) {
	h.store(c, "products")
}

// TestimonialImage handles POST /api/testimonials/upload.
func (h *UploadHandler) TestimonialImage(c *gin.Context) {
	h.store(c, "testimonials")
}

func (h *UploadHandler) store(c *gin.Context, kind string) {
	file, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "please upload a file")
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		badRequest(c, "please upload an image file")
		return
	}
	if file.Size > h.maxBytes {
		badRequest(c, fmt.Sprintf("please upload an image smaller than %d bytes", h.maxBytes))
		return
	}

	name := fmt.Sprintf("%s_%d%s", kind, h.now().UnixMilli(), filepath.Ext(file.Filename))
	dir := filepath.Join(h.dir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"url": "/uploads/" + kind + "/" + name}))
}
