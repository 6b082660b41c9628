package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bertiemoogle/ethical-gift-finder/internal/domain"
	"github.com/bertiemoogle/ethical-gift-finder/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	wishlist       *usecase.WishlistService
	maxUploadBytes int64
}

// NewHandler creates a new HTTP handler
func NewHandler(wishlist *usecase.WishlistService, maxUploadBytes int64) *Handler {
	return &Handler{
		wishlist:       wishlist,
		maxUploadBytes: maxUploadBytes,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ethical-gift-finder",
		"version": "1.0.0",
	})
}

// UploadWishlist accepts a wishlist PDF under the "file" form field and runs
// the full analysis pipeline on it
func (h *Handler) UploadWishlist(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing file upload, send the wishlist PDF as the 'file' field",
		})
		return
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "uploaded file is too large",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	result, err := h.wishlist.AnalyzeUpload(c.Request.Context(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		renderAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalysisStatus reports the pipeline phase and extraction progress for
// progress display
func (h *Handler) AnalysisStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.wishlist.Status())
}

// ImportWishlistURL handles the URL import path, which only ever advises the
// caller to use the upload path
func (h *Handler) ImportWishlistURL(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a wishlist url is required"})
		return
	}

	err := h.wishlist.AnalyzeURL(req.URL)
	if errors.Is(err, domain.ErrURLImportUnsupported) {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": err.Error(),
			"hint":  "export the wishlist to PDF and use the upload endpoint for best results",
		})
		return
	}
	renderAnalysisError(c, err)
}

// QuickSearch builds retailer recommendations for a product search term
func (h *Handler) QuickSearch(c *gin.Context) {
	var req struct {
		Term string `json:"term" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a search term is required"})
		return
	}

	result, err := h.wishlist.AnalyzeSearch(req.Term)
	if err != nil {
		renderAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// renderAnalysisError maps pipeline errors to HTTP responses
func renderAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType), errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoItemsFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"hint":  "make sure this is a wishlist exported to PDF",
		})
	case errors.Is(err, domain.ErrExtractionFailure):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"hint":  "try again or use a different file",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
