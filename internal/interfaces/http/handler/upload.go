package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tshirt-brand/backend/internal/infrastructure/storage"
	"github.com/tshirt-brand/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// UploadHandler handles product image uploads
type UploadHandler struct {
	BaseHandler
	store  *storage.LocalImageStore
	logger *zap.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store *storage.LocalImageStore, logger *zap.Logger) *UploadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadHandler{store: store, logger: logger}
}

// UploadResponse carries the public URL of a stored image
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Upload stores a product image and returns its public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "Image file is required")
		return
	}

	imageURL, err := h.store.Save(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			h.ErrorWithCode(c, dto.ErrCodeFileTooLarge, "Image exceeds the maximum allowed size")
		case errors.Is(err, storage.ErrUnsupportedFileType):
			h.ErrorWithCode(c, dto.ErrCodeUnsupportedFileType, "Only jpeg, jpg, png and gif images are allowed")
		default:
			h.logger.Error("Image upload failed", zap.Error(err))
			h.InternalError(c, "Could not store the uploaded image")
		}
		return
	}

	h.Created(c, UploadResponse{ImageURL: imageURL})
}
