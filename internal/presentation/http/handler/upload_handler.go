package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/waheedcycles/cycleshop-api/internal/config"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/dto/response"
)

// UploadHandler handles bicycle image uploads to local storage
type UploadHandler struct {
	storage config.StorageConfig
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(storage config.StorageConfig) *UploadHandler {
	return &UploadHandler{storage: storage}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Upload saves an image from a multipart form and returns its public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "No image file provided")
		return
	}

	if file.Size > h.storage.UploadMaxSize {
		response.BadRequest(c, fmt.Sprintf("File exceeds the %d byte limit", h.storage.UploadMaxSize))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		response.BadRequest(c, "Unsupported image type")
		return
	}

	if err := os.MkdirAll(h.storage.Path, 0o755); err != nil {
		response.Error(c, err)
		return
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(h.storage.Path, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Image uploaded successfully", gin.H{
		"url": "/uploads/" + name,
	})
}
