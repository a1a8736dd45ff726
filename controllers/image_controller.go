package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/freshfold/freshfold-api/services"
	"github.com/freshfold/freshfold-api/utils"
)

// GetUploadedImage handles GET /api/uploads/:filename - serves a stored
// order photo
func GetUploadedImage(c *gin.Context) {
	filename := c.Param("filename")

	// Prevent directory traversal
	if !utils.IsSafeFilename(filename) {
		respondError(c, http.StatusBadRequest, "INVALID_FILENAME", "Invalid filename")
		return
	}

	data, err := photoService.Load(filename)
	if err != nil {
		if errors.Is(err, services.ErrObjectNotFound) {
			respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "Image not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load image")
		return
	}

	contentType := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	c.Header("Cache-Control", "public, max-age=86400") // Cache for 24 hours
	c.Data(http.StatusOK, contentType, data)
}
