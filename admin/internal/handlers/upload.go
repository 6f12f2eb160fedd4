package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/storage"
)

// maxUploadBytes caps sign artwork uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// UploadHandler pushes sign artwork to object storage.
type UploadHandler struct {
	uploader Uploader
}

// Upload accepts one multipart file field named "file", sniffs its real
// content type, and stores it under the neon-signs prefix.
// URL: POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file provided"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[upload] failed to open %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to read file"})
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		log.Printf("[upload] failed to read %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to read file"})
		return
	}

	// Sniff the real content type, the client-supplied header is not trusted.
	mtype := mimetype.Detect(body)
	if !mtype.Is("image/png") && !mtype.Is("image/jpeg") && !mtype.Is("image/webp") && !mtype.Is("image/gif") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Only image uploads are allowed"})
		return
	}

	key := storage.ObjectKey("neon-signs", fileHeader.Filename)
	url, err := h.uploader.Put(c.Request.Context(), key, mtype.String(), body)
	if err != nil {
		log.Printf("[upload] failed to store %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "imageUrl": url})
}
