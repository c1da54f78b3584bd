// File: controllers/upload.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// UploadImages menangani unggahan beberapa berkas sekaligus ke folder tujuan
// di Cloudinary. URL publik dikembalikan dalam urutan berkas masuk.
func (ctrl *Controller) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}

	folderPath := c.PostForm("folderPath")
	if folderPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No folder path provided"})
		return
	}

	if ctrl.Cld == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage not configured. Please set CLOUDINARY_URL."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file: " + err.Error()})
			return
		}

		uploadResult, err := ctrl.Cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folderPath})
		file.Close()
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image: " + err.Error()})
			return
		}

		urls = append(urls, uploadResult.SecureURL)
	}

	c.JSON(http.StatusOK, gin.H{"urls": urls})
}
