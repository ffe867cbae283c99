package handler

import (
	"context"
	"net/http"
	"strings"

	"shopline/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductImageStore is the write half the upload handler needs.
type ProductImageStore interface {
	SetImageURL(ctx context.Context, id primitive.ObjectID, url string) (int64, error)
}

type UploadHandler struct {
	cloud    cloudinary.Client
	products ProductImageStore
}

func NewUploadHandler(cloud cloudinary.Client, products ProductImageStore) *UploadHandler {
	return &UploadHandler{cloud: cloud, products: products}
}

// UploadProductImage stores a product image on Cloudinary and stamps its URL
// onto the product document.
func (h *UploadHandler) UploadProductImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads not configured"})
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	url, err := h.cloud.UploadImage(c.Request.Context(), f, "shopline/products", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	matched, err := h.products.SetImageURL(c.Request.Context(), id, url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url, "matchedCount": matched})
}
