package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/store"
)

// CatalogHandler serves the dashboard product table. No cache here, admins
// need to see their own edits immediately.
type CatalogHandler struct {
	products *store.ProductStore
	signs    *store.SignStore
}

// List returns every product with its sign configs and usage counts.
// URL: GET /api/products
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context(), "")
	if err != nil {
		log.Printf("[catalog] failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching products"})
		return
	}
	if err := h.products.AttachSigns(c.Request.Context(), h.signs, products); err != nil {
		log.Printf("[catalog] failed to attach sign configs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}
