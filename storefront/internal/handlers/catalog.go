package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/cache"
	"kartikay_signage/internal/store"
)

// CatalogHandler serves the public product listing. Listings go through the
// redis cache; the database stays the source of truth.
type CatalogHandler struct {
	products *store.ProductStore
	signs    *store.SignStore
	cache    *cache.ProductCache
}

// List returns all products, optionally filtered by category.
// URL: GET /api/products?category=NEON_SIGN
func (h *CatalogHandler) List(c *gin.Context) {
	category := c.Query("category")
	cacheKey := "products:all"
	if category != "" {
		cacheKey = "products:" + category
	}

	var products []store.Product
	if h.cache.Get(c.Request.Context(), cacheKey, &products) {
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
		return
	}

	products, err := h.products.ListProducts(c.Request.Context(), category)
	if err != nil {
		log.Printf("[catalog] failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
		return
	}
	if err := h.products.AttachSigns(c.Request.Context(), h.signs, products); err != nil {
		log.Printf("[catalog] failed to attach signs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
		return
	}

	h.cache.Set(c.Request.Context(), cacheKey, products)
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// Get returns one product with its sign configurations.
// URL: GET /api/products/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	id := c.Param("id")

	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		log.Printf("[catalog] failed to get product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	byProduct, err := h.signs.ListByProducts(c.Request.Context(), []string{product.ID})
	if err != nil {
		log.Printf("[catalog] failed to load signs for product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
		return
	}
	product.NeonSigns = byProduct[product.ID]

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}
