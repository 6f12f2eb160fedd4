package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/store"
	"kartikay_signage/pricing"
)

// Example sign the pricing preview is quoted for: 24" x 16" (2' x 1.33').
const (
	previewWidth  = 24.0
	previewHeight = 16.0
)

// SignHandler manages neon-sign catalog entries. The form collects the
// minimum size in feet; rows store inches.
type SignHandler struct {
	products *store.ProductStore
	signs    *store.SignStore
}

// signRequest carries the admin form state. Field names match the form
// payload; numeric fields arrive as strings.
type signRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	ImageURL      string `json:"imageUrl"`
	MinWidthFeet  string `json:"minWidthFeet" binding:"required"`
	MinHeightFeet string `json:"minHeightFeet" binding:"required"`
	BasePrice     string `json:"basePrice" binding:"required"`
	DiscountType  string `json:"discountType"`
	DiscountValue string `json:"discountValue"`
}

// toSign validates and converts the form payload into a sign row.
func (req *signRequest) toSign() (store.NeonSign, string, bool) {
	discountType := pricing.DiscountType(req.DiscountType)
	switch discountType {
	case pricing.DiscountNone, pricing.DiscountPercentage, pricing.DiscountFixed:
	default:
		return store.NeonSign{}, "Invalid discount type", false
	}

	minWidth := parseNumber(req.MinWidthFeet) * 12
	minHeight := parseNumber(req.MinHeightFeet) * 12
	basePrice := parseNumber(req.BasePrice)
	if minWidth == 0 || minHeight == 0 || basePrice == 0 {
		return store.NeonSign{}, "Minimum size and base price are required", false
	}

	signType := req.Type
	if signType == "" {
		signType = "DEFAULT"
	}

	return store.NeonSign{
		MinWidth:      minWidth,
		MinHeight:     minHeight,
		BasePrice:     basePrice,
		DiscountType:  discountType,
		DiscountValue: parseNumber(req.DiscountValue),
		SignType:      signType,
		ImageURL:      req.ImageURL,
	}, "", true
}

// previewPrice quotes the example sign with the configured discount, the
// same math the storefront uses for real sizes.
func previewPrice(sign store.NeonSign) float64 {
	gross := pricing.ProportionalPrice(sign.MinWidth, sign.MinHeight, sign.BasePrice, previewWidth, previewHeight)
	return pricing.ApplyDiscount(gross, sign.DiscountType, sign.DiscountValue)
}

// Create adds a neon-sign product and its pricing configuration.
// URL: POST /api/neon-signs
func (h *SignHandler) Create(c *gin.Context) {
	var req signRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON"})
		return
	}

	sign, msg, ok := req.toSign()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	productID, err := h.products.CreateWithSign(c.Request.Context(), store.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    store.CategoryNeonSign,
	}, sign)
	if err != nil {
		log.Printf("[neon-signs] failed to create %s: %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create neon sign"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"productId":     productID,
		"preview_price": previewPrice(sign),
	})
}

// Update rewrites a neon-sign product and its pricing configuration.
// URL: PUT /api/neon-signs/:id
func (h *SignHandler) Update(c *gin.Context) {
	var req signRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON"})
		return
	}

	sign, msg, ok := req.toSign()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	productID := c.Param("id")
	if err := h.products.UpdateProduct(c.Request.Context(), productID, req.Name, req.Description); err != nil {
		log.Printf("[neon-signs] failed to update product %s: %v", productID, err)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Failed to update neon sign"})
		return
	}
	if err := h.signs.UpdateByProduct(c.Request.Context(), productID, sign); err != nil {
		log.Printf("[neon-signs] failed to update config for %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update neon sign"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"preview_price": previewPrice(sign),
	})
}

// SetActive toggles visibility of the product and its sign config together.
// URL: PATCH /api/neon-signs/:id
func (h *SignHandler) SetActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON"})
		return
	}

	productID := c.Param("id")
	if err := h.products.SetActive(c.Request.Context(), productID, *req.IsActive); err != nil {
		log.Printf("[neon-signs] failed to update status for %s: %v", productID, err)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Failed to update neon sign status"})
		return
	}
	if err := h.signs.SetActiveByProduct(c.Request.Context(), productID, *req.IsActive); err != nil {
		log.Printf("[neon-signs] failed to update config status for %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update neon sign status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseNumber converts raw form input to a number; unparsable or negative
// input degrades to 0, which validation then treats as missing.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
