package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/auth"
	"kartikay_signage/internal/store"
)

type ReviewHandler struct {
	reviews  *store.ReviewStore
	products *store.ProductStore
}

// List returns a product's reviews.
// URL: GET /api/products/:id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviews.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[reviews] failed to list reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// Create saves a review for the signed-in customer.
// URL: POST /api/products/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Rating must be between 1 and 5"})
		return
	}

	productID := c.Param("id")
	product, err := h.products.GetProduct(c.Request.Context(), productID)
	if err != nil {
		log.Printf("[reviews] failed to check product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create review"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), store.Review{
		ProductID:  productID,
		CustomerID: auth.SubjectID(c),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		log.Printf("[reviews] failed to create review for product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "review": review})
}
