package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kartikay_signage/internal/mq"
	"kartikay_signage/pricing"
)

// QuoteHandler prices sign customizer input. It must never fail on bad
// numeric input: the form calls it on every keystroke.
type QuoteHandler struct {
	rate      float64
	analytics *mq.AnalyticsPublisher
}

// quoteRequest carries the raw form state. The dimension fields arrive as
// strings because that is what half-typed inputs look like.
type quoteRequest struct {
	Text         string `json:"text"`
	Size         string `json:"size"`
	CustomWidth  string `json:"custom_width"`
	CustomHeight string `json:"custom_height"`
}

// Quote derives billable dimensions and an area price for the requested
// sign. URL: POST /api/signs/quote
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON"})
		return
	}

	size := pricing.SizeTier(req.Size)
	dims := pricing.FinalDimensions(
		req.Text, size,
		parseDimension(req.CustomWidth),
		parseDimension(req.CustomHeight),
	)
	price := pricing.AreaPrice(dims.Width, dims.Height, h.rate)
	letters := pricing.LetterCount(req.Text)

	quoteID := uuid.New().String()
	if err := h.analytics.PublishQuote(mq.QuoteEvent{
		QuoteID: quoteID,
		Tier:    req.Size,
		Letters: letters,
		Width:   dims.Width,
		Height:  dims.Height,
		Price:   price,
	}); err != nil {
		log.Printf("[quote] analytics publish failed quote=%s: %v", quoteID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"quote_id":             quoteID,
		"letter_count":         letters,
		"width":                dims.Width,
		"height":               dims.Height,
		"area":                 dims.Width * dims.Height,
		"rate_per_square_inch": h.rate,
		"price":                price,
	})
}

// Limits reports the per-tier letter caps the input fields enforce.
// URL: GET /api/signs/limits
func (h *QuoteHandler) Limits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regular": pricing.MaxLetters(pricing.SizeRegular),
		"medium":  pricing.MaxLetters(pricing.SizeMedium),
		"large":   pricing.MaxLetters(pricing.SizeLarge),
	})
}

// parseDimension converts raw form input to a number at the boundary, so
// the pricing core only ever sees parsed values. Anything unparsable or
// negative degrades to 0, the "unset" state.
func parseDimension(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
