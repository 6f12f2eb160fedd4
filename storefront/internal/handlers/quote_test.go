package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteRouter(t *testing.T, rate float64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := &QuoteHandler{rate: rate}
	r := gin.New()
	r.POST("/api/signs/quote", h.Quote)
	r.GET("/api/signs/limits", h.Limits)
	return r
}

func postQuote(t *testing.T, r *gin.Engine, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/signs/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestQuoteRegularText(t *testing.T) {
	r := newQuoteRouter(t, 7)

	code, resp := postQuote(t, r, `{"text":"HELLO","size":"regular"}`)
	require.Equal(t, http.StatusOK, code)

	assert.EqualValues(t, 5, resp["letter_count"])
	assert.EqualValues(t, 15, resp["width"])
	assert.EqualValues(t, 10, resp["height"])
	assert.EqualValues(t, 150, resp["area"])
	assert.EqualValues(t, 1050, resp["price"])
	assert.NotEmpty(t, resp["quote_id"])
}

func TestQuoteMediumCountsSpaces(t *testing.T) {
	r := newQuoteRouter(t, 7)

	code, resp := postQuote(t, r, `{"text":"HELLO WORLD","size":"medium"}`)
	require.Equal(t, http.StatusOK, code)

	assert.EqualValues(t, 10, resp["letter_count"])
	assert.EqualValues(t, 40, resp["width"])
	assert.EqualValues(t, 13, resp["height"])
}

func TestQuoteLargeTextCapsWidth(t *testing.T) {
	r := newQuoteRouter(t, 7)

	text := strings.Repeat("A", 40)
	code, resp := postQuote(t, r, `{"text":"`+text+`","size":"large"}`)
	require.Equal(t, http.StatusOK, code)

	assert.EqualValues(t, 96, resp["width"])
	assert.EqualValues(t, 15, resp["height"])
}

func TestQuoteCustomClampsToRange(t *testing.T) {
	r := newQuoteRouter(t, 7)

	code, resp := postQuote(t, r, `{"size":"custom","custom_width":"5","custom_height":"100"}`)
	require.Equal(t, http.StatusOK, code)

	assert.EqualValues(t, 10, resp["width"])
	assert.EqualValues(t, 48, resp["height"])
}

func TestQuoteCustomZeroPassesThrough(t *testing.T) {
	r := newQuoteRouter(t, 7)

	code, resp := postQuote(t, r, `{"size":"custom","custom_width":"0","custom_height":"20"}`)
	require.Equal(t, http.StatusOK, code)

	assert.EqualValues(t, 0, resp["width"])
	assert.EqualValues(t, 20, resp["height"])
	assert.EqualValues(t, 0, resp["price"])
}

func TestQuoteGarbageDimensionsDegradeToZero(t *testing.T) {
	r := newQuoteRouter(t, 7)

	code, resp := postQuote(t, r, `{"size":"custom","custom_width":"abc","custom_height":"-4"}`)
	require.Equal(t, http.StatusOK, code)

	assert.EqualValues(t, 0, resp["width"])
	assert.EqualValues(t, 0, resp["height"])
}

func TestQuoteUnknownTierFallsBackToRegular(t *testing.T) {
	r := newQuoteRouter(t, 7)

	code, resp := postQuote(t, r, `{"text":"HELLO","size":"mega"}`)
	require.Equal(t, http.StatusOK, code)

	assert.EqualValues(t, 15, resp["width"])
	assert.EqualValues(t, 10, resp["height"])
}

func TestQuoteUsesConfiguredRate(t *testing.T) {
	r := newQuoteRouter(t, 10)

	code, resp := postQuote(t, r, `{"text":"HELLO","size":"regular"}`)
	require.Equal(t, http.StatusOK, code)

	assert.EqualValues(t, 10, resp["rate_per_square_inch"])
	assert.EqualValues(t, 1500, resp["price"])
}

func TestLimits(t *testing.T) {
	r := newQuoteRouter(t, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/signs/limits", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 32, resp["regular"])
	assert.Equal(t, 24, resp["medium"])
	assert.Equal(t, 19, resp["large"])
}
