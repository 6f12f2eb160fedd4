package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/auth"
	"kartikay_signage/internal/cache"
	"kartikay_signage/internal/mq"
	"kartikay_signage/internal/store"
)

// Authenticator is the slice of the OAuth flow the handlers need; tests
// stub it out.
type Authenticator interface {
	LoginURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.Profile, error)
}

// NewRouter wires every storefront route to its handler.
func NewRouter(
	products *store.ProductStore,
	signs *store.SignStore,
	reviews *store.ReviewStore,
	customers *store.CustomerStore,
	tokens *auth.Manager,
	sessions *auth.SessionManager,
	google Authenticator,
	productCache *cache.ProductCache,
	analytics *mq.AnalyticsPublisher,
	ratePerSquareInch float64,
) *gin.Engine {
	r := gin.Default()

	catalogHandler := &CatalogHandler{products: products, signs: signs, cache: productCache}
	quoteHandler := &QuoteHandler{rate: ratePerSquareInch, analytics: analytics}
	reviewHandler := &ReviewHandler{reviews: reviews, products: products}
	authHandler := &AuthHandler{google: google, tokens: tokens, sessions: sessions, customers: customers}

	api := r.Group("/api")

	// --- PUBLIC ROUTES ---
	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)
	api.GET("/products/:id/reviews", reviewHandler.List)
	api.POST("/signs/quote", quoteHandler.Quote)
	api.GET("/signs/limits", quoteHandler.Limits)

	api.GET("/auth/login", authHandler.Login)
	api.GET("/auth/callback", authHandler.Callback)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// --- PROTECTED ROUTES (require sign-in) ---
	api.POST("/products/:id/reviews", auth.RequireAuth(tokens), reviewHandler.Create)

	return r
}
