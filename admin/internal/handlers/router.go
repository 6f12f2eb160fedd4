package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/auth"
	"kartikay_signage/internal/store"
)

// Authenticator is the slice of the OAuth flow the handlers need; tests
// stub it out.
type Authenticator interface {
	LoginURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.Profile, error)
}

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// NewRouter wires every back-office route to its handler. Everything except
// sign-in requires a valid admin token, and mutating routes additionally
// require the matching access scope.
func NewRouter(
	admins *store.AdminStore,
	products *store.ProductStore,
	signs *store.SignStore,
	tokens *auth.Manager,
	sessions *auth.SessionManager,
	google Authenticator,
	uploader Uploader,
) *gin.Engine {
	r := gin.Default()

	authHandler := &AuthHandler{google: google, tokens: tokens, sessions: sessions, admins: admins}
	adminHandler := &AdminHandler{admins: admins}
	signHandler := &SignHandler{products: products, signs: signs}
	catalogHandler := &CatalogHandler{products: products, signs: signs}
	uploadHandler := &UploadHandler{uploader: uploader}

	api := r.Group("/api")

	// --- PUBLIC ROUTES (sign-in only) ---
	api.GET("/auth/login", authHandler.Login)
	api.GET("/auth/callback", authHandler.Callback)
	api.POST("/auth/refresh", authHandler.Refresh)

	// --- PROTECTED ROUTES ---
	protected := api.Group("", auth.RequireAuth(tokens))

	users := protected.Group("/admins", auth.RequireScope(store.AccessUserManagement))
	users.POST("", adminHandler.Create)
	users.GET("", adminHandler.List)
	users.PUT("", adminHandler.Update)
	// Removing admins is reserved for super admins even when the caller
	// holds the user-management scope.
	users.DELETE("", auth.RequireRole(store.RoleSuperAdmin), adminHandler.Delete)

	protected.GET("/products", auth.RequireScope(store.AccessDashboard), catalogHandler.List)

	catalog := protected.Group("", auth.RequireScope(store.AccessProductUpload))
	catalog.POST("/neon-signs", signHandler.Create)
	catalog.PUT("/neon-signs/:id", signHandler.Update)
	catalog.PATCH("/neon-signs/:id", signHandler.SetActive)
	catalog.POST("/upload", uploadHandler.Upload)

	return r
}
