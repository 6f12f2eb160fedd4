package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"kartikay_signage/internal/auth"
	"kartikay_signage/internal/cache"
	"kartikay_signage/internal/config"
	"kartikay_signage/internal/mq"
	"kartikay_signage/internal/store"
	"kartikay_signage/storefront/internal/handlers"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// ---------------------------------------------------------
	// 1. CONFIGURATION
	// ---------------------------------------------------------
	if err := godotenv.Load("storefront/.env"); err != nil {
		log.Println("Note: No storefront/.env file found (or failed to load)")
	}

	cfg, err := config.LoadStorefront()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// ---------------------------------------------------------
	// 2. DATABASE CONNECTION
	// ---------------------------------------------------------
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to open DB driver: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("❌ Failed to ping Database: %v", err)
	}
	fmt.Println("✅ Connected to Signage Database")

	// ---------------------------------------------------------
	// 3. CACHE + ANALYTICS
	// ---------------------------------------------------------
	productCache := cache.NewProductCache(cfg.Redis)
	if err := productCache.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Failed to ping Redis: %v", err)
	}
	fmt.Println("✅ Connected to Redis Cache")

	var analytics *mq.AnalyticsPublisher
	if cfg.AnalyticsBind != "" {
		analytics, err = mq.NewAnalyticsPublisher(cfg.AnalyticsBind)
		if err != nil {
			log.Fatalf("❌ Failed to bind analytics publisher: %v", err)
		}
		defer analytics.Close()
		fmt.Printf("✅ Quote analytics publishing on %s\n", cfg.AnalyticsBind)
	}

	// ---------------------------------------------------------
	// 4. INITIALIZE STORES + AUTH
	// ---------------------------------------------------------
	productStore := store.NewProductStore(db)
	signStore := store.NewSignStore(db)
	reviewStore := store.NewReviewStore(db)
	customerStore := store.NewCustomerStore(db)
	sessionStore := store.NewSessionStore(db)

	go func() {
		for {
			if n, err := sessionStore.DeleteExpired(context.Background()); err != nil {
				log.Printf("[sessions] cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("[sessions] removed %d expired sessions", n)
			}
			time.Sleep(time.Hour)
		}
	}()

	tokens, err := auth.NewManager(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("❌ Failed to init token manager: %v", err)
	}
	sessions := auth.NewSessionManager(sessionStore)
	google := auth.NewGoogleAuthenticator(cfg.OAuth)

	// ---------------------------------------------------------
	// 5. SETUP ROUTER + START SERVER
	// ---------------------------------------------------------
	router := handlers.NewRouter(
		productStore, signStore, reviewStore, customerStore,
		tokens, sessions, google,
		productCache, analytics,
		cfg.RatePerSquareInch,
	)

	fmt.Printf("🚀 Storefront running on http://localhost:%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server crashed: %v", err)
	}
}
