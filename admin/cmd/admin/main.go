package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"kartikay_signage/admin/internal/handlers"
	"kartikay_signage/internal/auth"
	"kartikay_signage/internal/config"
	"kartikay_signage/internal/storage"
	"kartikay_signage/internal/store"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// ---------------------------------------------------------
	// 1. CONFIGURATION
	// ---------------------------------------------------------
	if err := godotenv.Load("admin/.env"); err != nil {
		log.Println("Note: No admin/.env file found (or failed to load)")
	}

	cfg, err := config.LoadAdmin()
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
	// 3. OBJECT STORAGE
	// ---------------------------------------------------------
	uploader, err := storage.NewUploader(context.Background(), cfg.S3)
	if err != nil {
		log.Fatalf("❌ Failed to init S3 uploader: %v", err)
	}
	fmt.Printf("✅ Uploads go to bucket %s (%s)\n", cfg.S3.Bucket, cfg.S3.Region)

	// ---------------------------------------------------------
	// 4. INITIALIZE STORES + AUTH
	// ---------------------------------------------------------
	adminStore := store.NewAdminStore(db)
	productStore := store.NewProductStore(db)
	signStore := store.NewSignStore(db)
	sessionStore := store.NewSessionStore(db)

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
		adminStore, productStore, signStore,
		tokens, sessions, google, uploader,
	)

	fmt.Printf("🚀 Admin panel running on http://localhost:%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server crashed: %v", err)
	}
}
