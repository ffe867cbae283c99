package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopline/config"
	"shopline/internal/auth"
	"shopline/internal/database"
	"shopline/internal/router"
	"shopline/pkg/cloudinary"
	"shopline/pkg/payment"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase.ServiceAccount)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	provider := payment.NewStripeProvider(cfg.Stripe.SecretKey, cfg.Stripe.SiteURL)

	cloud, err := cloudinary.NewClient(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		log.Fatalf("cloudinary: %v", err)
	}
	if cloud == nil {
		log.Printf("image uploads disabled: set CLOUDINARY_CLOUD_NAME to enable")
	}

	engine := router.Setup(cfg, db.DB, verifier, provider, cloud)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Printf("mongo close: %v", err)
	}
	log.Println("server stopped")
}
