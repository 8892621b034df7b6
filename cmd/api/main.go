package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/config"
	"github.com/adanilkinca/techcockbar/db"
	_ "github.com/adanilkinca/techcockbar/docs"
	"github.com/adanilkinca/techcockbar/middleware"
	"github.com/adanilkinca/techcockbar/minio"
	"github.com/adanilkinca/techcockbar/routes"
	"github.com/adanilkinca/techcockbar/websocket"
)

// @title TechCockBar API
// @version 1.0
// @description Cocktail menu and recipe management for the bar: public menu with live updates, admin console for recipes, ingredients, pricing and staff.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Apply pending schema migrations
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize media bucket (no-op when MINIO_ENDPOINT is unset)
	minio.InitMinio()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	gin.SetMode(config.GinMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, hub)

	port := ":" + config.ServerPort
	srv := &http.Server{Addr: port, Handler: router}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on %s", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start: %v", err)
	}
}
