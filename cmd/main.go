package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"fitlog/internal/auth"
	"fitlog/internal/config"
	"fitlog/internal/database"
	"fitlog/internal/session"
	"fitlog/internal/web"
	"fitlog/internal/workout"
)

func init() {
	// Load environment variables from .env file.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create a context for initialization.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Initialization error: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from DB: %v", err)
		}
	}()

	workoutsCol := database.Workouts(client, cfg)
	if err := database.EnsureIndexes(ctx, workoutsCol); err != nil {
		log.Fatalf("Index setup error: %v", err)
	}

	tmpl, err := web.LoadTemplates()
	if err != nil {
		log.Fatalf("Template error: %v", err)
	}

	server := web.NewServer(
		auth.NewMongoUserStore(database.Users(client, cfg)),
		workout.NewMongoStore(workoutsCol),
		session.NewManager(cfg.SecretKey),
		tmpl,
	)

	// Wrap the router with recovery and logging middleware.
	handler := handlers.RecoveryHandler()(
		handlers.LoggingHandler(os.Stdout, server.Routes()))

	addr := cfg.Addr()
	srv := &http.Server{
		Handler:      handler,
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine.
	go func() {
		log.Printf("Server running on http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signals for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting gracefully.")
}
