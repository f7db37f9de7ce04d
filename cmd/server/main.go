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

	"chatbot-backend/internal/ai"
	"chatbot-backend/internal/api"
	"chatbot-backend/internal/config"
	"chatbot-backend/internal/db"
	"chatbot-backend/internal/handlers"
	"chatbot-backend/internal/services"
	"chatbot-backend/internal/store"
	"chatbot-backend/internal/store/memory"
	"chatbot-backend/internal/store/postgres"
)

func main() {
	log.Println("Starting Chatbot Backend...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Initialize Store (Postgres, or in-memory fallback for local dev)
	var msgStore store.Store
	if cfg.DatabaseURL != "" {
		dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second) // Timeout for initial connection
		defer dbCancel()

		dbpool, err := db.NewPool(dbCtx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("FATAL: Unable to create database connection pool: %v\n", err)
		}
		defer dbpool.Close() // Ensure pool is closed on exit
		log.Println("Database connection pool established and pinged successfully.")

		if err := db.Migrate(dbCtx, dbpool); err != nil {
			log.Fatalf("FATAL: Failed to run database migrations: %v", err)
		}

		msgStore = postgres.NewPostgresStore(dbpool)
		log.Println("Postgres store initialized.")
	} else {
		msgStore = memory.NewStore()
		log.Println("WARN: DATABASE_URL not set, using in-memory store. Messages are lost on restart.")
	}

	// 3. Initialize Responder (Gemini, or canned fallback for local dev)
	var responder services.Responder
	if cfg.GeminiAPIKey != "" {
		geminiCtx, geminiCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer geminiCancel()

		geminiClient, err := ai.NewClient(geminiCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("FATAL: Failed to create Gemini client: %v", err)
		}
		responder = geminiClient
		log.Printf("Gemini client initialized (model=%s).", cfg.GeminiModel)
	} else {
		responder = ai.NewMockResponder()
		log.Println("WARN: GEMINI_API_KEY not set, using canned bot responses.")
	}

	// 4. Initialize Services and Handlers
	chatService := services.NewChatService(msgStore, responder)
	log.Println("ChatService initialized.")

	chatHandler := handlers.NewChatHandlers(chatService)
	log.Println("ChatHandler initialized.")

	// 5. Setup Router & Inject Dependencies
	routerDeps := api.RouterDependencies{
		ChatHandler: chatHandler,
		Config:      cfg,
	}
	router := api.NewRouter(routerDeps)
	log.Println("HTTP router configured.")

	// 6. Configure and Start HTTP Server
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
		// Production hardening: Set timeouts to avoid Slowloris attacks
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Channel to listen for OS signals for graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	// Run server in a goroutine so it doesn't block
	go func() {
		log.Printf("Server starting and listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: Could not listen on %s: %v\n", cfg.HTTPPort, err)
		}
		log.Println("Server listener routine stopped.")
	}()

	// Wait for interrupt signal
	<-stopChan
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	// Create a deadline context for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: Server graceful shutdown failed: %v", err)
	}

	log.Println("Server shutdown complete.")
}
