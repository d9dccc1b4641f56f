// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/gramcare/sahayak/internal/config"
	"github.com/gramcare/sahayak/internal/domain"
	"github.com/gramcare/sahayak/internal/handlers"
	"github.com/gramcare/sahayak/internal/middleware"
	"github.com/gramcare/sahayak/internal/ratelimit"
	"github.com/gramcare/sahayak/internal/repository/message"
	"github.com/gramcare/sahayak/internal/repository/user"
	"github.com/gramcare/sahayak/internal/services"
	"github.com/gramcare/sahayak/internal/services/ai"
	"github.com/gramcare/sahayak/internal/services/chat"
	"github.com/gramcare/sahayak/internal/services/directory"
	"github.com/gramcare/sahayak/internal/services/user_services"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("sahayak")

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.ChatMessage{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	userRepo := user.NewGormUserRepository(db)
	messageRepo := message.NewMessageRepository(db)

	// --- Services ---
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.LLMAPIKey
	aiConfig.BaseURL = cfg.LLMBaseURL
	aiConfig.Model = cfg.LLMModel
	aiConfig.MaxTokens = cfg.LLMMaxTokens

	provider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
	}

	authService := user_services.NewAuthService(userRepo, cfg.JWTSecretKey, logger)

	chatService, err := chat.NewService(chat.DefaultConfig(), messageRepo, provider, directory.NewService(), logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Service: %v", err)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, logger)
	chatHandler := handlers.NewChatHandler(chatService, logger)

	// --- Rate Limiters ---
	chatLimiter := ratelimit.New(ratelimit.DefaultChatConfig())
	defer chatLimiter.Close()
	authLimiter := ratelimit.New(ratelimit.DefaultAuthConfig())
	defer authLimiter.Close()

	// --- Router Setup ---
	r := mux.NewRouter()
	identityMiddleware := middleware.NewIdentityMiddleware(authService)

	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	auth := r.PathPrefix("/auth").Subrouter()
	auth.Use(middleware.RateLimitMiddleware(authLimiter, "auth"))
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")

	// --- Chat Routes (identity is advisory, never required) ---
	api := r.PathPrefix("/api/chat").Subrouter()
	api.Use(identityMiddleware)
	api.Use(middleware.RateLimitMiddleware(chatLimiter, "chat"))
	api.HandleFunc("", chatHandler.HandleChat).Methods("POST")
	api.HandleFunc("/stream", chatHandler.HandleChatStream).Methods("POST")
	api.HandleFunc("/history/{sessionId}", chatHandler.HandleChatHistory).Methods("GET")

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Sahayak - Telemedicine Chat Assistant")
	log.Printf("Server starting on port %s", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped.")
}
