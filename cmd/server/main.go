package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Brownie44l1/quickloan/internal/config"
	"github.com/Brownie44l1/quickloan/internal/db"
	"github.com/Brownie44l1/quickloan/internal/handlers"
	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/Brownie44l1/quickloan/internal/repository"
	"github.com/Brownie44l1/quickloan/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("✓ Configuration loaded")

	// 2. Pick store backend: Postgres when DB_URL is set, in-memory otherwise
	var (
		challenges   service.ChallengeStore
		applicants   service.ApplicantStore
		sessions     service.SessionStore
		applications service.ApplicationStore
	)

	if cfg.DBUrl != "" {
		if err := db.RunMigrations(cfg.DBUrl); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}

		pool, err := db.NewPool(context.Background(), cfg.DBUrl)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer pool.Close()

		challenges = repository.NewChallengeRepository(pool)
		applicants = repository.NewApplicantRepository(pool)
		sessions = repository.NewSessionRepository(pool)
		applications = repository.NewApplicationRepository(pool)
	} else {
		log.Println("No DB_URL set, using in-memory stores")
		challenges = repository.NewMemoryChallengeStore()
		applicants = repository.NewMemoryApplicantStore()
		sessions = repository.NewMemorySessionStore()
		applications = repository.NewMemoryApplicationStore()
	}

	// 3. Initialize layers
	staticOTP := cfg.OTPStaticCode
	if cfg.DBUrl == "" && staticOTP == "" {
		// demo deployment: no database, no SMS channel, well-known code
		staticOTP = models.DefaultStaticOTP
	}

	smsService := service.NewSMSService()
	authService := service.NewAuthService(challenges, applicants, sessions, smsService, staticOTP)
	loanService := service.NewLoanService(applications)

	authHandler := handlers.NewAuthHandler(authService)
	applicationHandler := handlers.NewApplicationHandler(loanService)
	healthHandler := handlers.NewHealthHandler()

	// 4. Setup Gin router
	router := gin.Default()
	healthHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)
	applicationHandler.RegisterRoutes(router, authService)

	// 5. Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✓ Server exited")
}
