package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/migrations"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Backend for a recruitment job board using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Run Migrations (uses a separate database/sql connection)
	migrateDB, err := database.NewSQLConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to open migration connection", "error", err)
		os.Exit(1)
	}
	if err := migrations.Run(migrateDB); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	migrateDB.Close()

	// 5. Setup Redis (optional, rate limiting falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
		}
		defer redis.Close()
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	invitationRepo := postgres.NewInvitationRepository(dbPool)
	pipelineRepo := postgres.NewPipelineRepository(dbPool)

	// 7. Setup Token Manager and Validator
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	validate := validator.New()
	validation.RegisterValidators(validate)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	companyUC := usecase.NewCompanyUsecase(companyRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	invitationUC := usecase.NewInvitationUsecase(invitationRepo, jobRepo, userRepo)
	pipelineUC := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, userRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		JobUC:         jobUC,
		CandidateUC:   candidateUC,
		ApplicationUC: applicationUC,
		InvitationUC:  invitationUC,
		PipelineUC:    pipelineUC,
		TokenManager:  tokens,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
