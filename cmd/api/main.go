package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hr-backend/config"
	_ "go-hr-backend/docs" // Important for Swagger
	v1 "go-hr-backend/internal/delivery/http/v1"
	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/repository/docstore"
	"go-hr-backend/internal/repository/document"
	"go-hr-backend/internal/repository/mongodb"
	"go-hr-backend/internal/repository/postgres"
	"go-hr-backend/internal/usecase"
	"go-hr-backend/pkg/audit"
	"go-hr-backend/pkg/auth"
	"go-hr-backend/pkg/database"
	"go-hr-backend/pkg/logger"
	"go-hr-backend/pkg/metrics"
	hrredis "go-hr-backend/pkg/redis"
	"go-hr-backend/pkg/storage"
	"go-hr-backend/pkg/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
)

// @title           HR Backend API
// @version         1.0
// @description     Candidates, vacancies, assignments and live vacancy statistics over a document store.
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
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting HR backend", "port", cfg.Port, "store", cfg.StoreDriver)

	ctx := context.Background()

	// 3. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// 4. Setup Document Store
	rawStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to open document store", "error", err)
		os.Exit(1)
	}
	store := docstore.Instrument(rawStore, collector)

	// 5. Optional Redis for shared rate limit counters
	var scripter goredis.Scripter
	redisClient, err := hrredis.NewClient(ctx, hrredis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	switch {
	case err == nil:
		scripter = redisClient
		defer redisClient.Close()
	case cfg.UpstashRedisURL != "":
		logger.Log.Warn("Redis unavailable, rate limiting per process", "error", err)
	}

	// 6. Optional object storage for shared reports and profile images
	var files domain.FileStorage
	if cfg.StorageConfigured() {
		s3Storage, err := storage.NewS3Storage(ctx, storage.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Warn("Object storage unavailable - report sharing and image upload disabled", "error", err)
		} else {
			if err := s3Storage.Ping(ctx); err != nil {
				logger.Log.Warn("Object storage bucket not reachable", "bucket", cfg.S3Bucket, "error", err)
			}
			files = s3Storage
		}
	} else {
		logger.Log.Warn("Object storage not configured - report sharing and image upload disabled")
	}

	// 7. Setup Repositories
	candidateRepo := document.NewCandidateRepository(store)
	vacancyRepo := document.NewVacancyRepository(store)
	assignmentRecordRepo := document.NewAssignmentRecordRepository(store)

	// 8. Setup UseCases
	auditLog := audit.New("hr-backend")
	defer auditLog.Sync()

	validate := validation.Validator()
	buckets := domain.StatusBuckets{
		Available:   cfg.StatsAvailableStatus,
		Unavailable: cfg.StatsUnavailableStatus,
	}
	shareTTL := time.Duration(cfg.ShareURLTTLMinutes) * time.Minute

	candidateUC := usecase.NewCandidateUsecase(candidateRepo, files, validate, auditLog)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, candidateRepo, validate, auditLog)
	assignmentUC := usecase.NewAssignmentUsecase(candidateRepo, vacancyRepo, auditLog)
	statisticsUC := usecase.NewStatisticsUsecase(vacancyRepo, candidateRepo, assignmentRecordRepo, buckets)
	reportUC := usecase.NewReportUsecase(statisticsUC, files, shareTTL, auditLog)
	healthUC := usecase.NewHealthUsecase(store)

	// 9. Setup Auth Provider (JWKS)
	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL)
	}
	if cfg.JWTSecret == "" && jwksProvider == nil {
		logger.Log.Warn("JWT_SECRET and JWKS_URL unset - API is unauthenticated")
	}

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC:  candidateUC,
		VacancyUC:    vacancyUC,
		AssignmentUC: assignmentUC,
		StatisticsUC: statisticsUC,
		ReportUC:     reportUC,
		HealthUC:     healthUC,
		Config:       cfg,
		JWKSProvider: jwksProvider,
		Metrics:      collector,
		Gatherer:     registry,
		Redis:        scripter,
	})

	// 11. Start Server
	// Event streams only end when their request context is cancelled
	baseCtx, stopStreams := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(stopStreams)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	if err := store.Close(shutdownCtx); err != nil {
		logger.Log.Error("Failed to close document store", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func openStore(ctx context.Context, cfg *config.Config) (docstore.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Log.Warn("Using in-memory document store; data is lost on restart")
		return docstore.NewMemoryStore(), nil

	case "postgres":
		if err := postgres.RunMigrations(cfg.DBUrl); err != nil {
			return nil, err
		}
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(pool), nil

	default:
		client, err := database.NewMongoConnection(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := mongodb.NewStore(client, cfg.MongoDB)
		if err := mongodb.EnsureIndexes(ctx, store); err != nil {
			_ = store.Close(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return store, nil
	}
}
