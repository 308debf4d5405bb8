package v1

import (
	"net/http"
	"time"

	"go-hr-backend/config"
	"go-hr-backend/internal/delivery/http/middleware"
	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/usecase"
	"go-hr-backend/pkg/auth"
	"go-hr-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC  domain.CandidateUsecase
	VacancyUC    domain.VacancyUsecase
	AssignmentUC domain.AssignmentUsecase
	StatisticsUC domain.StatisticsUsecase
	ReportUC     domain.ReportUsecase
	HealthUC     usecase.HealthUsecase
	Config       *config.Config

	// Optional; verifies RS256 tokens from an external identity provider
	JWKSProvider *auth.Provider

	// Optional; nil skips the /metrics endpoint and request metrics
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer

	// Optional; nil keeps rate limit counters in process
	Redis goredis.Scripter
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	r.Use(middleware.NewRateLimiter(deps.Redis, middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)).Middleware())
	r.Use(middleware.ErrorHandler())

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, ok := deps.HealthUC.Check(c.Request.Context())
		if !ok {
			response.Error(c, http.StatusServiceUnavailable, "Document store unreachable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	uploadCfg := middleware.UploadRateLimitConfig(window)
	uploadCfg.KeyFunc = func(c *gin.Context) string {
		if userID := c.GetString(string(domain.KeyUserID)); userID != "" {
			return userID
		}
		return c.ClientIP()
	}
	uploadLimit := middleware.NewRateLimiter(deps.Redis, uploadCfg).Middleware()

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret, deps.JWKSProvider))
	{
		NewCandidateHandler(protected, deps.CandidateUC, uploadLimit)
		NewVacancyHandler(protected, deps.VacancyUC)
		NewAssignmentHandler(protected, deps.AssignmentUC)
		NewStatisticsHandler(protected, deps.StatisticsUC, deps.ReportUC)
	}

	return r
}
