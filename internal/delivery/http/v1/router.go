package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CompanyUC     domain.CompanyUsecase
	JobUC         domain.JobUsecase
	CandidateUC   domain.CandidateUsecase
	ApplicationUC domain.ApplicationUsecase
	InvitationUC  domain.InvitationUsecase
	PipelineUC    domain.PipelineUsecase
	TokenManager  *auth.Manager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints get a stricter, fail-closed limit
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenManager, deps.AuthUC))

	candidates := protected.Group("/candidates")
	candidates.Use(middleware.RequireRole(domain.RoleCandidate))

	recruiters := protected.Group("/recruiters")
	recruiters.Use(middleware.RequireRole(domain.RoleRecruiter))

	NewAuthHandler(public, protected, deps.AuthUC)
	NewJobHandler(v1, recruiters, deps.JobUC)
	NewCompanyHandler(recruiters, deps.CompanyUC)
	NewCandidateHandler(candidates, recruiters, deps.CandidateUC)
	NewApplicationHandler(candidates, recruiters, deps.ApplicationUC)
	NewInvitationHandler(candidates, recruiters, deps.InvitationUC)
	NewPipelineHandler(recruiters, deps.PipelineUC)

	return r
}
