package v1

import (
	"net/http"

	"ritter-digital-backend/config"
	"ritter-digital-backend/internal/delivery/http/middleware"
	"ritter-digital-backend/internal/delivery/http/response"
	"ritter-digital-backend/internal/domain"
	"ritter-digital-backend/pkg/logger"
	"ritter-digital-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC    domain.ContactUsecase
	NewsletterUC domain.NewsletterUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Field naming and custom validators for the binding layer
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		// Never leak panic details to the client
		logger.Log.Error("panic recovered", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "Ein serverseitiger Fehler ist aufgetreten")
	}))
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	// Public form routes with a tighter per-IP limit
	formLimiter := middleware.RateLimitMiddleware(middleware.FormRateLimitConfig(deps.Config))
	NewContactHandler(api, formLimiter, deps.ContactUC)
	NewNewsletterHandler(api, formLimiter, deps.NewsletterUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
