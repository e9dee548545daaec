package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/recipes"
	"recipe-backend/internal/services/health"
	"recipe-backend/internal/shared/config"
	"recipe-backend/internal/shared/metrics"
	"recipe-backend/internal/shared/server/middleware"
	"recipe-backend/internal/shared/server/respond"
)

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config        config.Config
	RecipeHandler *recipes.Handler
	Health        *health.Service
	Limiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		metrics.Middleware(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig(deps)),
	)

	r.GET("/health", healthHandler(deps.Health))
	r.GET("/metrics", metrics.Handler())

	if deps.RecipeHandler != nil {
		deps.RecipeHandler.RegisterRoutes(&r.RouterGroup)
		deps.RecipeHandler.RegisterRoutes(r.Group("/api"))
	}

	return r
}

func rateLimitConfig(deps RouterDeps) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if deps.Config.WriteRateRPS > 0 {
		rules["WRITE"] = middleware.RateLimitRule{
			Rate:  deps.Config.WriteRateRPS,
			Burst: deps.Config.WriteRateBurst,
		}
	}
	return middleware.RateLimitConfig{
		Rules:    rules,
		GroupFor: middleware.WriteGroup,
		Limiter:  deps.Limiter,
	}
}

func healthHandler(svc *health.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := svc.Status(c.Request.Context())
		if !ok {
			respond.JSON(c, http.StatusServiceUnavailable, body)
			return
		}
		respond.OK(c, body)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
