package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/builder"
	"resume-builder/internal/drafts"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const exportRateGroup = "EXPORT"

// RouterDeps carries the handlers mounted under /api.
type RouterDeps struct {
	Config  config.Config
	Health  *health.Service
	Builder *builder.Handler
	Drafts  *drafts.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				exportRateGroup: {Rate: cfg.ExportRatePerSec, Burst: cfg.ExportBurst},
			},
			GroupFor: middleware.RouteGroups(map[string]string{
				"POST /api/export":            exportRateGroup,
				"POST /api/drafts/:id/export": exportRateGroup,
			}),
		}),
	)

	r.GET("/metrics", metrics.Handler())

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil, cfg.ObjectStoreType)
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		status, ok := healthSvc.Status(c.Request.Context())
		code := http.StatusOK
		if !ok {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	if deps.Builder != nil {
		deps.Builder.RegisterRoutes(api)
		deps.Builder.RegisterPage(r, api.BasePath())
	}
	if deps.Drafts != nil {
		deps.Drafts.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
