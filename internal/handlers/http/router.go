package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/ecoleta/docs" // documento OpenAPI registrado no swag
	"github.com/rafabene/ecoleta/internal/domain/ports"
	"github.com/rafabene/ecoleta/internal/handlers/dto"
	"github.com/rafabene/ecoleta/internal/handlers/middleware"
	"github.com/rafabene/ecoleta/internal/infrastructure/config"
	"github.com/rafabene/ecoleta/internal/infrastructure/i18n"
	"github.com/rafabene/ecoleta/internal/infrastructure/metrics"
)

// RouterDeps reúne o que o roteador precisa
type RouterDeps struct {
	Config  *config.Config
	Logger  ports.Logger
	I18n    *i18n.Service
	Metrics *metrics.Metrics
	Items   *ItemHandler
	Points  *PointHandler
	Health  *HealthHandler
}

// NewRouter monta o engine do Gin com middlewares e rotas
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	cfg := deps.Config

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware global para adicionar base URL ao contexto
	router.Use(middleware.BaseURL(cfg.Server.BaseURL))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	// Middleware i18n
	router.Use(middleware.I18n(deps.I18n))

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Operacionais
	router.GET("/health", deps.Health.Health)
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Ícones dos itens e fotos dos pontos
	router.Static("/uploads", cfg.Storage.UploadsDir)

	// Items
	router.GET("/items", deps.Items.ListItems)

	// Points
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	rateLimited := limiter.Middleware(func(c *gin.Context) {
		dto.AbortWithProblem(c, dto.RateLimitedErrorResponseI18n(c))
	})

	points := router.Group("/points")
	{
		points.GET("", deps.Points.ListPoints)
		points.GET("/:id", deps.Points.GetPoint)
		points.POST("", rateLimited, deps.Points.CreatePoint)
	}

	return router, nil
}
