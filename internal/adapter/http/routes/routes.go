package routes

import (
	_ "estudio_admin/docs"
	"estudio_admin/internal/adapter/http/handlers"
	"estudio_admin/internal/infrastructure/logging"
	"estudio_admin/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies carries everything the router needs from the composition root.
type Dependencies struct {
	Logger   zerolog.Logger
	Registry *prometheus.Registry

	Contracts       *handlers.ContractHandler
	Investments     *handlers.InvestmentHandler
	DepositPayments *handlers.DepositPaymentHandler
}

// NewRouter builds the gin engine. When Registry is nil the default
// Prometheus registry backs both the HTTP metrics and /metrics.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metricsHandler(deps.Registry))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContractRoutes(v1, deps.Contracts, deps.DepositPayments)
	addInvestmentRoutes(v1, deps.Investments)
	addDepositPaymentRoutes(v1, deps.DepositPayments)

	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	var reg prometheus.Registerer = prometheus.DefaultRegisterer
	if deps.Registry != nil {
		reg = deps.Registry
	}

	router.Use(logging.GinMiddleware(deps.Logger))
	router.Use(metrics.NewHTTPMetrics(reg).Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Str("component", "http").Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func metricsHandler(reg *prometheus.Registry) gin.HandlerFunc {
	if reg == nil {
		return gin.WrapH(promhttp.Handler())
	}
	return gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
}
