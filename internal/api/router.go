// Package api wires the HTTP handlers into a gin router.
package api

import (
	"log/slog"
	"net/http"

	"derivatives-case-study/internal/api/handlers"
	"derivatives-case-study/internal/api/middleware"
	"derivatives-case-study/internal/observability"

	"github.com/gin-gonic/gin"
)

type Options struct {
	ContractDir string
	CORSOrigins []string
	Logger      *slog.Logger
	Metrics     *observability.Metrics
}

// NewRouter builds the API router. gin's mode must be set before calling it.
func NewRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.New(false)
	}

	router := gin.New()
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(middleware.Metrics(opts.Metrics))
	router.NoRoute(middleware.NotFound())

	deps := &handlers.Deps{ContractDir: opts.ContractDir, Metrics: opts.Metrics}
	lossHandler := handlers.NewLossHandler(deps)
	scenarioHandler := handlers.NewScenarioHandler(deps)
	simulationHandler := handlers.NewSimulationHandler(deps)
	profileHandler := handlers.NewProfileHandler(deps)
	hedgeHandler := handlers.NewHedgeHandler(deps)
	contractHandler := handlers.NewContractHandler(deps)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/loss", lossHandler.ComputeLoss)

		v1.POST("/scenarios", scenarioHandler.Generate)
		v1.GET("/patterns", scenarioHandler.ListPatterns)

		v1.POST("/simulations", simulationHandler.RunSimulation)
		v1.POST("/simulations/compare", simulationHandler.CompareScenarios)

		v1.GET("/profile", profileHandler.LossProfile)
		v1.GET("/profile/risk", profileHandler.RiskProfile)

		v1.POST("/hedge", hedgeHandler.ComputeHedge)
		v1.GET("/hedge/sensitivity", hedgeHandler.Sensitivity)

		v1.GET("/contracts", contractHandler.ListContracts)
	}
	return router
}
