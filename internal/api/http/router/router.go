package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/costmanager/costmanager-server/internal/api/http/handler"
	"github.com/costmanager/costmanager-server/internal/api/http/middleware"
	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	userService    handler.UserService
	costService    handler.CostService
	exportService  handler.ExportService
	pinger         handler.Pinger
	contextManager model.ContextManager
	registry       *prometheus.Registry
	location       *time.Location
	logger         *logger.Logger
}

// Services groups the business services the routes delegate to.
type Services struct {
	User   handler.UserService
	Cost   handler.CostService
	Export handler.ExportService
	Pinger handler.Pinger
}

// New creates a Router. Request metrics are registered with registry and
// served from it at /metrics. location is the zone for timestamps that
// carry none.
func New(
	services Services,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	location *time.Location,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:    services.User,
		costService:    services.Cost,
		exportService:  services.Export,
		pinger:         services.Pinger,
		contextManager: contextManager,
		registry:       registry,
		location:       location,
		logger:         logger,
	}
}

// Register builds the engine with every route.
func (r *Router) Register() (*gin.Engine, error) {
	metrics, err := middleware.NewMetrics(r.registry)
	if err != nil {
		return nil, err
	}

	e := gin.New()
	e.Use(
		gin.Recovery(),
		middleware.NewRequestID(r.contextManager).Handle,
		middleware.NewLogging(r.logger, r.contextManager).Handle,
		metrics.Handle,
	)

	e.GET("/healthz", handler.NewHealth(r.pinger, r.logger).Check)
	e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	r.registerUserRoutes(api)
	r.registerCostRoutes(api)
	r.registerExportRoutes(api)
	api.GET("/about", handler.About)

	return e, nil
}

func (r *Router) registerUserRoutes(api *gin.RouterGroup) {
	userHandler := handler.NewUser(r.userService, r.logger)
	api.POST("/users/add", userHandler.Create)
	api.GET("/users/:id", userHandler.Get)
}

func (r *Router) registerCostRoutes(api *gin.RouterGroup) {
	costHandler := handler.NewCost(r.costService, r.location, r.logger)
	api.POST("/add", costHandler.Add)
	api.GET("/report", costHandler.Report)
}

func (r *Router) registerExportRoutes(api *gin.RouterGroup) {
	exportHandler := handler.NewExport(r.exportService, r.logger)
	api.GET("/report/export", exportHandler.Download)
	api.POST("/report/archive", exportHandler.Archive)
	api.GET("/report/archive", exportHandler.GetArchive)
}
