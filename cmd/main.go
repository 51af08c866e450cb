package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	httpctx "github.com/costmanager/costmanager-server/internal/api/http/context"
	"github.com/costmanager/costmanager-server/internal/api/http/router"
	httpServer "github.com/costmanager/costmanager-server/internal/api/http/server"
	"github.com/costmanager/costmanager-server/internal/config"
	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
	"github.com/costmanager/costmanager-server/internal/repository/postgres"
	"github.com/costmanager/costmanager-server/internal/server"
	"github.com/costmanager/costmanager-server/internal/service"
	storage "github.com/costmanager/costmanager-server/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.HTTP.GinMode)

	location, err := cfg.Report.Location()
	if err != nil {
		logger.Fatal("failed to load report timezone", "error", err)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	costRepo := postgres.NewCostRepository(db)

	userService := service.NewUser(userRepo, costRepo, logger)
	costService := service.NewCost(costRepo, userRepo, location, logger)

	archive, err := newArchive(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}
	if archive == nil {
		logger.Info("report archive disabled")
	}
	exportService := service.NewExport(costService, archive, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := router.New(router.Services{
		User:   userService,
		Cost:   costService,
		Export: exportService,
		Pinger: db,
	}, httpctx.NewManager(), registry, location, logger)
	engine, err := r.Register()
	if err != nil {
		logger.Fatal("failed to register routes", "error", err)
	}

	srv := httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	logAppVersion()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server on", "address", srv.Address(), "https", cfg.HTTP.EnableHTTPS)
		return srv.Start(sl)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("received interruption signal, shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err, "address", srv.Address())
	}
	logger.Info("shutdown complete")
}

// newArchive returns nil when object storage is disabled so that the export
// service reports archiving as unavailable.
func newArchive(ctx context.Context, cfg config.Storage) (model.Storage, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	client, err := storage.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
