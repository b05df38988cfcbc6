// Package server boots the storefront: config, database, storage, the
// middleware stack, routes, and a graceful shutdown loop.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/routes"
	"github.com/artcocktail/artcocktail/config"
	"github.com/artcocktail/artcocktail/pkg/database"
	"github.com/artcocktail/artcocktail/pkg/limiter"
	"github.com/artcocktail/artcocktail/pkg/logger"
	"github.com/artcocktail/artcocktail/pkg/metrics"
	"github.com/artcocktail/artcocktail/pkg/middleware"
	"github.com/artcocktail/artcocktail/pkg/migration"
	"github.com/artcocktail/artcocktail/pkg/reqid"
	"github.com/artcocktail/artcocktail/pkg/router"
	"github.com/artcocktail/artcocktail/pkg/storage"
)

const (
	rateLimitMax    = 120
	rateLimitWindow = time.Minute
	shutdownTimeout = 10 * time.Second
)

// Start runs the HTTP server until SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	logger.Setup()

	db, err := database.Connect()
	if err != nil {
		return err
	}

	if err := migration.New(db).Up(); err != nil {
		return err
	}

	disk, err := storage.Open(config.StorageDisk())
	if err != nil {
		return err
	}

	lim := limiter.New(rateLimitMax, rateLimitWindow)
	defer lim.Close()

	handler := BuildHandler(db, disk, lim)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// BuildHandler assembles the full middleware stack and route table. Split out
// of Start so tests can serve the real handler against a test database.
func BuildHandler(db *gorm.DB, disk storage.Disk, lim *limiter.Limiter) http.Handler {
	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(config.FrontendURL())),
		middleware.RateLimit(lim),
	)

	routes.RegisterAPI(r, db, disk)

	r.Mount("/metrics", metrics.Handler())
	if local, ok := disk.(interface{ Root() string }); ok {
		fs := http.StripPrefix(config.StorageURL(), http.FileServer(http.Dir(local.Root())))
		r.Mount(config.StorageURL(), fs)
	}

	return r.Handler()
}
