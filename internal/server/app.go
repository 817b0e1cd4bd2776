// Package server wires configuration, storage, services and the gRPC
// endpoint together and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/liftlog/internal/cryptox"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/cache"
	"github.com/dmitrijs2005/liftlog/internal/server/config"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"github.com/dmitrijs2005/liftlog/internal/server/videometa"

	gs "github.com/dmitrijs2005/liftlog/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	closers  []io.Closer
	services gs.Services
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, dialect, err := dbx.Open(ctx, c.DatabaseDSN, c.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app := &App{config: c, logger: logger, db: db, closers: []io.Closer{db}}

	rm, err := repomanager.New(dialect)
	if err != nil {
		app.Close()
		return nil, err
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		app.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	wc, err := app.buildCache(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	hasher, err := cryptox.NewPasswordHasher(cryptox.SchemeArgon2id)
	if err != nil {
		app.Close()
		return nil, err
	}

	fetcher := videometa.NewClient(c.YouTubeBaseURL, c.YouTubeAPIKey, nil)
	workouts := services.NewWorkoutService(db, rm, wc, logger.With("module", "workouts"))

	app.services = gs.Services{
		Users:    services.NewUserService(db, rm, hasher, c, logger.With("module", "users")),
		Workouts: workouts,
		Videos:   services.NewVideoService(db, rm, fetcher, logger.With("module", "videos")),
		Exports:  services.NewExportService(workouts, c, logger.With("module", "exports")),
	}

	logger.Info(ctx, "storage ready", "dialect", string(dialect), "cache", c.CacheBackend)
	return app, nil
}

func (app *App) buildCache(ctx context.Context) (cache.WorkoutCache, error) {
	switch app.config.CacheBackend {
	case config.CacheNone:
		return cache.Nop{}, nil
	case config.CacheMemory, "":
		return cache.NewMemory(app.config.CacheTTL), nil
	case config.CacheRedis:
		client, err := cache.NewRedisClient(ctx, app.config.RedisAddr)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, client)
		return cache.NewRedis(client, app.config.CacheTTL, app.logger.With("module", "cache")), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", app.config.CacheBackend)
	}
}

// Close releases the database pool and cache connections.
func (app *App) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		_ = app.closers[i].Close()
	}
	app.closers = nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	defer app.Close()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
