package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/demo"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/logging"
	"github.com/mrlokans/bookshelf/internal/notifications"
	"github.com/mrlokans/bookshelf/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired application components.
type App struct {
	Router *gin.Engine
	DB     *database.Database
	Tasks  *tasks.Client // nil when the task queue is disabled

	logger      *zap.Logger
	cancelTasks context.CancelFunc
}

// Build opens the database, starts the task queue when enabled and
// creates the router.
func Build(cfg *config.Config, version string, logger *zap.Logger) (*App, error) {
	gin.SetMode(gin.ReleaseMode)

	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app := &App{DB: db, logger: logger}
	repo := books.NewRepository(db)

	if cfg.Demo.Seed {
		if _, err := demo.Seed(context.Background(), repo, logger.Named("demo")); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed demo catalog: %w", err)
		}
	}
	if cfg.Demo.Enabled {
		logger.Info("demo mode enabled, write operations will be blocked")
	}

	var notifier http_controllers.ReviewNotifier
	var taskReader http_controllers.TaskStatusReader
	if cfg.Tasks.Enabled {
		taskClient, err := tasks.NewClient(cfg.Database.Path, tasks.FromAppConfig(cfg.Tasks), logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize task queue: %w", err)
		}
		taskClient.Register(tasks.NewReviewSubmittedQueue(notifications.NewLogMailer(logger)))

		taskCtx, cancel := context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		app.Tasks = taskClient
		app.cancelTasks = cancel
		notifier = tasks.NewReviewNotifier(taskClient, logger)
		taskReader = taskClient
	} else {
		notifier = tasks.NewDisabledNotifier(logger)
		logger.Info("task queue disabled, review confirmations will be skipped")
	}

	app.Router = http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:    repo,
		Database: db,
		Notifier: notifier,
		Tasks:    taskReader,
		Logger:   logger,
		Version:  version,

		DemoMiddleware: demo.NewMiddleware(cfg.Demo.Enabled),
	})
	return app, nil
}

// StopTasks waits for running tasks to finish, up to the ctx deadline.
func (a *App) StopTasks(ctx context.Context) {
	if a.Tasks == nil {
		return
	}
	a.Tasks.Stop(ctx)
	a.cancelTasks()
}

// Close releases the databases. Call it after the server and the task
// queue have stopped.
func (a *App) Close() {
	if a.Tasks != nil {
		if err := a.Tasks.Close(); err != nil {
			a.logger.Warn("failed to close tasks database", zap.Error(err))
		}
	}
	if err := a.DB.Close(); err != nil {
		a.logger.Warn("failed to close database", zap.Error(err))
	}
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts down
// within the configured timeout.
func Serve(router http.Handler, cfg *config.Config, logger *zap.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			// Workers are already running; stop them before reporting.
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if onShutdown != nil {
				onShutdown(ctx)
			}
			return fmt.Errorf("listen: %w", err)
		}
	case sig := <-quit:
		logger.Info("shutting down server", zap.String("signal", sig.String()), zap.Duration("timeout", timeout))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop the task queue before the HTTP server
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server exiting")
	return nil
}

// Run builds the application and serves it until interrupted.
func Run(cfg *config.Config, version string) error {
	logger, flush, err := logging.New(cfg.Logging, version)
	if err != nil {
		return err
	}
	defer flush()
	zap.ReplaceGlobals(logger)

	logger.Info("starting bookshelf", zap.String("version", version))

	app, err := Build(cfg, version, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}

	defer app.Close()

	return Serve(app.Router, cfg, logger, app.StopTasks)
}

// Migrate creates or updates the database schema and exits.
func Migrate(cfg *config.Config, version string) error {
	logger, flush, err := logging.New(cfg.Logging, version)
	if err != nil {
		return err
	}
	defer flush()

	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	defer db.Close()

	logger.Info("database schema is up to date",
		zap.String("driver", string(cfg.Database.Driver)),
	)
	return nil
}
