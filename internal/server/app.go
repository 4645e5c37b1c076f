// Package server initializes and runs the blog server: it loads the
// configuration, opens the database, applies migrations and starts the
// HTTP and gRPC listeners, stopping both on the usual signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/goblog/internal/logging"
	"github.com/dmitrijs2005/goblog/internal/server/auth"
	"github.com/dmitrijs2005/goblog/internal/server/config"
	"github.com/dmitrijs2005/goblog/internal/server/grpcapi"
	"github.com/dmitrijs2005/goblog/internal/server/httpapi"
	"github.com/dmitrijs2005/goblog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/goblog/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       *repomanager.PostgresRepositoryManager
	authService *services.AuthService
	blogService *services.BlogService
	tokens      *auth.TokenService
}

// NewApp wires every component. Configuration, connection or migration
// failure is fatal; no listener is started in that case.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	logger := logging.NewJSON(level)

	repos, err := repomanager.NewPostgres(ctx, cfg.DatabaseDSN(), cfg.DBMaxConn, cfg.DBMinConn)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)

	return &App{
		config:      cfg,
		logger:      logger,
		repos:       repos,
		authService: services.NewAuthService(repos.Users(), tokens, logger),
		blogService: services.NewBlogService(repos.Posts(), logger),
		tokens:      tokens,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts both listeners and blocks until they stop. A failure in one
// cancels the other.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		s := httpapi.NewServer(app.config.HTTPAddr, app.logger, app.authService, app.blogService, app.tokens)
		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s := grpcapi.NewGRPCServer(app.config.GRPCAddr, app.logger, app.authService, app.blogService, app.tokens)
		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
