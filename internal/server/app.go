// Package server wires configuration, storage, the authentication core and
// the gRPC endpoint into a runnable application, and handles graceful
// shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/authservice/internal/logging"
	"github.com/dmitrijs2005/authservice/internal/server/config"
	"github.com/dmitrijs2005/authservice/internal/server/password"
	"github.com/dmitrijs2005/authservice/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authservice/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/authservice/internal/server/services"

	gs "github.com/dmitrijs2005/authservice/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	auth   *services.AuthService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	hasher, err := password.NewArgon2(c.PasswordParams())
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	repos, err := repomanager.New(ctx, c.RepositoryOptions())
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	auth, err := services.NewAuthService(repos.Credentials(), repos.Sessions(), hasher, logger,
		services.Options{SessionTTL: c.SessionTTL, StoreTimeout: c.StoreTimeout})
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, repos: repos, auth: auth}, nil
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
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC(), app.logger, app.auth)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// startSweeper periodically drops expired and revoked sessions from tables
// that do not expire records on their own.
func (app *App) startSweeper(ctx context.Context) {
	sweeper, ok := app.repos.Sessions().(sessions.Sweeper)
	if !ok || app.config.SweepInterval <= 0 {
		return
	}

	ticker := time.NewTicker(app.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := sweeper.Sweep(ctx, now)
			if err != nil {
				app.logger.Warn(ctx, "session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Debug(ctx, "sessions swept", "removed", n)
			}
		}
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or the
// server fails, then releases storage.
func (app *App) Run(ctx context.Context) {
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

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startSweeper(ctx)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(context.Background(), "storage close error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
