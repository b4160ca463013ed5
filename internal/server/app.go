// Package server initializes and runs the authentication service: it opens
// the credential store, builds the services and serves the gRPC endpoint
// until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authgate/internal/cryptox"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/users"
	"github.com/dmitrijs2005/authgate/internal/server/services"

	gs "github.com/dmitrijs2005/authgate/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	tokens      *auth.TokenManager
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel).With("service", "auth")

	secret := []byte(c.JWTSecret)
	switch {
	case c.UsesDefaultSecret():
		logger.Warn(ctx, "JWT_SECRET is not set, using the insecure development secret")
	case cryptox.IsWeak(secret):
		logger.Warn(ctx, "JWT_SECRET is shorter than recommended", "min_length", cryptox.MinSecretLength)
	}
	logger.Info(ctx, "token signing configured", "secret_fingerprint", cryptox.Fingerprint(secret),
		"ttl", c.AccessTokenTTL.String(), "issuer", c.JWTIssuer)

	repo, db, err := openStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens, err := auth.NewTokenManager(auth.TokenConfig{
		Secret: secret,
		TTL:    c.AccessTokenTTL,
		Issuer: c.JWTIssuer,
	})
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("token manager init error: %w", err)
	}

	us := services.NewUserService(repo, c.BcryptCost, logger)

	return &App{config: c, logger: logger, db: db, userService: us, tokens: tokens}, nil
}

// openStore builds the credential store selected by c.DatabaseDriver. The
// returned *sql.DB is nil for the in-memory store.
func openStore(ctx context.Context, c *config.Config) (users.Repository, *sql.DB, error) {
	if c.DatabaseDriver == repomanager.DriverMemory {
		return users.NewMemoryRepository(), nil, nil
	}

	m, sqlDriver, err := repomanager.ForDriver(c.DatabaseDriver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(sqlDriver, c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if c.DatabaseDriver == repomanager.DriverSQLite {
		// one writer at a time; the UNIQUE constraint still decides races
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	return m.Users(db), db, nil
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

	s := gs.NewGRPCServer(app.config.Address(), app.logger, app.userService, app.tokens,
		gs.Options{ValidateAgainstStore: app.config.ValidateAgainstStore})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is canceled or a termination signal is received.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "error closing database", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
