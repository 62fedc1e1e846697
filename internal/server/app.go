// Package server initializes and runs the herbtrack API server. It wires
// configuration, storage, services, and the HTTP endpoint, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"herbtrack/internal/logging"
	"herbtrack/internal/server/config"
	"herbtrack/internal/server/db"
	"herbtrack/internal/server/httpapi"
	"herbtrack/internal/server/services"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	manager      db.RepositoryManager
	userService  *services.UserService
	entryService *services.EntryService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(m.Users())
	es := services.NewEntryService(m.Entries())

	return &App{config: c, logger: logger, manager: m, userService: us, entryService: es}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	secret := []byte(app.config.SecretKey)
	authHandler := httpapi.NewAuthHandler(app.userService, app.logger, secret, app.config.AccessTokenValidityDuration)
	entryHandler := httpapi.NewEntryHandler(app.entryService, app.logger)

	srv := &http.Server{
		Addr:    app.config.BindAddr,
		Handler: httpapi.NewRouter(authHandler, entryHandler, secret),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "server shutdown error", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "starting http server", "addr", app.config.BindAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Conn().Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
