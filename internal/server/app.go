// Package server wires the application together: configuration, database,
// repositories, services, the translation dispatcher, and the HTTP server,
// plus graceful shutdown and the background session sweeper.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Decolo/translate-note-web/internal/logging"
	"github.com/Decolo/translate-note-web/internal/server/config"
	"github.com/Decolo/translate-note-web/internal/server/httpapi"
	"github.com/Decolo/translate-note-web/internal/server/oauth"
	"github.com/Decolo/translate-note-web/internal/server/repositories/repomanager"
	"github.com/Decolo/translate-note-web/internal/server/services"
	"github.com/Decolo/translate-note-web/internal/translate"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	sessionService *services.SessionService
	httpServer     *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userService := services.NewUserService(db, rm)
	sessionService := services.NewSessionService(db, rm, cfg)
	noteService := services.NewNoteService(db, rm)

	translator := translate.New(translate.Config{
		DeepSeekAPIKey: cfg.DeepSeekAPIKey,
		GeminiAPIKey:   cfg.GeminiAPIKey,
	})

	var oauthClient httpapi.OAuthClient
	if cfg.GoogleOAuthConfigured() {
		client, err := oauth.NewGoogleClient(oauth.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
		})
		if err != nil {
			return nil, fmt.Errorf("oauth init error: %w", err)
		}
		oauthClient = client
	} else {
		logger.Warn(ctx, "Google OAuth credentials not set, sign-in with Google disabled")
	}

	httpServer := httpapi.NewServer(cfg, logger, userService, sessionService, noteService, translator, oauthClient)

	return &App{
		config:         cfg,
		logger:         logger,
		db:             db,
		sessionService: sessionService,
		httpServer:     httpServer,
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

// runSessionSweeper periodically deletes expired session rows. Lookup already
// treats expired rows as absent; the sweeper just keeps the table small.
func (app *App) runSessionSweeper(ctx context.Context) {
	ticker := time.NewTicker(app.config.SessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.sessionService.CleanupExpired(ctx)
			if err != nil {
				app.logger.Error(ctx, "session cleanup error", "error", err.Error())
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "removed expired sessions", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.runSessionSweeper(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
