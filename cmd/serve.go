package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"github.com/spf13/cobra"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/api"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/bot"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/config"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/database"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/faq"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/llm"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

// Server timeout configuration.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 2 * time.Minute // oracle round trips can be slow
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second
)

// runServe initializes every component and runs the HTTP server until the
// context is cancelled. Configuration is validated before anything else so
// a missing API key fails fast.
func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.New(log.Config{Level: cfg.LogLevelSlog(), JSON: cfg.LogJSON})

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("closing database", "error", closeErr)
		}
	}()
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	faqs, err := faq.Load(cfg.FAQPath, logger.With("component", "faq"))
	if err != nil {
		return fmt.Errorf("loading FAQs: %w", err)
	}

	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: cfg.GeminiAPIKey}))
	if g == nil {
		return errors.New("initializing genkit with gemini provider")
	}

	oracle := llm.New(g, cfg, logger.With("component", "llm"))
	store := session.New(db, logger.With("component", "session"))
	service := bot.New(store, oracle, faqs, logger.With("component", "bot"))

	apiServer, err := api.NewServer(api.ServerConfig{
		Logger:      logger.With("component", "api"),
		Bot:         service,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	logger.Info("HTTP server ready",
		"addr", cfg.ListenAddr,
		"model", cfg.ModelName,
		"database", cfg.DatabasePath,
		"faq_source", cfg.FAQPath,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
}
