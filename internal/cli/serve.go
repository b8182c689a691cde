package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/example/booking-assistant/internal/bot"
	"github.com/example/booking-assistant/internal/config"
	"github.com/example/booking-assistant/internal/handler"
	"github.com/example/booking-assistant/internal/middleware"
	"github.com/example/booking-assistant/internal/store"
)

// maxBodyBytes caps incoming request bodies. Booking and chatbot payloads are
// tiny; 1 MiB leaves generous headroom.
const maxBodyBytes = 1 << 20

// NewServeCmd returns the command that runs the HTTP API server.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the booking API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// log/slog is the stdlib structured logger. JSON handler writes
			// machine-readable output suitable for log aggregators.
			var logLevel slog.Level
			if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				logLevel = slog.LevelInfo
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(logger)

			bookings := store.New(store.RealClock{})
			gen := newGenerator(cfg)
			sessions := bot.NewSessionManager(cfg.SessionTTL, func() *bot.Collector {
				return bot.NewCollector(bookings, gen)
			})

			// Middleware is applied in order: RequestID → RealIP → Logger →
			// Recoverer → CORS → body limit.
			// RequestID generates a unique trace ID per request.
			// Recoverer catches panics and returns HTTP 500 instead of crashing.
			r := chi.NewRouter()
			r.Use(chimiddleware.RequestID)
			r.Use(chimiddleware.RealIP)
			r.Use(middleware.NewSlogLogger(logger))
			r.Use(chimiddleware.Recoverer)
			r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
			r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

			r.Mount("/", handler.NewServer(bookings, sessions).Routes())

			// Explicit timeouts prevent slowloris and resource exhaustion attacks.
			srv := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      r,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown: wait for OS signal, then give in-flight
			// requests up to 15 seconds to complete.
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				slog.Info("server starting", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-stop:
			}
			slog.Info("shutting down server")

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}
}
