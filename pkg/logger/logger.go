// Package logger provides the structured slog logger used everywhere in the
// application: JSON output in production, text in development, with an
// optional asynchronous MongoDB sink (LOG_CHANNEL=mongo).
//
// Handlers get a per-request logger pre-tagged with the request_id:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order placed", "order_id", order.ID)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/artcocktail/artcocktail/config"
)

// L is the process-wide base logger.
var L *slog.Logger

func init() {
	Setup()
}

// Setup (re)builds the base logger from config. Called once from init; tests
// may call it again after changing APP_ENV.
func Setup() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	if config.LogChannel() == "mongo" {
		if mh, err := NewMongoHandler(config.MongoURI(), config.MongoDatabase(), config.MongoCollection(), handler); err == nil {
			handler = mh
		} else {
			slog.New(handler).Warn("mongo log sink unavailable, using stdout", "error", err)
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

type ctxKey struct{}

// Inject stores a pre-tagged logger in ctx. Called by the request-logging
// middleware; application code normally only reads via WithCtx.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// WithCtx returns the per-request logger stored in ctx, or the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
