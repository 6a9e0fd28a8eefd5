package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WaitForShutdown blocks until SIGINT/SIGTERM, then shuts the server down
// within the given timeout.
func WaitForShutdown(app *fiber.App, timeout time.Duration, ctx context.Context) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		zap.L().Info("shutdown signal received", zap.String("signal", s.String()))
	case <-ctx.Done():
		zap.L().Info("context cancelled, shutting down")
	}

	if err := app.ShutdownWithTimeout(timeout); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
}
