package main

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const sessionCleanupInterval = time.Hour

// startSessionCleanup periodically deletes expired refresh tokens until the app stops.
func startSessionCleanup(lc fx.Lifecycle, authUC usecase.AuthUsecase, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go runSessionCleanup(ctx, authUC, logger, sessionCleanupInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func runSessionCleanup(ctx context.Context, authUC usecase.AuthUsecase, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// The usecase logs how many sessions it removed.
			if _, err := authUC.CleanupExpiredSessions(ctx); err != nil {
				logger.Warn("Failed to clean up expired sessions", slog.Any("error", err))
			}
		}
	}
}
