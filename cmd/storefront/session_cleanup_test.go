package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	mockusecase "storefront/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunSessionCleanup(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	calls := make(chan struct{}, 8)
	authUC.EXPECT().CleanupExpiredSessions(mock.Anything).
		Return(int64(0), errors.New("db unavailable")).Once()
	authUC.EXPECT().CleanupExpiredSessions(mock.Anything).
		Run(func(context.Context) { calls <- struct{}{} }).
		Return(int64(2), nil)

	ctx, cancel := context.WithCancel(context.Background())
	var logs bytes.Buffer
	done := make(chan struct{})
	go func() {
		runSessionCleanup(ctx, authUC, slog.New(slog.NewTextHandler(&logs, nil)), 5*time.Millisecond)
		close(done)
	}()

	// A failed run does not stop the loop.
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup did not run after a failure")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup loop did not stop")
	}
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	// Removal counts are logged by the usecase, not by the loop.
	assert.Contains(t, logs.String(), "Failed to clean up expired sessions")
	assert.NotContains(t, logs.String(), "Expired sessions removed")
}
