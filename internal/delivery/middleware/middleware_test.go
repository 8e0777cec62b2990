package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	t.Run("keeps an inbound id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var ctxID string
		err := mw.Process(func(c echo.Context) error {
			ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "req-123", ctxID)
		assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "req-123", deliverycontext.GetRequestID(c))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newContext := func() echo.Context {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/orders?page=2", nil), httptest.NewRecorder())
		deliverycontext.SetUser(c, &entity.User{ID: 7})

		return c
	}

	t.Run("silent unless debug", func(t *testing.T) {
		var buf bytes.Buffer
		mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

		require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(newContext()))
		assert.Empty(t, buf.String())
	})

	t.Run("logs the request with its user", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

		require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })(newContext()))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "user_id=7")
		assert.Contains(t, out, `query="page=2"`)
	})
}
