package mysql

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	base, buf := newBufferLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	base, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(base, cfg)

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "sql=\"SELECT 1\"")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	base, buf := newBufferLogger()
	l := NewGormLogger(base, logger.Warn).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.Error(context.Background(), "x %d", 1)
	assert.Empty(t, buf.String())
}

func TestLogPoolWait(t *testing.T) {
	base, buf := newBufferLogger()
	prev := sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond}

	logPoolWait(context.Background(), base, prev, prev)
	assert.Empty(t, buf.String())

	cur := sql.DBStats{WaitCount: 3, WaitDuration: 200 * time.Millisecond, MaxOpenConnections: 20}
	logPoolWait(context.Background(), base, prev, cur)
	assert.Contains(t, buf.String(), "MySQL pool wait detected")
	assert.Contains(t, buf.String(), "waitCountDelta=2")
}

func TestOpen_RequiresConfig(t *testing.T) {
	_, err := Open(nil, logger.Discard)
	assert.Error(t, err)
}
