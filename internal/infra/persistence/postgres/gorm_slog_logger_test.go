package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"userauth/config"
	deliverycontext "userauth/internal/delivery/context"
	"userauth/internal/errors"
)

func newBufferedGormLogger(cfg *config.Config) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &buf, newGormSlogLogger(base, cfg)
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("failed statement", func(t *testing.T) {
		buf, l := newBufferedGormLogger(&config.Config{})

		l.Trace(ctx, time.Now(), sqlFn("INSERT INTO users"), errors.New("duplicate key"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "duplicate key")
	})

	t.Run("record not found is silent", func(t *testing.T) {
		buf, l := newBufferedGormLogger(&config.Config{})

		l.Trace(ctx, time.Now(), sqlFn("SELECT"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow statement", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Env.Log.SlowQueryThreshold = time.Millisecond
		buf, l := newBufferedGormLogger(cfg)

		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)"), nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast statement only in debug", func(t *testing.T) {
		buf, l := newBufferedGormLogger(&config.Config{})
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		buf, l = newBufferedGormLogger(cfg)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
		assert.Contains(t, buf.String(), "GORM query")
	})

	t.Run("silent mode", func(t *testing.T) {
		buf, l := newBufferedGormLogger(&config.Config{})

		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn("SELECT"), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	_, l := newBufferedGormLogger(&config.Config{})

	var requestBuf bytes.Buffer
	requestLogger := slog.New(slog.NewTextHandler(&requestBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Error(ctx, "statement %s failed", "x")

	assert.Contains(t, requestBuf.String(), "request_id=req-1")
	assert.Contains(t, requestBuf.String(), "statement x failed")
}

func TestPoolWaitReport(t *testing.T) {
	_, _, ok := poolWaitReport(sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.False(t, ok)

	level, attrs, ok := poolWaitReport(
		sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
		sql.DBStats{WaitCount: 3, WaitDuration: 11 * time.Millisecond},
	)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avgWait", 5*time.Millisecond))

	level, _, ok = poolWaitReport(
		sql.DBStats{},
		sql.DBStats{WaitCount: 1, WaitDuration: time.Second},
	)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}
