package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"vendo/config"
	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return `SELECT 1`, 1 }
	begin := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{}).(*gormSlogLogger)
		l.now = func() time.Time { return begin.Add(time.Millisecond) }

		l.Trace(context.Background(), begin, sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failed query goes to request logger", func(t *testing.T) {
		var base, scoped bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&base), &config.Config{}).(*gormSlogLogger)
		l.now = func() time.Time { return begin.Add(time.Millisecond) }
		ctx := deliverycontext.WithLogger(context.Background(), newBufferedLogger(&scoped).With("request_id", "r-1"))

		l.Trace(ctx, begin, sqlFn, errors.New("boom"))

		assert.Empty(t, base.String())
		assert.Contains(t, scoped.String(), "gorm query failed")
		assert.Contains(t, scoped.String(), "request_id=r-1")
	})

	t.Run("slow query warns", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{}).(*gormSlogLogger)
		l.now = func() time.Time { return begin.Add(time.Second) }

		l.Trace(context.Background(), begin, sqlFn, nil)

		assert.Contains(t, buf.String(), "gorm slow query")
	})

	t.Run("fast query silent outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{}).(*gormSlogLogger)
		l.now = func() time.Time { return begin.Add(time.Millisecond) }

		l.Trace(context.Background(), begin, sqlFn, nil)

		assert.Empty(t, buf.String())
	})
}
