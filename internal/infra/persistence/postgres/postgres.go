package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"vendo/config"
	"vendo/internal/domain/lifecycle"
	"vendo/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval  = 5 * time.Second
	poolWaitWarnLatency = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary/replica pool described by the postgres section.
// The pool is pinged when the app starts; a sampler then reports
// connection waits until the app stops and the pool is closed.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config section is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres pool")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to unwrap postgres sql.DB")
	}

	sampler := &poolSampler{db: sqlDB, logger: params.Logger, interval: poolSampleInterval}

	params.Append(fx.StartStopHook(
		func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "postgres did not answer ping")
			}
			params.Logger.Info("Postgres connection established",
				slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections))

			sampler.start()

			return nil
		},
		func(context.Context) error {
			sampler.stop()

			return errors.Wrap(sqlDB.Close(), "failed to close postgres pool")
		},
	))

	return db, nil
}

// poolSampler logs how long requests waited for a pooled connection since
// the previous sample. Slow login bursts show up here first.
type poolSampler struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func (p *poolSampler) start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		prev := p.db.Stats()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cur := p.db.Stats()
				if level, attrs, ok := poolWaitReport(prev, cur); ok {
					p.logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
				}
				prev = cur
			}
		}
	}()
}

// stop is a no-op when start never ran.
func (p *poolSampler) stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

// poolWaitReport describes the waits between two pool snapshots. ok is false
// when nobody waited.
func poolWaitReport(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnLatency {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	}, true
}
