package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"vendo/config"
	"vendo/internal/domain/lifecycle"
	"vendo/internal/errors"
	"vendo/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// MigratorParams defines the dependencies of the schema migrator.
type MigratorParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// Migrator applies the embedded goose migrations.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator builds a Migrator and, when migration.enabled is set, runs it on start.
// Its hook is appended after the pool's ping hook, so the store is reachable by then.
func NewMigrator(params MigratorParams) (*Migrator, error) {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	m := &Migrator{db: sqlDB, logger: params.Logger}

	if params.Config.Migration.Enabled {
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.MigrationTimeout)
				defer cancel()

				return m.Up(ctx)
			},
		})
	}

	return m, nil
}

// Up migrates the schema to the latest embedded version.
func (m *Migrator) Up(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseSlogLogger{logger: m.logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	m.logger.Info("Database migrations applied")

	return nil
}

// gooseSlogLogger adapts goose's Printf/Fatalf logger to slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "goose"))
}

func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "goose"))
	os.Exit(1)
}
