package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authservice/internal/server/migrations"
	"github.com/dmitrijs2005/authservice/internal/server/repositories/credentials"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (m *Manager) openPostgres(ctx context.Context, dsn string) error {
	if dsn == "" {
		return fmt.Errorf("postgres credential store requires a database DSN")
	}

	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("db ping error: %w", err)
	}

	m.credentials = credentials.NewPostgresRepository(db)
	m.closers = append(m.closers, db.Close)
	m.migrate = func(ctx context.Context) error {
		return runPostgresMigrations(ctx, db)
	}
	return nil
}

// runPostgresMigrations sets up goose with the embedded migrations and runs
// them against db.
func runPostgresMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
