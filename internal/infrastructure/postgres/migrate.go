package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/infrastructure/postgres/migrations"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/pkg/config"
)

// RunMigrations applies the embedded goose migrations. Uses a short-lived
// database/sql handle via the pgx stdlib driver; the pgxpool serves queries
// afterwards.
func RunMigrations(ctx context.Context, cfg config.DBConfig) error {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
