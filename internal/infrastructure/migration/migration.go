package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations creates the posts schema on startup. Every step is idempotent.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

func Migrations() []Migration {
	return []Migration{
		{
			Name: "create_posts_table",
			SQL: `
		CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			date TIMESTAMPTZ NOT NULL,
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		},
		{
			Name: "create_posts_date_index",
			SQL: `
		CREATE INDEX IF NOT EXISTS posts_date_idx ON posts (date DESC, id);`,
		},
		{
			Name: "create_posts_tags_index",
			SQL: `
		CREATE INDEX IF NOT EXISTS posts_doc_tags_idx ON posts USING GIN ((doc -> 'tags'));`,
		},
	}
}
