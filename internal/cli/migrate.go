package cli

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"romarchive/internal/db/migrations"
)

// migrateCmd bootstraps an empty archive file with the full schema. It is a
// development convenience; production archives arrive pre-populated from the
// import pipeline.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the archive schema in an empty SQLite file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations(cfg.Database.Path)
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

func runMigrations(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", path, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.WithField("archive", path).Info("archive schema up to date")
	return nil
}
