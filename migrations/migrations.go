// Package migrations embeds the SQL schema so binaries do not depend on the
// working directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed saas/*.sql
var FS embed.FS

// Source opens the embedded migrations of a module ("saas").
func Source(module string) (source.Driver, error) {
	d, err := iofs.New(FS, module)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations %q: %w", module, err)
	}
	return d, nil
}

// Up applies all pending migrations of the saas module on an open Postgres
// handle. The handle stays open.
func Up(db *sql.DB) error {
	src, err := Source("saas")
	if err != nil {
		return err
	}
	defer src.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
