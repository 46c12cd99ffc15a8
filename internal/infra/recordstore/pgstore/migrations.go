package pgstore

import (
	"embed"
	"errors"
	"log/slog"

	"sponsor-portal/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func RunMigrations(databaseURL string, logger *slog.Logger) error {
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errs.Wrap(err, "create migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, databaseURL)
	if err != nil {
		return errs.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err := upResult(m.Up()); err != nil {
		return err
	}

	version, dirty, _ := m.Version()
	logger.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}

// upResult treats an already current schema as success
func upResult(err error) error {
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return errs.Wrap(err, "run migrations")
}
