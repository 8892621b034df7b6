package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/adanilkinca/techcockbar/config"
	"github.com/adanilkinca/techcockbar/migrations"
)

// DatabaseURL builds the postgres:// URL golang-migrate expects.
func DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DbUser,
		config.DbPassword,
		config.DbHost,
		config.DbPort,
		config.DbName,
		config.DbSSLMode,
	)
}

func newMigrator() (*migrate.Migrate, error) {
	return migratorFor(DatabaseURL())
}

func migratorFor(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("load embedded migrations: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// Migrate applies all pending migrations. Already up to date is not an error.
func Migrate() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Steps(-1)
}

// MigrateReset rolls back everything and migrates back up to a fresh schema.
func MigrateReset() error {
	return MigrateResetTo(DatabaseURL())
}

// MigrateResetTo is MigrateReset against an explicit database URL.
func MigrateResetTo(databaseURL string) error {
	m, err := migratorFor(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// MigrateForce stamps the schema version without running anything,
// used to recover from a dirty state.
func MigrateForce(version int) error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Force(version)
}

// MigrationVersion reports the current schema version.
func MigrationVersion() (uint, bool, error) {
	m, err := newMigrator()
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// MigrateTo applies all pending migrations against an explicit database URL,
// used by the integration test harness to prepare throwaway databases.
func MigrateTo(databaseURL string) error {
	m, err := migratorFor(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
