package database

import (
	"context"
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database is the Postgres backend. It implements the storage.KeyValueStore
// port on top of a single kv_records table and keeps user accounts in a
// dedicated users table.
type Database struct {
	db  *pgxpool.Pool
	dsn string
}

//go:embed migrations/*
var migrationsFS embed.FS

// checkConnection verifies the pool can actually reach the database.
func checkConnection(ctx context.Context, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

// New creates a connection pool and verifies connectivity.
func New(ctx context.Context, dsn string) (*Database, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := checkConnection(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Database{db: db, dsn: dsn}, nil
}

// RunMigrations applies the embedded schema migrations.
func (d *Database) RunMigrations() error {
	driver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	migrations, err := migrate.NewWithSourceInstance("iofs", driver, d.dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}

	err = migrations.Up()
	if err != nil {
		if err == migrate.ErrNoChange {
			log.Println("No new migrations found")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Migrations applied successfully")
	return nil
}

// Close closes the connection pool.
func (d *Database) Close() {
	if d.db != nil {
		d.db.Close()
	}
}
