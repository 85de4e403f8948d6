package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SQL queries of the key-value store.
const (
	UpsertRecordQuery = `
		INSERT INTO
			kv_records (namespace, key, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key) DO UPDATE
		SET
			payload = EXCLUDED.payload,
			updated_at = now()
	`
	SelectRecordQuery = `
		SELECT
			payload
		FROM
			kv_records
		WHERE
			namespace = $1 AND key = $2
	`
	SelectNamespaceQuery = `
		SELECT
			key,
			payload
		FROM
			kv_records
		WHERE
			namespace = $1
	`
)

// Get returns the stored payload, or (nil, nil) when the record is missing.
func (d *Database) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var payload []byte

	err := d.db.QueryRow(ctx, SelectRecordQuery, namespace, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read record %s/%s: %w", namespace, key, err)
	}

	return payload, nil
}

// Set overwrites the record with the given payload.
func (d *Database) Set(ctx context.Context, namespace, key string, value []byte) error {
	if _, err := d.db.Exec(ctx, UpsertRecordQuery, namespace, key, value); err != nil {
		return fmt.Errorf("failed to write record %s/%s: %w", namespace, key, err)
	}
	return nil
}

// List returns every record of a namespace keyed by record key.
func (d *Database) List(ctx context.Context, namespace string) (map[string][]byte, error) {
	result := make(map[string][]byte)

	rows, err := d.db.Query(ctx, SelectNamespaceQuery, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to list namespace %s: %w", namespace, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var payload []byte
		if err := rows.Scan(&key, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		result[key] = payload
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate record rows: %w", err)
	}

	return result, nil
}
