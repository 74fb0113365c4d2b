package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/markbucks/internal/service"
)

var _ service.Preferences = (*PreferenceStore)(nil)

// PreferenceStore is a namespaced view over the preferences table.
type PreferenceStore struct {
	db        *sql.DB
	namespace string
}

// Namespace returns the namespace this store reads and writes.
func (p *PreferenceStore) Namespace() string {
	return p.namespace
}

// Get returns the value stored under key.
func (p *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if err := validateString(key, "key"); err != nil {
		return "", false, err
	}

	var value string
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE namespace = ? AND key = ?`,
		p.namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s/%s: %w", p.namespace, key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (p *PreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	_, err := p.db.ExecContext(ctx, `
		INSERT INTO preferences (namespace, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		p.namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write preference %s/%s: %w", p.namespace, key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (p *PreferenceStore) Delete(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	if _, err := p.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE namespace = ? AND key = ?`,
		p.namespace, key,
	); err != nil {
		return fmt.Errorf("failed to delete preference %s/%s: %w", p.namespace, key, err)
	}
	return nil
}
