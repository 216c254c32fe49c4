package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tugasku/internal/storage"
)

var _ storage.Repository = (*Store)(nil)

func (s *Store) dsn(op string) string {
	return "storage.sqlite." + op
}

func (s *Store) Load(ctx context.Context, key storage.Key) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, string(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Load"), err)
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Save(ctx context.Context, key storage.Key, value []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if s.quota > 0 {
		var used int64
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(LENGTH(value)), 0) FROM kv WHERE key != ?`, string(key),
		).Scan(&used)
		if err != nil {
			s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
			return fmt.Errorf("measure usage: %w", err)
		}
		if used+int64(len(value)) > s.quota {
			return storage.ErrQuotaExceeded
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		string(key), value,
	)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("save %s: %w", key, err)
	}
	return tx.Commit()
}

func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Clear"), err)
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}
