package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLKV stores each slot as a row in the kv_slots table.  The
// schema is created by database.EnsureSchema at startup.  Writes use
// INSERT ... ON DUPLICATE KEY UPDATE so a slot overwrite is a single
// statement.
type MySQLKV struct {
	db *sql.DB
}

// NewMySQLKV wraps an open database handle.
func NewMySQLKV(db *sql.DB) *MySQLKV {
	if db == nil {
		panic("nil db passed to NewMySQLKV")
	}
	return &MySQLKV{db: db}
}

// Get returns the slot bytes, or (nil, nil) when no row exists.
func (m *MySQLKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT value FROM kv_slots WHERE slot = ?`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: mysql get %s: %v", ErrUnavailable, key, err)
	}
	return value, nil
}

// Set overwrites the slot row.
func (m *MySQLKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO kv_slots (slot, value) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE value = VALUES(value)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: mysql set %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
