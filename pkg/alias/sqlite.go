package alias

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a transactional alternative to FileStore for deployments
// where lost admin writes are not acceptable. It satisfies the same Store
// contract: resolution semantics are identical, only the persistence differs.
type SQLiteStore struct {
	db *sql.DB
}

const aliasSchema = `
CREATE TABLE IF NOT EXISTS device_aliases (
	user_id   TEXT NOT NULL,
	alias     TEXT NOT NULL,
	device_id TEXT NOT NULL,
	PRIMARY KEY (user_id, alias)
);
`

// OpenSQLiteStore opens or creates a SQLite-backed alias store at path.
// The database is configured with WAL mode and foreign keys enabled.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create alias store directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open alias database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to alias database: %w", err)
	}

	if _, err := db.Exec(aliasSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create alias schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Resolve(ctx context.Context, userID, nameOrID string) (string, error) {
	var deviceID string
	err := s.db.QueryRowContext(ctx,
		`SELECT device_id FROM device_aliases WHERE user_id = ? AND alias = ?`,
		userID, nameOrID,
	).Scan(&deviceID)

	switch {
	case err == nil:
		return deviceID, nil
	case errors.Is(err, sql.ErrNoRows):
		if LooksLikeDeviceID(nameOrID) {
			return nameOrID, nil
		}
		return "", ErrNotFound
	default:
		return "", fmt.Errorf("failed to resolve alias: %w", err)
	}
}

func (s *SQLiteStore) Upsert(ctx context.Context, userID, alias, deviceID string) error {
	if userID == "" || alias == "" || deviceID == "" {
		return ErrMissingField
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO device_aliases (user_id, alias, device_id) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, alias) DO UPDATE SET device_id = excluded.device_id`,
		userID, alias, deviceID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert alias: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Dump(ctx context.Context) (Map, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, alias, device_id FROM device_aliases`)
	if err != nil {
		return nil, fmt.Errorf("failed to dump aliases: %w", err)
	}
	defer rows.Close()

	m := Map{}
	for rows.Next() {
		var userID, alias, deviceID string
		if err := rows.Scan(&userID, &alias, &deviceID); err != nil {
			return nil, fmt.Errorf("failed to scan alias row: %w", err)
		}
		if m[userID] == nil {
			m[userID] = map[string]string{}
		}
		m[userID][alias] = deviceID
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate alias rows: %w", err)
	}
	return m, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
