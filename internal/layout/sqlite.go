package layout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // sqlite driver (pure Go)
)

// OpenSQLite opens a SQLite database at path with a busy timeout so
// concurrent savers wait instead of failing.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// SQLiteStore keeps layouts in a single table keyed by (store_id, page_id).
// The store layout uses an empty page_id.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wires a store on an open database. Call Init before use.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Init applies the schema.
func (s *SQLiteStore) Init(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS layouts (
			store_id TEXT NOT NULL,
			page_id TEXT NOT NULL DEFAULT '',
			revision TEXT NOT NULL,
			data TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (store_id, page_id)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply layout schema: %w", err)
		}
	}
	return nil
}

// Load fetches the layout of scope.
func (s *SQLiteStore) Load(ctx context.Context, scope Scope) (Layout, error) {
	if err := scope.Validate(); err != nil {
		return Layout{}, err
	}
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM layouts WHERE store_id = ? AND page_id = ?`,
		scope.StoreID, scope.PageID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Layout{}, fmt.Errorf("%s: %w", scope, ErrNotFound)
		}
		return Layout{}, fmt.Errorf("get layout: %w", err)
	}
	return Parse(scope.String(), []byte(data))
}

// Save upserts the layout of scope. Every save gets a fresh revision id.
func (s *SQLiteStore) Save(ctx context.Context, scope Scope, l Layout) error {
	normalized, err := prepareSave(scope, l)
	if err != nil {
		return err
	}
	data, err := Marshal(normalized)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO layouts(store_id, page_id, revision, data, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(store_id, page_id) DO UPDATE SET
			revision = excluded.revision,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		scope.StoreID, scope.PageID, uuid.NewString(), string(data), time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("upsert layout: %w", err)
	}
	return nil
}

// Revision returns the id of the last save of scope.
func (s *SQLiteStore) Revision(ctx context.Context, scope Scope) (string, error) {
	var revision string
	err := s.db.QueryRowContext(ctx,
		`SELECT revision FROM layouts WHERE store_id = ? AND page_id = ?`,
		scope.StoreID, scope.PageID,
	).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", scope, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get layout revision: %w", err)
	}
	return revision, nil
}

// Delete removes the layout of scope.
func (s *SQLiteStore) Delete(ctx context.Context, scope Scope) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM layouts WHERE store_id = ? AND page_id = ?`, scope.StoreID, scope.PageID)
	if err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", scope, ErrNotFound)
	}
	return nil
}
