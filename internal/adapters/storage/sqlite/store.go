// Package sqlite provides an embedded storage backend on SQLite using the
// pure-Go modernc.org/sqlite driver. Each todo record is one row keyed by
// (pk, sk).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/record"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

const (
	busyTimeout  = 5000 // milliseconds
	maxOpenConns = 10
	maxIdleConns = 5
)

// Store reads and writes todo records in a single SQLite table.
type Store struct {
	db         *sql.DB
	upsertStmt string
	selectStmt string
}

// Open opens (creating if needed) the database at path and ensures the
// table exists. The table name must be a plain identifier; config validation
// guarantees this for configured names.
func Open(ctx context.Context, path, table string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite db path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", path, busyTimeout)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	s := &Store{
		db: db,
		upsertStmt: fmt.Sprintf(`INSERT OR REPLACE INTO %q (pk, sk, todo_type, state, source_file, result_file)
			VALUES (?, ?, ?, ?, ?, ?)`, table),
		selectStmt: fmt.Sprintf(`SELECT pk, sk, todo_type, state, source_file, result_file
			FROM %q WHERE pk = ? AND sk = ?`, table),
	}

	if err := s.ensureSchema(ctx, table); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context, table string) error {
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %q (
		pk          TEXT NOT NULL,
		sk          TEXT NOT NULL,
		todo_type   TEXT NOT NULL,
		state       TEXT NOT NULL,
		source_file TEXT NOT NULL,
		result_file TEXT,
		PRIMARY KEY(pk, sk)
	)`, table)
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Name returns "sqlite".
func (s *Store) Name() string { return "sqlite" }

// Save upserts item. A missing result_file attribute is stored as NULL.
func (s *Store) Save(ctx context.Context, item record.Item) error {
	var resultFile sql.NullString
	if rf, ok := item[record.AttrResultFile]; ok {
		resultFile = sql.NullString{String: rf, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, s.upsertStmt,
		item[record.AttrPartitionKey],
		item[record.AttrSortKey],
		item[record.AttrTodoType],
		item[record.AttrState],
		item[record.AttrSourceFile],
		resultFile,
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", todo.Key{UserID: item[record.AttrPartitionKey], TodoID: item[record.AttrSortKey]}, err)
	}
	return nil
}

// Find selects the row for key.
func (s *Store) Find(ctx context.Context, key todo.Key) (record.Item, error) {
	var (
		pk, sk, todoType, state, sourceFile string
		resultFile                          sql.NullString
	)

	err := s.db.QueryRowContext(ctx, s.selectStmt, key.UserID, key.TodoID).
		Scan(&pk, &sk, &todoType, &state, &sourceFile, &resultFile)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", record.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}

	item := record.Item{
		record.AttrPartitionKey: pk,
		record.AttrSortKey:      sk,
		record.AttrTodoType:     todoType,
		record.AttrState:        state,
		record.AttrSourceFile:   sourceFile,
	}
	if resultFile.Valid {
		item[record.AttrResultFile] = resultFile.String
	}
	return item, nil
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
