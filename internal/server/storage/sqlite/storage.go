package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA synchronous = NORMAL;",
	"PRAGMA busy_timeout = 5000;",
}

// Storage хранит единственный документ поездки в SQLite файле.
// Use ":memory:" as dbPath for an in-memory database (useful for testing).
type Storage struct {
	db *sql.DB
}

func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Хранилище однострочное и пишется целиком: одного соединения достаточно,
	// очередь писателей SQLite все равно не переживет
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// migrate накатывает embedded goose миграции до последней версии
func (s *Storage) migrate() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}
