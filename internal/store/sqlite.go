package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"ProposalEngine/internal/model"
)

// SQLiteStore persists series to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS series (
			name       TEXT PRIMARY KEY,
			updated_at INTEGER NOT NULL DEFAULT (unixepoch())
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_returns (
			series TEXT NOT NULL REFERENCES series(name),
			month  TEXT NOT NULL,
			value  REAL NOT NULL,
			PRIMARY KEY (series, month)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SaveSeries replaces every month of the named series in one transaction.
func (s *SQLiteStore) SaveSeries(ctx context.Context, name string, series model.ReturnSeries) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO series (name, updated_at) VALUES (?, unixepoch())
		 ON CONFLICT(name) DO UPDATE SET updated_at = excluded.updated_at`, name); err != nil {
		return fmt.Errorf("upsert series %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM monthly_returns WHERE series = ?`, name); err != nil {
		return fmt.Errorf("clear series %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO monthly_returns (series, month, value) VALUES (?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, r := range series {
		if _, err := stmt.ExecContext(ctx, name, r.Date, r.Value); err != nil {
			return fmt.Errorf("insert %s %s: %w", name, r.Date, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadSeries(ctx context.Context, name string) (model.ReturnSeries, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM series WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", name, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("load %q: %w", name, ErrSeriesNotFound)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT month, value FROM monthly_returns WHERE series = ? ORDER BY month`, name)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", name, err)
	}
	defer rows.Close()

	series := model.ReturnSeries{}
	for rows.Next() {
		var r model.MonthlyReturn
		if err := rows.Scan(&r.Date, &r.Value); err != nil {
			return nil, fmt.Errorf("scan %q: %w", name, err)
		}
		series = append(series, r)
	}
	return series, rows.Err()
}

func (s *SQLiteStore) ListSeries(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM series ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
