package palettestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kastheco/swatch/palette"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS palettes (
	name       TEXT PRIMARY KEY,
	formula    TEXT NOT NULL DEFAULT '',
	colors     TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

// SQLiteStore is a Store backed by a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path. ":memory:" gives a
// private in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open palette store: %w", err)
	}
	// One connection: writes are serialized and :memory: stays a single database.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init palette store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Create(p SavedPalette) error {
	if err := Validate(p); err != nil {
		return err
	}
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return fmt.Errorf("marshal colors: %w", err)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO palettes (name, formula, colors, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO NOTHING`,
		p.Name, p.Formula, string(colors), p.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert palette %s: %w", p.Name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert palette %s: %w", p.Name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrExists, p.Name)
	}
	return nil
}

func (s *SQLiteStore) Get(name string) (SavedPalette, error) {
	row := s.db.QueryRow(`SELECT name, formula, colors, created_at FROM palettes WHERE name = ?`, name)
	p, err := scanPalette(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedPalette{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return SavedPalette{}, fmt.Errorf("get palette %s: %w", name, err)
	}
	return p, nil
}

// List returns all palettes ordered by name.
func (s *SQLiteStore) List() ([]SavedPalette, error) {
	rows, err := s.db.Query(`SELECT name, formula, colors, created_at FROM palettes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	defer rows.Close()

	out := []SavedPalette{}
	for rows.Next() {
		p, err := scanPalette(rows)
		if err != nil {
			return nil, fmt.Errorf("list palettes: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM palettes WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete palette %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete palette %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

func (s *SQLiteStore) Ping() error {
	return s.db.Ping()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPalette(sc scanner) (SavedPalette, error) {
	var (
		p       SavedPalette
		colors  string
		created string
	)
	if err := sc.Scan(&p.Name, &p.Formula, &colors, &created); err != nil {
		return SavedPalette{}, err
	}
	var pal palette.Palette
	if err := json.Unmarshal([]byte(colors), &pal); err != nil {
		return SavedPalette{}, fmt.Errorf("decode colors for %s: %w", p.Name, err)
	}
	p.Colors = pal
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return SavedPalette{}, fmt.Errorf("decode created_at for %s: %w", p.Name, err)
	}
	p.CreatedAt = t
	return p, nil
}
