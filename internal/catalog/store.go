// Package catalog implements the content catalog: sections, materials and
// quotes stored in SQLite, with substring search over material text.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when a section or material id has no row.
	ErrNotFound = errors.New("catalog: not found")

	// ErrEmptyCatalog is returned when an operation needs at least one row
	// (e.g. a random quote) and the catalog has none.
	ErrEmptyCatalog = errors.New("catalog: empty")
)

// Store provides read access to the catalog and one-time seeding.
type Store struct {
	db *sqlx.DB
}

// Open opens (or creates) the catalog database at the given path and
// initializes the schema.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("catalog store opened", "path", path)
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS materials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			section_id INTEGER NOT NULL REFERENCES sections(id),
			title TEXT NOT NULL,
			content TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_materials_section ON materials(section_id)`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			author TEXT NOT NULL,
			quote_text TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:min(len(stmt), 60)], err)
		}
	}

	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListSections returns all sections ordered by id. An unseeded store yields
// an empty slice, not an error.
func (s *Store) ListSections(ctx context.Context) ([]Section, error) {
	var sections []Section
	err := s.db.SelectContext(ctx, &sections,
		`SELECT id, name, description FROM sections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// SectionByID returns a single section, or ErrNotFound.
func (s *Store) SectionByID(ctx context.Context, id int64) (*Section, error) {
	var sec Section
	err := s.db.GetContext(ctx, &sec,
		`SELECT id, name, description FROM sections WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get section %d: %w", id, err)
	}
	return &sec, nil
}

// MaterialsBySection returns the materials of a section ordered by id.
// Unknown or empty sections yield an empty slice.
func (s *Store) MaterialsBySection(ctx context.Context, sectionID int64) ([]Material, error) {
	var materials []Material
	err := s.db.SelectContext(ctx, &materials,
		`SELECT id, section_id, title, content FROM materials WHERE section_id = ? ORDER BY id`,
		sectionID)
	if err != nil {
		return nil, fmt.Errorf("materials for section %d: %w", sectionID, err)
	}
	return materials, nil
}

// MaterialByID returns a material joined with its owning section, or
// ErrNotFound.
func (s *Store) MaterialByID(ctx context.Context, id int64) (*MaterialRef, error) {
	var ref MaterialRef
	err := s.db.GetContext(ctx, &ref,
		`SELECT m.id, m.section_id, m.title, m.content, s.name AS section_name
		 FROM materials m JOIN sections s ON s.id = m.section_id
		 WHERE m.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get material %d: %w", id, err)
	}
	return &ref, nil
}

// RandomQuote returns one quote drawn uniformly at random, or ErrEmptyCatalog
// when none are seeded. Selection is count + random offset rather than
// ORDER BY RANDOM(), so it never sorts the whole table.
func (s *Store) RandomQuote(ctx context.Context) (*Quote, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quotes`); err != nil {
		return nil, fmt.Errorf("count quotes: %w", err)
	}
	if count == 0 {
		return nil, ErrEmptyCatalog
	}

	var q Quote
	err := s.db.GetContext(ctx, &q,
		`SELECT id, author, quote_text FROM quotes ORDER BY id LIMIT 1 OFFSET ?`,
		rand.Int64N(count))
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// SearchMaterials returns every material whose title or content contains the
// query as a contiguous, case-insensitive substring, ordered by material id.
// The whole query is one literal substring; there is no tokenization. An
// empty query matches everything — callers that want "no results" semantics
// for blank input must guard before calling.
//
// Matching runs in Go rather than with LIKE: SQLite's LOWER() only folds
// ASCII, and the catalog is small and fixed, so a full scan with proper
// Unicode folding is both correct for Cyrillic queries and cheap.
func (s *Store) SearchMaterials(ctx context.Context, query string) ([]MaterialRef, error) {
	var refs []MaterialRef
	err := s.db.SelectContext(ctx, &refs,
		`SELECT m.id, m.section_id, m.title, m.content, s.name AS section_name
		 FROM materials m JOIN sections s ON s.id = m.section_id
		 ORDER BY m.id`)
	if err != nil {
		return nil, fmt.Errorf("search materials: %w", err)
	}

	needle := strings.ToLower(query)
	matched := refs[:0]
	for _, ref := range refs {
		if strings.Contains(strings.ToLower(ref.Title), needle) ||
			strings.Contains(strings.ToLower(ref.Content), needle) {
			matched = append(matched, ref)
		}
	}
	return matched, nil
}

// Counts reports how many sections, materials and quotes are stored.
func (s *Store) Counts(ctx context.Context) (sections, materials, quotes int64, err error) {
	if err = s.db.GetContext(ctx, &sections, `SELECT COUNT(*) FROM sections`); err != nil {
		return 0, 0, 0, fmt.Errorf("count sections: %w", err)
	}
	if err = s.db.GetContext(ctx, &materials, `SELECT COUNT(*) FROM materials`); err != nil {
		return 0, 0, 0, fmt.Errorf("count materials: %w", err)
	}
	if err = s.db.GetContext(ctx, &quotes, `SELECT COUNT(*) FROM quotes`); err != nil {
		return 0, 0, 0, fmt.Errorf("count quotes: %w", err)
	}
	return sections, materials, quotes, nil
}
