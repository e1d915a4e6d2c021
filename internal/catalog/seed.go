package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Seed is the fixed initial dataset inserted on first startup.
type Seed struct {
	Sections  []Section
	Materials []Material
	Quotes    []Quote
}

// SeedIfEmpty inserts the dataset only when the store has zero sections.
// The count check and the inserts run in one transaction, so concurrent
// first startups cannot double-insert and a partial write never survives.
// Safe to call on every startup.
func (s *Store) SeedIfEmpty(ctx context.Context, seed Seed) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	var count int64
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM sections`); err != nil {
		return fmt.Errorf("check sections: %w", err)
	}
	if count > 0 {
		slog.Debug("catalog already seeded", "sections", count)
		return nil
	}

	for _, sec := range seed.Sections {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sections (id, name, description) VALUES (?, ?, ?)`,
			sec.ID, sec.Name, sec.Description); err != nil {
			return fmt.Errorf("insert section %q: %w", sec.Name, err)
		}
	}
	for _, m := range seed.Materials {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO materials (id, section_id, title, content) VALUES (?, ?, ?, ?)`,
			m.ID, m.SectionID, m.Title, m.Content); err != nil {
			return fmt.Errorf("insert material %q: %w", m.Title, err)
		}
	}
	for _, q := range seed.Quotes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO quotes (id, author, quote_text) VALUES (?, ?, ?)`,
			q.ID, q.Author, q.Text); err != nil {
			return fmt.Errorf("insert quote by %q: %w", q.Author, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	slog.Info("catalog seeded",
		"sections", len(seed.Sections),
		"materials", len(seed.Materials),
		"quotes", len(seed.Quotes),
	)
	return nil
}
