package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	store := newTestStore(t)
	if err := store.SeedIfEmpty(context.Background(), DefaultSeed()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestSeedIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SeedIfEmpty(ctx, DefaultSeed()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	s1, m1, q1, err := store.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}

	if err := store.SeedIfEmpty(ctx, DefaultSeed()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	s2, m2, q2, err := store.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}

	if s1 != s2 || m1 != m2 || q1 != q2 {
		t.Errorf("second seed changed counts: (%d,%d,%d) -> (%d,%d,%d)", s1, m1, q1, s2, m2, q2)
	}
	if s1 != 5 || m1 != 17 || q1 != 10 {
		t.Errorf("seeded counts = (%d,%d,%d), want (5,17,10)", s1, m1, q1)
	}
}

func TestListSectionsOrdered(t *testing.T) {
	store := newSeededStore(t)

	sections, err := store.ListSections(context.Background())
	if err != nil {
		t.Fatalf("list sections: %v", err)
	}
	if len(sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(sections))
	}
	if sections[0].Name != "📐 Аксиомы" {
		t.Errorf("first section = %q, want the axioms section", sections[0].Name)
	}
	for i := 1; i < len(sections); i++ {
		if sections[i].ID <= sections[i-1].ID {
			t.Errorf("sections not ordered by id: %d after %d", sections[i].ID, sections[i-1].ID)
		}
	}
}

func TestListSectionsUnseeded(t *testing.T) {
	store := newTestStore(t)

	sections, err := store.ListSections(context.Background())
	if err != nil {
		t.Fatalf("unseeded list must not fail: %v", err)
	}
	if len(sections) != 0 {
		t.Errorf("expected empty slice, got %d sections", len(sections))
	}
}

func TestMaterialSectionNameConsistent(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	sections, err := store.ListSections(ctx)
	if err != nil {
		t.Fatalf("list sections: %v", err)
	}
	byID := make(map[int64]string, len(sections))
	for _, sec := range sections {
		byID[sec.ID] = sec.Name
	}

	for _, m := range DefaultSeed().Materials {
		ref, err := store.MaterialByID(ctx, m.ID)
		if err != nil {
			t.Fatalf("material %d: %v", m.ID, err)
		}
		if ref.SectionName != byID[ref.SectionID] {
			t.Errorf("material %d: section name %q, want %q", m.ID, ref.SectionName, byID[ref.SectionID])
		}
		if ref.SectionID != m.SectionID {
			t.Errorf("material %d: section id %d, want %d", m.ID, ref.SectionID, m.SectionID)
		}
	}
}

func TestMaterialNotFound(t *testing.T) {
	store := newSeededStore(t)

	if _, err := store.MaterialByID(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMaterialsByUnknownSection(t *testing.T) {
	store := newSeededStore(t)

	materials, err := store.MaterialsBySection(context.Background(), 999)
	if err != nil {
		t.Fatalf("unknown section must not fail: %v", err)
	}
	if len(materials) != 0 {
		t.Errorf("expected no materials, got %d", len(materials))
	}
}

func TestSearchMaterialsSubstringSemantics(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	for _, query := range []string{"предел", "ПРЕДЕЛ", "аксиом", "индукци", "е"} {
		refs, err := store.SearchMaterials(ctx, query)
		if err != nil {
			t.Fatalf("search %q: %v", query, err)
		}

		needle := strings.ToLower(query)
		got := make(map[int64]bool, len(refs))
		for i, ref := range refs {
			got[ref.ID] = true
			// Soundness: every hit contains the substring.
			if !strings.Contains(strings.ToLower(ref.Title), needle) &&
				!strings.Contains(strings.ToLower(ref.Content), needle) {
				t.Errorf("query %q: material %d does not contain it", query, ref.ID)
			}
			// Deterministic order: material id ascending.
			if i > 0 && refs[i].ID <= refs[i-1].ID {
				t.Errorf("query %q: results not ordered by id", query)
			}
		}

		// Completeness: every seeded material containing the substring is a hit.
		for _, m := range DefaultSeed().Materials {
			want := strings.Contains(strings.ToLower(m.Title), needle) ||
				strings.Contains(strings.ToLower(m.Content), needle)
			if want != got[m.ID] {
				t.Errorf("query %q: material %d present=%v, want %v", query, m.ID, got[m.ID], want)
			}
		}
	}
}

func TestSearchDoesNotMatchQuotes(t *testing.T) {
	store := newSeededStore(t)

	// Quote authors are not material text.
	refs, err := store.SearchMaterials(context.Background(), "Ковалевская")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("quote-only author matched %d materials", len(refs))
	}
}

func TestRandomQuote(t *testing.T) {
	store := newSeededStore(t)

	seen := make(map[int64]bool)
	for range 50 {
		q, err := store.RandomQuote(context.Background())
		if err != nil {
			t.Fatalf("random quote: %v", err)
		}
		if q.Author == "" || q.Text == "" {
			t.Fatalf("incomplete quote: %+v", q)
		}
		seen[q.ID] = true
	}
	if len(seen) < 2 {
		t.Errorf("50 draws hit only %d distinct quotes", len(seen))
	}
}

func TestRandomQuoteEmptyCatalog(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.RandomQuote(context.Background()); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}
