package nav

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nextlevelbuilder/mathbot/internal/catalog"
)

func newTestController(t *testing.T, maxUnitLen int) *Controller {
	t.Helper()

	store, err := catalog.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.SeedIfEmpty(context.Background(), catalog.DefaultSeed()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return New(store, maxUnitLen)
}

func TestRootMenu(t *testing.T) {
	ctrl := newTestController(t, 4000)

	units := ctrl.RootMenu(context.Background())
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}

	// 5 section rows plus the fixed quote/search row.
	if len(units[0].Keyboard) != 6 {
		t.Fatalf("expected 6 keyboard rows, got %d", len(units[0].Keyboard))
	}
	first := units[0].Keyboard[0][0]
	if first.Label != "📐 Аксиомы" {
		t.Errorf("first section button = %q, want the axioms section", first.Label)
	}
	if first.Action.String() != "section_1" {
		t.Errorf("first section action = %q, want section_1", first.Action.String())
	}
	last := units[0].Keyboard[5]
	if len(last) != 2 || last[0].Action.Kind != KindRandomQuote || last[1].Action.Kind != KindSearch {
		t.Errorf("last row must be the quote/search pair, got %+v", last)
	}
}

func TestSectionListsMaterials(t *testing.T) {
	ctrl := newTestController(t, 4000)

	units := ctrl.Section(context.Background(), 3)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.Contains(units[0].Text, "Предел последовательности") {
		t.Errorf("section header missing: %q", units[0].Text)
	}
	// 4 materials in the limits section plus the back row.
	if len(units[0].Keyboard) != 5 {
		t.Fatalf("expected 5 keyboard rows, got %d", len(units[0].Keyboard))
	}
}

func TestSectionUnknownFallsBack(t *testing.T) {
	ctrl := newTestController(t, 4000)

	units := ctrl.Section(context.Background(), 999)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.Contains(units[0].Text, "нет материалов") {
		t.Errorf("expected the no-materials notice, got %q", units[0].Text)
	}
}

func TestMaterialPaginatedFirstUnitKeyboard(t *testing.T) {
	// Small limit forces every seeded material into multiple units.
	const limit = 200
	ctrl := newTestController(t, limit)

	units := ctrl.Material(context.Background(), 8)
	if len(units) < 2 {
		t.Fatalf("expected multiple units at limit %d, got %d", limit, len(units))
	}

	if units[0].Keyboard == nil {
		t.Error("first unit must carry the navigation keyboard")
	}
	for i, unit := range units[1:] {
		if unit.Keyboard != nil {
			t.Errorf("continuation unit %d must not carry a keyboard", i+1)
		}
		if got := utf8.RuneCountInString(unit.Text); got > limit {
			t.Errorf("unit %d length %d exceeds limit", i+1, got)
		}
	}

	back := units[0].Keyboard[0][0]
	if back.Action.Kind != KindSection || back.Action.ID != 3 {
		t.Errorf("back button must target the owning section, got %+v", back.Action)
	}
	if !strings.Contains(back.Label, "Предел последовательности") {
		t.Errorf("back button label should carry the section name, got %q", back.Label)
	}
}

func TestMaterialNotFound(t *testing.T) {
	ctrl := newTestController(t, 4000)

	units := ctrl.Material(context.Background(), 12345)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.Contains(units[0].Text, "не найден") {
		t.Errorf("expected a not-found notice, got %q", units[0].Text)
	}
}

func TestRandomQuoteUnit(t *testing.T) {
	ctrl := newTestController(t, 4000)

	units := ctrl.RandomQuote(context.Background())
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.Contains(units[0].Text, "«") || !strings.Contains(units[0].Text, "—") {
		t.Errorf("quote formatting missing: %q", units[0].Text)
	}
}

func TestSearchBlankQuery(t *testing.T) {
	ctrl := newTestController(t, 4000)

	for _, query := range []string{"", "   ", "\n\t"} {
		units := ctrl.Search(context.Background(), query)
		if len(units) != 1 || !strings.Contains(units[0].Text, "/search") {
			t.Errorf("blank query %q: expected the usage prompt, got %+v", query, units)
		}
	}
}

func TestSearchFindsMaterial(t *testing.T) {
	ctrl := newTestController(t, 4000)

	for _, query := range []string{"предел", "ПРЕДЕЛ", "Предел"} {
		units := ctrl.Search(context.Background(), query)
		if len(units) != 1 {
			t.Fatalf("query %q: expected 1 unit, got %d", query, len(units))
		}
		if !strings.Contains(units[0].Text, "Определение предела") {
			t.Errorf("query %q: results missing the limit definition: %q", query, units[0].Text)
		}
	}
}

func TestSearchNoMatches(t *testing.T) {
	ctrl := newTestController(t, 4000)

	units := ctrl.Search(context.Background(), "квантовая хромодинамика")
	if len(units) != 1 || !strings.Contains(units[0].Text, "ничего не найдено") {
		t.Errorf("expected a nothing-found notice, got %+v", units)
	}
}

func TestSearchOverflowSummarized(t *testing.T) {
	ctrl := newTestController(t, 4000)

	// Single Cyrillic "о" appears in far more than five materials.
	units := ctrl.Search(context.Background(), "о")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.Contains(units[0].Text, "и ещё") {
		t.Errorf("expected a remainder summary, got %q", units[0].Text)
	}
	// 5 result rows plus the back row.
	if len(units[0].Keyboard) != 6 {
		t.Errorf("expected 6 keyboard rows, got %d", len(units[0].Keyboard))
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short", "короткий текст", "короткий текст"},
		{"newlines flattened", "a\nb\nc", "a b c"},
		{"exactly 100", strings.Repeat("x", 100), strings.Repeat("x", 100)},
		{"truncated", strings.Repeat("x", 150), strings.Repeat("x", 100) + "…"},
		{"cyrillic truncated", strings.Repeat("ф", 101), strings.Repeat("ф", 100) + "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preview(tt.content); got != tt.want {
				t.Errorf("preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`a < b & "c" > d`)
	want := `a &lt; b &amp; "c" &gt; d`
	if got != want {
		t.Errorf("EscapeHTML = %q, want %q", got, want)
	}
}
