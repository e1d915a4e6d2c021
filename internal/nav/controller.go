// Package nav maps user intents onto catalog reads and renders the results
// as presentation units with navigable controls. The controller is stateless:
// each intent is one logical read, and every failure is converted into a
// rendered message rather than propagated.
package nav

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nextlevelbuilder/mathbot/internal/catalog"
	"github.com/nextlevelbuilder/mathbot/internal/paginate"
)

const (
	// searchMaxResults is how many matches are rendered individually;
	// the rest are summarized as a count.
	searchMaxResults = 5

	// searchPreviewLen is the max preview length (runes) per result.
	searchPreviewLen = 100
)

// Controller resolves intents against the catalog store.
type Controller struct {
	store      *catalog.Store
	maxUnitLen int
}

// New creates a controller. maxUnitLen is the transport's per-message size
// ceiling used when paginating material content.
func New(store *catalog.Store, maxUnitLen int) *Controller {
	return &Controller{store: store, maxUnitLen: maxUnitLen}
}

// RootMenu renders the section list plus the fixed quote/search entries.
func (c *Controller) RootMenu(ctx context.Context) []Unit {
	sections, err := c.store.ListSections(ctx)
	if err != nil {
		return c.failure("list sections", err)
	}
	if len(sections) == 0 {
		return []Unit{{Text: "Каталог пока пуст. Загляните позже."}}
	}

	var kb [][]Button
	for _, sec := range sections {
		kb = append(kb, []Button{{Label: sec.Name, Action: Action{Kind: KindSection, ID: sec.ID}}})
	}
	kb = append(kb, []Button{
		{Label: "💬 Случайная цитата", Action: Action{Kind: KindRandomQuote}},
		{Label: "🔎 Поиск", Action: Action{Kind: KindSearch}},
	})

	return []Unit{{
		Text:     "📚 <b>Главное меню</b>\n\nВыберите раздел:",
		Keyboard: kb,
	}}
}

// Section renders a section's material list. An unknown section falls back to
// a generic label instead of failing.
func (c *Controller) Section(ctx context.Context, id int64) []Unit {
	name, description := "Раздел", ""
	sec, err := c.store.SectionByID(ctx, id)
	switch {
	case err == nil:
		name, description = sec.Name, sec.Description
	case errors.Is(err, catalog.ErrNotFound):
		// keep the generic label
	default:
		return c.failure("get section", err)
	}

	materials, err := c.store.MaterialsBySection(ctx, id)
	if err != nil {
		return c.failure("list materials", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", EscapeHTML(name))
	if description != "" {
		b.WriteString(EscapeHTML(description))
		b.WriteString("\n")
	}

	var kb [][]Button
	if len(materials) == 0 {
		b.WriteString("\nВ этом разделе пока нет материалов.")
	} else {
		b.WriteString("\nВыберите материал:")
		for _, m := range materials {
			kb = append(kb, []Button{{Label: m.Title, Action: Action{Kind: KindMaterial, ID: m.ID}}})
		}
	}
	kb = append(kb, []Button{{Label: "⬅️ В меню", Action: Action{Kind: KindRootMenu}}})

	return []Unit{{Text: b.String(), Keyboard: kb}}
}

// Material renders a material's full content, paginated to the transport
// ceiling. Back navigation is attached to the first unit only.
func (c *Controller) Material(ctx context.Context, id int64) []Unit {
	ref, err := c.store.MaterialByID(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return []Unit{{
			Text:     "❌ Материал не найден.",
			Keyboard: [][]Button{{{Label: "⬅️ В меню", Action: Action{Kind: KindRootMenu}}}},
		}}
	}
	if err != nil {
		return c.failure("get material", err)
	}

	header := fmt.Sprintf("<b>%s</b>\n\n", EscapeHTML(ref.Title))
	texts := paginate.Paginate(header, EscapeHTML(ref.Content), c.maxUnitLen)

	units := make([]Unit, len(texts))
	for i, text := range texts {
		units[i] = Unit{Text: text}
	}
	units[0].Keyboard = [][]Button{{
		{Label: "⬅️ " + ref.SectionName, Action: Action{Kind: KindSection, ID: ref.SectionID}},
		{Label: "🏠 В меню", Action: Action{Kind: KindRootMenu}},
	}}
	return units
}

// RandomQuote renders one uniformly random quote.
func (c *Controller) RandomQuote(ctx context.Context) []Unit {
	q, err := c.store.RandomQuote(ctx)
	if errors.Is(err, catalog.ErrEmptyCatalog) {
		return []Unit{{
			Text:     "Цитат пока нет.",
			Keyboard: [][]Button{{{Label: "⬅️ В меню", Action: Action{Kind: KindRootMenu}}}},
		}}
	}
	if err != nil {
		return c.failure("random quote", err)
	}

	return []Unit{{
		Text: fmt.Sprintf("💬 <i>«%s»</i>\n\n— %s", EscapeHTML(q.Text), EscapeHTML(q.Author)),
		Keyboard: [][]Button{{
			{Label: "🔄 Ещё цитату", Action: Action{Kind: KindRandomQuote}},
			{Label: "🏠 В меню", Action: Action{Kind: KindRootMenu}},
		}},
	}}
}

// SearchUsage renders the prompt shown when search is entered without a query.
func (c *Controller) SearchUsage() []Unit {
	return []Unit{{
		Text:     "🔎 Отправьте текст запроса, например: <code>/search предел</code>",
		Keyboard: [][]Button{{{Label: "⬅️ В меню", Action: Action{Kind: KindRootMenu}}}},
	}}
}

// Search renders a preview list of materials matching the query. A blank
// query is rejected here: the store would legitimately match everything on
// an empty substring.
func (c *Controller) Search(ctx context.Context, query string) []Unit {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.SearchUsage()
	}

	refs, err := c.store.SearchMaterials(ctx, query)
	if err != nil {
		return c.failure("search materials", err)
	}

	rootRow := []Button{{Label: "⬅️ В меню", Action: Action{Kind: KindRootMenu}}}
	if len(refs) == 0 {
		return []Unit{{
			Text:     fmt.Sprintf("❌ По запросу «%s» ничего не найдено.", EscapeHTML(query)),
			Keyboard: [][]Button{rootRow},
		}}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔎 Результаты по запросу «%s»:\n\n", EscapeHTML(query))

	shown := refs
	if len(shown) > searchMaxResults {
		shown = shown[:searchMaxResults]
	}

	var kb [][]Button
	for _, ref := range shown {
		fmt.Fprintf(&b, "<b>%s</b> — %s\n%s\n\n",
			EscapeHTML(ref.Title), EscapeHTML(ref.SectionName), EscapeHTML(preview(ref.Content)))
		kb = append(kb, []Button{{Label: ref.Title, Action: Action{Kind: KindMaterial, ID: ref.ID}}})
	}
	if rest := len(refs) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "…и ещё %d.", rest)
	}
	kb = append(kb, rootRow)

	return []Unit{{Text: b.String(), Keyboard: kb}}
}

// preview reduces material content to a single-line excerpt of at most
// searchPreviewLen characters, with an ellipsis when truncated.
func preview(content string) string {
	flat := strings.ReplaceAll(content, "\n", " ")
	runes := []rune(flat)
	if len(runes) <= searchPreviewLen {
		return flat
	}
	return string(runes[:searchPreviewLen]) + "…"
}

// failure logs a store error and renders the generic failure notice; the
// store is retried on the user's next action, never within this intent.
func (c *Controller) failure(op string, err error) []Unit {
	slog.Error("intent failed", "op", op, "error", err)
	return []Unit{{
		Text:     "⚠️ Что-то пошло не так. Попробуйте ещё раз.",
		Keyboard: [][]Button{{{Label: "⬅️ В меню", Action: Action{Kind: KindRootMenu}}}},
	}}
}
