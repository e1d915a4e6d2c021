package catalog

// Section is a top-level topic grouping materials. Sections are created once
// at seed time and are immutable afterwards; their ids define menu order.
type Section struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

// Material is a single piece of study content belonging to exactly one section.
type Material struct {
	ID        int64  `db:"id"`
	SectionID int64  `db:"section_id"`
	Title     string `db:"title"`
	Content   string `db:"content"`
}

// MaterialRef is a material joined with its owning section. The section id and
// name are carried through the query so callers never have to resolve a
// section by name.
type MaterialRef struct {
	Material
	SectionName string `db:"section_name"`
}

// Quote is a standalone attributed snippet, unrelated to sections.
type Quote struct {
	ID     int64  `db:"id"`
	Author string `db:"author"`
	Text   string `db:"quote_text"`
}
