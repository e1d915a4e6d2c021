// Package paginate splits long rendered text into transport-safe units that
// never exceed a configured message-size ceiling.
package paginate

// Paginate combines a rendered header with a body and splits the result into
// units of at most limit characters (runes, so multibyte text is never cut
// mid-character).
//
// The first unit is header + an initial body slice sized to the budget left
// after the header; every following slice is a standalone unit of up to limit
// characters with no header. Concatenating the body portions of all units
// reproduces the body exactly. Zero-length body yields a single header-only
// unit.
//
// The limit is the transport's per-message ceiling and is injected by the
// caller; it must be positive.
func Paginate(header, body string, limit int) []string {
	runes := []rune(body)

	budget := limit - len([]rune(header))
	if budget < 0 {
		budget = 0
	}

	if len(runes) <= budget {
		return []string{header + body}
	}

	units := []string{header + string(runes[:budget])}
	for i := budget; i < len(runes); i += limit {
		end := i + limit
		if end > len(runes) {
			end = len(runes)
		}
		units = append(units, string(runes[i:end]))
	}
	return units
}
