package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadAction is returned for callback data that does not encode a known
// action. Handlers report it to the user as a generic failure, never a crash.
var ErrBadAction = errors.New("nav: malformed action")

// ActionKind enumerates the intents a navigable control can trigger.
type ActionKind int

const (
	KindRootMenu ActionKind = iota
	KindSection
	KindMaterial
	KindRandomQuote
	KindSearch
)

// Action is a decoded navigable control: an intent plus its parameter.
// Section and material actions carry the target id; the rest have no
// parameter.
type Action struct {
	Kind ActionKind
	ID   int64
}

// String encodes the action as callback data ("section_3", "material_7",
// "main_menu", "random_quote", "search").
func (a Action) String() string {
	switch a.Kind {
	case KindSection:
		return fmt.Sprintf("section_%d", a.ID)
	case KindMaterial:
		return fmt.Sprintf("material_%d", a.ID)
	case KindRandomQuote:
		return "random_quote"
	case KindSearch:
		return "search"
	default:
		return "main_menu"
	}
}

// ParseAction decodes callback data back into an Action. Unknown prefixes,
// missing ids and non-numeric ids all yield ErrBadAction.
func ParseAction(data string) (Action, error) {
	switch data {
	case "main_menu":
		return Action{Kind: KindRootMenu}, nil
	case "random_quote":
		return Action{Kind: KindRandomQuote}, nil
	case "search":
		return Action{Kind: KindSearch}, nil
	}

	var kind ActionKind
	var raw string
	switch {
	case strings.HasPrefix(data, "section_"):
		kind, raw = KindSection, strings.TrimPrefix(data, "section_")
	case strings.HasPrefix(data, "material_"):
		kind, raw = KindMaterial, strings.TrimPrefix(data, "material_")
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrBadAction, data)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return Action{}, fmt.Errorf("%w: %q", ErrBadAction, data)
	}
	return Action{Kind: kind, ID: id}, nil
}
