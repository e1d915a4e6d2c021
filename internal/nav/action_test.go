package nav

import (
	"errors"
	"testing"
)

func TestActionRoundTrip(t *testing.T) {
	tests := []Action{
		{Kind: KindRootMenu},
		{Kind: KindRandomQuote},
		{Kind: KindSearch},
		{Kind: KindSection, ID: 1},
		{Kind: KindSection, ID: 42},
		{Kind: KindMaterial, ID: 17},
	}

	for _, action := range tests {
		t.Run(action.String(), func(t *testing.T) {
			parsed, err := ParseAction(action.String())
			if err != nil {
				t.Fatalf("ParseAction(%q): %v", action.String(), err)
			}
			if parsed != action {
				t.Errorf("round trip: got %+v, want %+v", parsed, action)
			}
		})
	}
}

func TestActionEncoding(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{Action{Kind: KindRootMenu}, "main_menu"},
		{Action{Kind: KindSection, ID: 3}, "section_3"},
		{Action{Kind: KindMaterial, ID: 7}, "material_7"},
		{Action{Kind: KindRandomQuote}, "random_quote"},
		{Action{Kind: KindSearch}, "search"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestParseActionMalformed(t *testing.T) {
	malformed := []string{
		"",
		"bogus",
		"section_",
		"section_abc",
		"section_1x",
		"section_-3",
		"material_0",
		"material_9999999999999999999999",
		"SECTION_1",
		"main_menu ",
	}

	for _, data := range malformed {
		if _, err := ParseAction(data); !errors.Is(err, ErrBadAction) {
			t.Errorf("ParseAction(%q): expected ErrBadAction, got %v", data, err)
		}
	}
}
