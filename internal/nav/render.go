package nav

import "strings"

// Unit is one message-sized piece of rendered output together with the
// controls shown under it. Text is Telegram-flavored HTML; all raw catalog
// content placed into it has been escaped.
type Unit struct {
	Text     string
	Keyboard [][]Button
}

// Button is a labeled control that triggers an Action when selected.
type Button struct {
	Label  string
	Action Action
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeHTML escapes raw content for embedding in HTML-formatted messages.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
