package models

import "fmt"

// Gitmoji is one entry of the carloscuesta gitmoji catalog.
type Gitmoji struct {
	Code        string `json:"code"`
	Emoji       string `json:"emoji"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Label renders the entry the way the selection prompt displays it.
func (g Gitmoji) Label() string {
	return fmt.Sprintf("%s - %s", g.Emoji, g.Description)
}

// EmojiFormat controls whether commit titles carry the textual code
// (":sparkles:") or the unicode character itself.
type EmojiFormat string

const (
	FormatCode  EmojiFormat = "code"
	FormatGlyph EmojiFormat = "glyph"
)

// Marker returns the title prefix for the entry under the given format.
func (g Gitmoji) Marker(format EmojiFormat) string {
	if format == FormatGlyph {
		return g.Emoji
	}
	return g.Code
}
