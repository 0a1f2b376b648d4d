package models

import "strings"

// CommitDraft holds the pieces of one in-progress commit message.
// It lives for a single run of the commit flow and is discarded after.
type CommitDraft struct {
	Entry  Gitmoji
	Format EmojiFormat
	Scope  string
	Title  string
	Body   string
	Issue  string
}

// CommitTitle assembles the final commit title:
// "<marker> [<scope>: ]<title>[ (<issue>)]"
func (d CommitDraft) CommitTitle() string {
	var b strings.Builder
	b.WriteString(d.Entry.Marker(d.Format))
	b.WriteString(" ")
	if d.Scope != "" {
		b.WriteString(d.Scope)
		b.WriteString(": ")
	}
	b.WriteString(d.Title)
	if d.Issue != "" {
		b.WriteString(" (")
		b.WriteString(d.Issue)
		b.WriteString(")")
	}
	return b.String()
}

// ValidCommitText reports whether text is safe to hand to the git CLI.
// Backticks break the quoting contract; required fields must be non-empty.
func ValidCommitText(text string, required bool) bool {
	if required && text == "" {
		return false
	}
	return !strings.Contains(text, "`")
}
