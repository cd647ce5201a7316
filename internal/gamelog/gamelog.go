// Package gamelog is the player-facing message log: an append-only,
// ordered sequence of lines. Message templates are looked up in a gettext
// catalog so the game can be translated; a template with no translation
// is used as-is.
package gamelog

import "github.com/leonelquinteros/gotext"

const domain = "default"

// Log is an append-only list of messages, oldest first.
type Log struct {
	locale  *gotext.Locale
	entries []string
}

// New creates a log translating through the catalog for lang under dir.
// Missing catalogs are not an error; messages then stay untranslated.
func New(dir, lang string) *Log {
	l := gotext.NewLocale(dir, lang)
	l.AddDomain(domain)
	return &Log{locale: l}
}

// Add translates format, fills in args and appends the result.
func (l *Log) Add(format string, args ...any) {
	l.entries = append(l.entries, l.locale.Get(format, args...))
}

// Entries returns a copy of every message, oldest first.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns up to n most recent messages, oldest first.
func (l *Log) Last(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]string, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Len returns the number of messages.
func (l *Log) Len() int {
	return len(l.entries)
}
