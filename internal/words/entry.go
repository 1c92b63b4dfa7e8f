// Package words holds the secret word records and the rules for picking one
// for a round.
package words

import (
	"fmt"
	"strings"
)

// MinHints is the smallest hint pool a word may carry.
const MinHints = 3

// ValidationError reports malformed user or dataset input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Entry is a secret word and its hint pool. The zero value is not valid;
// build entries with New.
type Entry struct {
	word  string
	hints []string
}

// New trims and validates a word and its hints.
func New(word string, hints []string) (Entry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return Entry{}, &ValidationError{Field: "word", Reason: "must not be empty"}
	}
	if len(hints) < MinHints {
		return Entry{}, &ValidationError{
			Field:  "hints",
			Reason: fmt.Sprintf("%q needs at least %d hints, got %d", word, MinHints, len(hints)),
		}
	}

	cleaned := make([]string, len(hints))
	for i, h := range hints {
		h = strings.TrimSpace(h)
		if h == "" {
			return Entry{}, &ValidationError{
				Field:  "hints",
				Reason: fmt.Sprintf("hint %d of %q is empty", i+1, word),
			}
		}
		cleaned[i] = h
	}

	return Entry{word: word, hints: cleaned}, nil
}

// MustNew is New for static datasets; it panics on invalid input.
func MustNew(word string, hints ...string) Entry {
	e, err := New(word, hints)
	if err != nil {
		panic(err)
	}
	return e
}

// Word returns the secret word.
func (e Entry) Word() string { return e.word }

// Hints returns a copy of the hint pool.
func (e Entry) Hints() []string {
	return append([]string(nil), e.hints...)
}

// HintCount returns the size of the hint pool.
func (e Entry) HintCount() int { return len(e.hints) }

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.word, strings.Join(e.hints, ", "))
}

// ParseHints splits a comma separated hint list, dropping blank items.
func ParseHints(s string) []string {
	var hints []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			hints = append(hints, part)
		}
	}
	return hints
}
