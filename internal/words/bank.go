package words

import (
	"errors"
	"fmt"

	"github.com/lox/impostor/internal/randutil"
)

// ErrEmptyDataset is returned when there is nothing to select from at all.
var ErrEmptyDataset = errors.New("word dataset is empty")

// Bank provides the candidate words for a round.
type Bank interface {
	DefaultEntries() []Entry
	CustomEntries() ([]Entry, error)
}

// StaticBank is an in-memory Bank.
type StaticBank struct {
	Defaults []Entry
	Custom   []Entry
}

// NewStaticBank returns a bank over the built-in dataset and the given custom entries.
func NewStaticBank(custom ...Entry) *StaticBank {
	return &StaticBank{Defaults: Default(), Custom: custom}
}

func (b *StaticBank) DefaultEntries() []Entry { return b.Defaults }

func (b *StaticBank) CustomEntries() ([]Entry, error) { return b.Custom, nil }

// Selection is the word picked for a round.
type Selection struct {
	Entry Entry
	// Custom is true when the entry came from the custom list.
	Custom bool
	// Fallback is true when custom words were requested but none existed,
	// so the default list was used instead.
	Fallback bool
}

// Select picks a word uniformly from the custom entries when customMode is set
// and the custom list is non-empty, otherwise uniformly from the defaults.
func Select(bank Bank, customMode bool, rng randutil.Source) (Selection, error) {
	var sel Selection
	if customMode {
		custom, err := bank.CustomEntries()
		if err != nil {
			return Selection{}, fmt.Errorf("failed to load custom words: %w", err)
		}
		if len(custom) > 0 {
			sel.Entry = randutil.Choice(rng, custom)
			sel.Custom = true
			return sel, nil
		}
		sel.Fallback = true
	}

	defaults := bank.DefaultEntries()
	if len(defaults) == 0 {
		return Selection{}, ErrEmptyDataset
	}
	sel.Entry = randutil.Choice(rng, defaults)
	return sel, nil
}
