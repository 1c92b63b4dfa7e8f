package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/lox/impostor/internal/words"
)

type wordFile struct {
	Words []wordBlock `hcl:"word,block"`
}

type wordBlock struct {
	Word      string   `hcl:"word,label"`
	Hints     []string `hcl:"hints"`
	CreatedAt string   `hcl:"created_at,optional"`
}

// WordStore is the custom word bank. It implements words.Bank, serving the
// built-in dataset as defaults. The file keeps the newest word first.
type WordStore struct {
	mu    sync.Mutex
	path  string
	clock quartz.Clock
}

// NewWordStore returns a store backed by path. The file is created on first write.
func NewWordStore(path string, clock quartz.Clock) *WordStore {
	return &WordStore{path: path, clock: clock}
}

// Path returns the backing file.
func (s *WordStore) Path() string { return s.path }

// DefaultEntries returns the built-in dataset.
func (s *WordStore) DefaultEntries() []words.Entry { return words.Default() }

// CustomEntries returns the stored words, newest first.
func (s *WordStore) CustomEntries() ([]words.Entry, error) { return s.List() }

// List returns the stored words, newest first.
func (s *WordStore) List() ([]words.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocks, err := s.load()
	if err != nil {
		return nil, err
	}
	entries := make([]words.Entry, 0, len(blocks))
	for _, b := range blocks {
		e, err := words.New(b.Word, b.Hints)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.path, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Add validates and stores a new word. Words are unique ignoring case.
func (s *WordStore) Add(word string, hints []string) (words.Entry, error) {
	entry, err := words.New(word, hints)
	if err != nil {
		return words.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blocks, err := s.load()
	if err != nil {
		return words.Entry{}, err
	}
	for _, b := range blocks {
		if strings.EqualFold(b.Word, entry.Word()) {
			return words.Entry{}, fmt.Errorf("%w: %q", ErrDuplicateWord, entry.Word())
		}
	}

	added := wordBlock{Word: entry.Word(), Hints: entry.Hints(), CreatedAt: formatTime(s.clock.Now())}
	if err := s.save(append([]wordBlock{added}, blocks...)); err != nil {
		return words.Entry{}, err
	}
	return entry, nil
}

// Remove deletes a word, ignoring case. It reports whether anything was removed.
func (s *WordStore) Remove(word string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocks, err := s.load()
	if err != nil {
		return false, err
	}
	word = strings.TrimSpace(word)
	kept := blocks[:0]
	for _, b := range blocks {
		if !strings.EqualFold(b.Word, word) {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(blocks) {
		return false, nil
	}
	return true, s.save(kept)
}

// AddedAt returns when a word was stored, if the file records it.
func (s *WordStore) AddedAt(word string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocks, err := s.load()
	if err != nil {
		return time.Time{}, false, err
	}
	for _, b := range blocks {
		if strings.EqualFold(b.Word, word) {
			t := parseTime(b.CreatedAt)
			return t, !t.IsZero(), nil
		}
	}
	return time.Time{}, false, nil
}

func (s *WordStore) load() ([]wordBlock, error) {
	var f wordFile
	if err := decodeFile(s.path, &f); err != nil {
		return nil, err
	}
	return f.Words, nil
}

func (s *WordStore) save(blocks []wordBlock) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, b := range blocks {
		if i > 0 {
			body.AppendNewline()
		}
		blk := body.AppendNewBlock("word", []string{b.Word}).Body()
		blk.SetAttributeValue("hints", stringList(b.Hints))
		if b.CreatedAt != "" {
			blk.SetAttributeValue("created_at", cty.StringVal(b.CreatedAt))
		}
	}
	return writeFile(s.path, f)
}
