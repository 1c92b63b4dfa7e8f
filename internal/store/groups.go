package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/lox/impostor/internal/game"
)

type groupFile struct {
	Groups []groupBlock `hcl:"group,block"`
}

type groupBlock struct {
	Name      string   `hcl:"name,label"`
	Players   []string `hcl:"players"`
	CreatedAt string   `hcl:"created_at,optional"`
}

// Group is a named, reusable player list.
type Group struct {
	Name      string
	Players   []string
	CreatedAt time.Time
}

// GroupStore keeps named player groups, newest first.
type GroupStore struct {
	mu    sync.Mutex
	path  string
	clock quartz.Clock
}

// NewGroupStore returns a store backed by path.
func NewGroupStore(path string, clock quartz.Clock) *GroupStore {
	return &GroupStore{path: path, clock: clock}
}

// Path returns the backing file.
func (s *GroupStore) Path() string { return s.path }

// List returns every group, newest first.
func (s *GroupStore) List() ([]Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocks, err := s.load()
	if err != nil {
		return nil, err
	}
	groups := make([]Group, len(blocks))
	for i, b := range blocks {
		groups[i] = Group{Name: b.Name, Players: b.Players, CreatedAt: parseTime(b.CreatedAt)}
	}
	return groups, nil
}

// Get returns the group called name.
func (s *GroupStore) Get(name string) (Group, bool, error) {
	groups, err := s.List()
	if err != nil {
		return Group{}, false, err
	}
	name = strings.TrimSpace(name)
	for _, g := range groups {
		if g.Name == name {
			return g, true, nil
		}
	}
	return Group{}, false, nil
}

// Save stores players under name, replacing the list of an existing group
// in place.
func (s *GroupStore) Save(name string, players []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrGroupNameRequired
	}
	var cleaned []string
	for _, p := range players {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) < game.MinPlayers {
		return &game.ValidationError{
			Field:  "players",
			Reason: fmt.Sprintf("a group needs at least %d players, got %d", game.MinPlayers, len(cleaned)),
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blocks, err := s.load()
	if err != nil {
		return err
	}
	for i := range blocks {
		if blocks[i].Name == name {
			blocks[i].Players = cleaned
			return s.save(blocks)
		}
	}
	added := groupBlock{Name: name, Players: cleaned, CreatedAt: formatTime(s.clock.Now())}
	return s.save(append([]groupBlock{added}, blocks...))
}

// Delete removes a group. It reports whether the group existed.
func (s *GroupStore) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocks, err := s.load()
	if err != nil {
		return false, err
	}
	name = strings.TrimSpace(name)
	kept := blocks[:0]
	for _, b := range blocks {
		if b.Name != name {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(blocks) {
		return false, nil
	}
	return true, s.save(kept)
}

func (s *GroupStore) load() ([]groupBlock, error) {
	var f groupFile
	if err := decodeFile(s.path, &f); err != nil {
		return nil, err
	}
	return f.Groups, nil
}

func (s *GroupStore) save(blocks []groupBlock) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, b := range blocks {
		if i > 0 {
			body.AppendNewline()
		}
		blk := body.AppendNewBlock("group", []string{b.Name}).Body()
		blk.SetAttributeValue("players", stringList(b.Players))
		if b.CreatedAt != "" {
			blk.SetAttributeValue("created_at", cty.StringVal(b.CreatedAt))
		}
	}
	return writeFile(s.path, f)
}
