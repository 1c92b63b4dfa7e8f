package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/coder/quartz"

	"github.com/lox/impostor/internal/store"
	"github.com/lox/impostor/internal/words"
)

type WordsCmd struct {
	List   WordsListCmd   `cmd:"" default:"1" help:"List custom words, newest first"`
	Add    WordsAddCmd    `cmd:"" help:"Add a custom word"`
	Remove WordsRemoveCmd `cmd:"" aliases:"rm" help:"Remove a custom word"`
}

func openWords(g *Globals) (*store.WordStore, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, err
	}
	return store.NewWordStore(cfg.Storage.WordsFile, quartz.NewReal()), nil
}

type WordsListCmd struct {
	Defaults bool `help:"Show the built-in words instead"`
}

func (c *WordsListCmd) Run(g *Globals) error {
	var entries []words.Entry
	if c.Defaults {
		entries = words.Default()
	} else {
		ws, err := openWords(g)
		if err != nil {
			return err
		}
		if entries, err = ws.List(); err != nil {
			return err
		}
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(g.out(), "No custom words yet. Add one with: impostor words add WORD HINT HINT HINT")
		return err
	}
	tw := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Word(), strings.Join(e.Hints(), ", "))
	}
	return tw.Flush()
}

type WordsAddCmd struct {
	Word  string   `arg:"" help:"The secret word"`
	Hints []string `arg:"" help:"At least three hints; a single comma separated argument works too"`
}

func (c *WordsAddCmd) Run(g *Globals) error {
	ws, err := openWords(g)
	if err != nil {
		return err
	}
	hints := c.Hints
	if len(hints) == 1 {
		hints = words.ParseHints(hints[0])
	}
	entry, err := ws.Add(c.Word, hints)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.out(), "Added %q with %d hints\n", entry.Word(), entry.HintCount())
	return err
}

type WordsRemoveCmd struct {
	Word string `arg:"" help:"The word to remove (case insensitive)"`
}

func (c *WordsRemoveCmd) Run(g *Globals) error {
	ws, err := openWords(g)
	if err != nil {
		return err
	}
	removed, err := ws.Remove(c.Word)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("word %q not found", c.Word)
	}
	_, err = fmt.Fprintf(g.out(), "Removed %q\n", c.Word)
	return err
}
