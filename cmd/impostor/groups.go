package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/coder/quartz"

	"github.com/lox/impostor/internal/store"
)

type GroupsCmd struct {
	List   GroupsListCmd   `cmd:"" default:"1" help:"List saved player groups"`
	Save   GroupsSaveCmd   `cmd:"" help:"Save or replace a player group"`
	Delete GroupsDeleteCmd `cmd:"" aliases:"rm" help:"Delete a player group"`
}

func openGroups(g *Globals) (*store.GroupStore, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, err
	}
	return store.NewGroupStore(cfg.Storage.GroupsFile, quartz.NewReal()), nil
}

type GroupsListCmd struct{}

func (c *GroupsListCmd) Run(g *Globals) error {
	gs, err := openGroups(g)
	if err != nil {
		return err
	}
	groups, err := gs.List()
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		_, err := fmt.Fprintln(g.out(), "No saved groups")
		return err
	}
	tw := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	for _, grp := range groups {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", grp.Name, len(grp.Players), strings.Join(grp.Players, ", "))
	}
	return tw.Flush()
}

type GroupsSaveCmd struct {
	Name    string   `arg:"" help:"Group name"`
	Players []string `arg:"" help:"Player names in turn order"`
}

func (c *GroupsSaveCmd) Run(g *Globals) error {
	gs, err := openGroups(g)
	if err != nil {
		return err
	}
	if err := gs.Save(c.Name, c.Players); err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.out(), "Saved group %q (%d players)\n", strings.TrimSpace(c.Name), len(c.Players))
	return err
}

type GroupsDeleteCmd struct {
	Name string `arg:"" help:"Group name"`
}

func (c *GroupsDeleteCmd) Run(g *Globals) error {
	gs, err := openGroups(g)
	if err != nil {
		return err
	}
	deleted, err := gs.Delete(c.Name)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("group %q not found", c.Name)
	}
	_, err = fmt.Fprintf(g.out(), "Deleted group %q\n", c.Name)
	return err
}
