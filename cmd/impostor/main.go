package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/impostor/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Config string    `short:"c" default:"${config_file}" help:"Path to the HCL config file"`
	Out    io.Writer `kong:"-"`
}

func (g *Globals) load() (*config.Config, error) {
	return config.Load(g.Config)
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a round on this device"`
	Words    WordsCmd         `cmd:"" help:"Manage the custom word bank"`
	Groups   GroupsCmd        `cmd:"" help:"Manage saved player groups"`
	Simulate SimulateCmd      `cmd:"" help:"Play many rounds headlessly and report role statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("impostor"),
		kong.Description("Pass-and-play word game: find the impostor who doesn't know the secret word"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
