package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

var CLI struct {
	Config  string     `help:"Configuration file path" default:"willow.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Check   CheckCmd   `cmd:"" help:"Check stylesheet sources for syntax errors"`
	Parse   ParseCmd   `cmd:"" help:"Parse a stylesheet and dump its tree"`
	Doc     DocCmd     `cmd:"" help:"Generate HTML documentation from loud comments"`
	Init    InitCmd    `cmd:"" help:"Initialize a new Willow project"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

func (cmd *VersionCmd) Run() error {
	fmt.Println("Willow v" + version())
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
