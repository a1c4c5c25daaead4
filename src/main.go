package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/integrii/flaggy"

	"github.com/militantwalrus/life/src/life"
	"github.com/militantwalrus/life/src/view"
)

//exit codes: 0 normal completion, 1 configuration or seed failure,
//130 (128+SIGINT) user interrupt
const (
	exitConfigError = 1
	exitInterrupted = 130
)

type envOptions struct {
	interactive bool
}

func main() {
	cfg, eo := initOptions()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfigError)
	}

	grid, err := life.NewGrid(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfigError)
	}

	if eo.interactive {
		ui, err := view.NewUI(cfg, grid)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitConfigError)
		}
		if err = ui.Start(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitConfigError)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := life.NewDriver(grid, view.NewConsole(os.Stdout), cfg)
	_, err = d.Run(ctx)
	switch {
	case err == nil:
		fmt.Println("The Game of Life is Over")
	case ctx.Err() != nil:
		fmt.Fprintln(os.Stderr, "\nYou ended the Game of Life")
		os.Exit(exitInterrupted)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfigError)
	}
}

func initOptions() (cfg life.Config, eo envOptions) {
	cfg = life.DefaultConfig()

	flaggy.SetName("life")
	flaggy.SetDescription("Conway's Game of Life")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.Int(&cfg.Size, "s", "size", "Grid cell count, must have an integer square root")
	flaggy.Int(&cfg.Iterations, "n", "iterations", "Stop after this many generations (0 = unlimited)")
	flaggy.Duration(&cfg.Interval, "i", "interval", "Wait between generations, for example 250ms")
	godsWord := false
	flaggy.Bool(&godsWord, "g", "gods-word", "Seed the grid from the parity bits of the word file")
	flaggy.String(&cfg.WordFile, "f", "seed-file", "Word file to seed from with -g")
	flaggy.Bool(&eo.interactive, "t", "interactive", "Start the interactive terminal UI")

	flaggy.Parse()

	if godsWord {
		cfg.Mode = life.SeedWordFile
	}
	return
}
