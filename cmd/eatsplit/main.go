package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/eatsplit/internal/cli"
	"github.com/idilsaglam/eatsplit/internal/config"
	"github.com/idilsaglam/eatsplit/internal/ui"
)

func main() {
	cfg := config.Load()

	// Root flags (apply to every subcommand)
	group := flag.Bool("group", false, "group ls output by standing")
	theme := flag.String("theme", cfg.Theme, "color theme: classic, neon or mono")
	seed := flag.String("seed", cfg.SeedFile, "JSON file with the starting roster")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	cfg.Theme = *theme
	cfg.SeedFile = *seed
	if err := cfg.Validate(); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		Group:  *group,
		Config: cfg,
	}))
}
