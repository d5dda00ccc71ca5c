package main

import (
	urfavecli "github.com/urfave/cli/v2"
)

// globalFlags returns all flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "color",
			Usage: "When to colour status annotations: auto, always or never",
			Value: "auto",
		},
		&urfavecli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colour (same as --color=never)",
		},
		&urfavecli.BoolFlag{
			Name:  "bold",
			Usage: "Render status colours in bold",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Use a true-colour theme instead of the basic ANSI palette",
		},
		&urfavecli.StringFlag{
			Name:  "style",
			Usage: "Connector style: unicode or ascii",
			Value: "unicode",
		},
		&urfavecli.BoolFlag{
			Name:  "icons",
			Usage: "Show Nerd Font icons before names",
		},
		&urfavecli.StringFlag{
			Name:  "on-malformed",
			Usage: "What to do with malformed lines: abort or skip",
			Value: "abort",
		},
		&urfavecli.IntFlag{
			Name:  "max-width",
			Usage: "Truncate lines wider than this many columns (0 disables)",
		},
		&urfavecli.BoolFlag{
			Name:  "fit",
			Usage: "Truncate lines to the terminal width",
		},
		&urfavecli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: tree, yaml or json",
			Value:   "tree",
		},
		&urfavecli.BoolFlag{
			Name:  "summary",
			Usage: "Print per-status file counts to stderr after the tree",
		},
		&urfavecli.BoolFlag{
			Name:  "list-themes",
			Usage: "List available themes and exit",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=key=value",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
	}
}
