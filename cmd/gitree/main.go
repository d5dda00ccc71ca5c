// Package main is the entry point for the gitree command.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/mattn/go-colorable"
	urfavecli "github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	urfavecli.VersionPrinter = func(c *urfavecli.Context) {
		printVersion(c.App.Writer)
	}

	app := newApp(os.Stdin, colorable.NewColorable(os.Stdout), os.Stderr, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gitree: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command. term is the file probed for colour support and
// terminal width; it may be nil.
func newApp(in io.Reader, out, errOut io.Writer, term *os.File) *urfavecli.App {
	return &urfavecli.App{
		Name:      "gitree",
		Usage:     "Render short git status output as a directory tree",
		UsageText: "git status --short | gitree [options] [FILE...]",
		ArgsUsage: "[FILE...]",
		Version:   version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,

		Flags: globalFlags(),

		Action: func(c *urfavecli.Context) error {
			return run(c, term)
		},
	}
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	c := commit
	b := builtBy

	if c == "none" || b == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if c == "none" {
				for _, setting := range info.Settings {
					if setting.Key == "vcs.revision" {
						c = setting.Value
					}
				}
			}
			if b == "unknown" {
				b = info.GoVersion
			}
		}
	}

	fmt.Fprintf(w, "gitree version %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s\n", version, c, date, b)
}
