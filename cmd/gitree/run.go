package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/JamesDevlin5/Gitree/internal/config"
	"github.com/JamesDevlin5/Gitree/internal/log"
	"github.com/JamesDevlin5/Gitree/internal/status"
	"github.com/JamesDevlin5/Gitree/internal/theme"
	"github.com/JamesDevlin5/Gitree/internal/tree"
)

// run is the default action: read every input, build one tree, print it.
func run(c *urfavecli.Context, tty *os.File) error {
	prevWarn := log.SetWarnWriter(c.App.ErrWriter)
	defer log.SetWarnWriter(prevWarn)

	if c.Bool("list-themes") {
		printThemes(c.App.Writer)
		return nil
	}

	cfg, err := loadSettings(c)
	if err != nil {
		return err
	}

	if err := log.SetFile(cfg.DebugLog); err != nil {
		log.Warnf("%v", err)
	}
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(c.App.ErrWriter, "gitree: closing debug log: %v\n", err)
		}
	}()

	opts, err := renderOptions(cfg, tty, c.Bool("fit"))
	if err != nil {
		return err
	}
	policy, err := status.ParsePolicy(cfg.OnMalformed)
	if err != nil {
		return err
	}

	// Everything is parsed before anything is printed, so a rejected line
	// never leaves a half-drawn tree behind.
	entries, err := readEntries(c, policy)
	if err != nil {
		return err
	}

	t := tree.Build(entries)
	log.Printf("built tree: %d entries, format %s", t.Files(), cfg.Format)
	if t.Empty() && cfg.Format == "tree" {
		log.Printf("no entries, nothing to draw")
	}

	switch cfg.Format {
	case "yaml":
		err = tree.EncodeYAML(c.App.Writer, t)
	case "json":
		err = tree.EncodeJSON(c.App.Writer, t)
	default:
		err = tree.Write(c.App.Writer, t, opts)
	}
	if err != nil {
		return err
	}

	if cfg.Summary {
		printSummary(c.App.ErrWriter, t)
	}
	return nil
}

// loadSettings layers defaults, the config file, --config overrides and the
// dedicated flags, in that order.
func loadSettings(c *urfavecli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		if c.IsSet("config-file") {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		log.Warnf("error loading config, using defaults: %v", err)
	}

	if overrides := c.StringSlice("config"); len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("applying config overrides: %w", err)
		}
	}

	if c.IsSet("color") {
		cfg.Color = c.String("color")
	}
	if c.Bool("no-color") {
		cfg.Color = theme.ColorNever.String()
	}
	if c.IsSet("bold") {
		cfg.Bold = c.Bool("bold")
	}
	if c.IsSet("theme") {
		cfg.Theme = c.String("theme")
	}
	if c.IsSet("style") {
		cfg.Style = c.String("style")
	}
	if c.IsSet("icons") {
		cfg.Icons = c.Bool("icons")
	}
	if c.IsSet("on-malformed") {
		cfg.OnMalformed = c.String("on-malformed")
	}
	if c.IsSet("max-width") {
		cfg.MaxWidth = c.Int("max-width")
	}
	if c.IsSet("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(c.String("format")))
	}
	if c.IsSet("summary") {
		cfg.Summary = c.Bool("summary")
	}
	if c.IsSet("debug-log") {
		cfg.DebugLog = c.String("debug-log")
	}

	if cfg.DebugLog != "" {
		expanded, err := config.ExpandPath(cfg.DebugLog)
		if err == nil {
			cfg.DebugLog = expanded
		}
	}

	switch cfg.Format {
	case "tree", "yaml", "json":
	default:
		return nil, fmt.Errorf("unknown output format %q (want tree, yaml or json)", cfg.Format)
	}
	if cfg.MaxWidth < 0 {
		return nil, fmt.Errorf("invalid --max-width %d", cfg.MaxWidth)
	}

	return cfg, nil
}

// terminalSize is replaced in tests.
var terminalSize = term.GetSize

// renderOptions turns the settings into tree.RenderOptions. tty is probed
// for colour support and, with fit, for its width.
func renderOptions(cfg *config.Config, tty *os.File, fit bool) (tree.RenderOptions, error) {
	mode, err := theme.ParseColorMode(cfg.Color)
	if err != nil {
		return tree.RenderOptions{}, err
	}
	glyphs, err := tree.GlyphsByName(cfg.Style)
	if err != nil {
		return tree.RenderOptions{}, err
	}
	painter, err := theme.New(mode.Enabled(tty), cfg.Theme, cfg.Bold)
	if err != nil {
		return tree.RenderOptions{}, err
	}
	log.Printf("painter %T, color %s, style %s", painter, mode, cfg.Style)

	width := cfg.MaxWidth
	if fit {
		if tty != nil {
			w, _, err := terminalSize(int(tty.Fd())) //nolint:gosec
			switch {
			case err != nil:
				log.Printf("cannot read terminal width: %v", err)
			case w <= 0:
				log.Printf("terminal reports width %d, not truncating to it", w)
			default:
				width = w
			}
		}
	}

	return tree.RenderOptions{
		Glyphs:   glyphs,
		Painter:  painter,
		Icons:    cfg.Icons,
		MaxWidth: width,
	}, nil
}

// readEntries parses stdin or every FILE argument ("-" is stdin) in order.
func readEntries(c *urfavecli.Context, policy status.Policy) ([]status.Entry, error) {
	names := c.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}

	var all []status.Entry
	for _, name := range names {
		label := name
		if name == "-" {
			label = "stdin"
		}

		lines, err := readSource(c.App.Reader, name)
		if err != nil {
			return nil, err
		}

		entries, skipped, err := status.ParseLines(lines, policy)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		for _, perr := range skipped {
			log.Warnf("%s: skipping %v", label, perr)
		}
		for _, e := range entries {
			if e.Origin != "" {
				log.Printf("%s: line %d: %s %s -> %s", label, e.Line, e.Code, e.Origin, e.Path())
			}
		}
		log.Printf("%s: %d lines, %d entries, %d skipped", label, len(lines), len(entries), len(skipped))
		all = append(all, entries...)
	}
	return all, nil
}

func readSource(stdin io.Reader, name string) ([]string, error) {
	if name == "-" {
		lines, err := readLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return lines, nil
	}

	f, err := os.Open(name) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}

// readLines consumes r completely and splits it into lines.
func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// printThemes prints available themes.
func printThemes(w io.Writer) {
	names := theme.AvailableThemes()
	sort.Strings(names)
	fmt.Fprintln(w, "Available themes:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// printSummary prints "N files (x modified, y added, ...)".
func printSummary(w io.Writer, t *tree.Tree) {
	counts := t.Counts()
	parts := make([]string, 0, len(counts))
	for _, cat := range status.Categories() {
		if n := counts[cat]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, cat))
		}
	}

	total := t.Files()
	noun := "files"
	if total == 1 {
		noun = "file"
	}
	if len(parts) == 0 {
		fmt.Fprintf(w, "gitree: %d %s\n", total, noun)
		return
	}
	fmt.Fprintf(w, "gitree: %d %s (%s)\n", total, noun, strings.Join(parts, ", "))
}
