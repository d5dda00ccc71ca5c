package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/JamesDevlin5/Gitree/internal/status"
)

// Painter wraps the annotation of a file in the colour of its category.
type Painter interface {
	Paint(c status.Category, s string) string
}

// Plain leaves text untouched.
type Plain struct{}

// Paint returns s unchanged.
func (Plain) Paint(_ status.Category, s string) string { return s }

// paletteAttrs is the fixed eight colour terminal palette. Unknown codes use
// the reset attribute so they render in the terminal default.
var paletteAttrs = map[status.Category]color.Attribute{
	status.CategoryUnmodified: color.FgWhite,
	status.CategoryModified:   color.FgYellow,
	status.CategoryAdded:      color.FgGreen,
	status.CategoryDeleted:    color.FgRed,
	status.CategoryRenamed:    color.FgMagenta,
	status.CategoryCopied:     color.FgBlue,
	status.CategoryUnmerged:   color.FgYellow,
	status.CategoryUnknown:    color.Reset,
}

// Palette paints with the basic ANSI colours: ESC[<code>m text ESC[0m.
type Palette struct {
	colors map[status.Category]*color.Color
	reset  *color.Color
}

// NewPalette builds the ANSI palette. With bold set every colour also
// carries the bold attribute (ESC[<code>;1m).
func NewPalette(bold bool) *Palette {
	reset := color.New(color.Reset)
	reset.EnableColor()
	p := &Palette{
		colors: make(map[status.Category]*color.Color, len(paletteAttrs)),
		reset:  reset,
	}
	for cat, attr := range paletteAttrs {
		c := color.New(attr)
		if bold {
			c.Add(color.Bold)
		}
		// The CLI decides whether colour is wanted, not fatih/color's tty probe.
		c.EnableColor()
		p.colors[cat] = c
	}
	return p
}

// Paint wraps s in the colour of c followed by a full reset.
func (p *Palette) Paint(c status.Category, s string) string {
	col, ok := p.colors[c]
	if !ok {
		col = p.colors[status.CategoryUnknown]
	}
	var b strings.Builder
	// UnsetWriter is a no-op while color.NoColor is set (stdout not a tty).
	col.SetWriter(&b)
	b.WriteString(s)
	p.reset.SetWriter(&b)
	return b.String()
}

// ColorMode selects when colour is emitted.
type ColorMode int

// Colour modes.
const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(name string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, always or never)", name)
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// isTerminal is replaced in tests.
var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

// Enabled reports whether colour should be written to out. Auto mode
// requires a terminal and an unset NO_COLOR.
func (m ColorMode) Enabled(out *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if out == nil {
		return false
	}
	return isTerminal(int(out.Fd())) //nolint:gosec
}

// New returns the painter for the given settings. An empty themeName selects
// the ANSI palette; an unknown one is an error.
func New(enabled bool, themeName string, bold bool) (Painter, error) {
	var thm *Theme
	if themeName != "" {
		thm = GetTheme(themeName)
		if thm == nil {
			return nil, fmt.Errorf("unknown theme %q", themeName)
		}
	}
	if !enabled {
		return Plain{}, nil
	}
	if thm != nil {
		thm.Bold = bold
		return thm, nil
	}
	return NewPalette(bold), nil
}
