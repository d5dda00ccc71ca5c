package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/JamesDevlin5/Gitree/internal/theme"
)

const (
	truncateTail = "…"
	resetSeq     = "\x1b[0m"
)

// Glyphs holds the connector and continuation strings drawn before names.
type Glyphs struct {
	Branch string // non-last sibling
	Corner string // last sibling
	Pipe   string // continuation below a non-last sibling
	Blank  string // continuation below the last sibling
}

// Unicode draws the tree with box-drawing characters.
var Unicode = Glyphs{
	Branch: "├─ ",
	Corner: "└─ ",
	Pipe:   "│ ",
	Blank:  "  ",
}

// ASCII draws the tree with plain ASCII characters.
var ASCII = Glyphs{
	Branch: "|- ",
	Corner: "`- ",
	Pipe:   "| ",
	Blank:  "  ",
}

// GlyphsByName returns the glyph set called name ("unicode" or "ascii").
func GlyphsByName(name string) (Glyphs, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode":
		return Unicode, nil
	case "ascii":
		return ASCII, nil
	default:
		return Glyphs{}, fmt.Errorf("unknown tree style %q (want unicode or ascii)", name)
	}
}

// RenderOptions controls how a tree is drawn.
type RenderOptions struct {
	Glyphs   Glyphs
	Painter  theme.Painter // nil renders without colour
	Icons    bool
	MaxWidth int // truncate lines wider than this; 0 disables
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Glyphs == (Glyphs{}) {
		o.Glyphs = Unicode
	}
	if o.Painter == nil {
		o.Painter = theme.Plain{}
	}
	return o
}

type renderer struct {
	opts  RenderOptions
	lines []string
}

// Render returns one line per node, in pre-order. The anonymous root is not
// printed. Render does not modify the tree.
func Render(t *Tree, opts RenderOptions) []string {
	r := &renderer{opts: opts.withDefaults()}
	r.siblings("", t.root.Children)
	return r.lines
}

// Write renders t to w, one newline-terminated line per node.
func Write(w io.Writer, t *Tree, opts RenderOptions) error {
	for _, line := range Render(t, opts) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("writing tree: %w", err)
		}
	}
	return nil
}

func (r *renderer) siblings(prefix string, nodes []*Node) {
	g := r.opts.Glyphs
	for i, n := range nodes {
		connector, continuation := g.Branch, g.Pipe
		if i == len(nodes)-1 {
			connector, continuation = g.Corner, g.Blank
		}
		r.emit(prefix + connector + r.label(n))
		if n.IsDir() {
			r.siblings(prefix+continuation, n.Children)
		}
	}
}

func (r *renderer) label(n *Node) string {
	icon := ""
	if r.opts.Icons {
		icon = iconWithSpace(deviconForName(n.Name, n.IsDir()))
	}
	if n.IsDir() {
		return icon + n.Name + "/"
	}
	return r.opts.Painter.Paint(n.Category(), Annotation(n.Code.String())+icon+n.Name)
}

// Annotation formats a status code the way it prefixes file names.
func Annotation(code string) string {
	return "[" + code + "]: "
}

func (r *renderer) emit(line string) {
	if r.opts.MaxWidth > 0 && ansi.PrintableRuneWidth(line) > r.opts.MaxWidth {
		line = truncate.StringWithTail(line, uint(r.opts.MaxWidth), truncateTail) //nolint:gosec
		if strings.Contains(line, "\x1b[") && !strings.HasSuffix(line, resetSeq) {
			line += resetSeq
		}
	}
	r.lines = append(r.lines, line)
}
