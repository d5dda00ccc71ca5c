package status

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// pathOffset is where the path starts in a short status line: "XY path".
const pathOffset = 3

// renameSep separates source and destination of a rename or copy.
const renameSep = " -> "

var (
	// ErrLineTooShort is returned for lines without room for a status and a path.
	ErrLineTooShort = errors.New("line too short for a status entry")
	// ErrEmptyPath is returned when the path has no components.
	ErrEmptyPath = errors.New("path has no components")
	// ErrBadQuoting is returned when a quoted path cannot be unquoted.
	ErrBadQuoting = errors.New("malformed quoted path")
)

// Entry is one parsed status line.
type Entry struct {
	Code     Code
	Second   byte // column 1, kept as-is and never interpreted
	Dirs     []string
	Filename string
	Origin   string // source path of a rename or copy
	Line     int
}

// Path returns the entry path joined with forward slashes.
func (e Entry) Path() string {
	if len(e.Dirs) == 0 {
		return e.Filename
	}
	return strings.Join(e.Dirs, "/") + "/" + e.Filename
}

// ParseError reports a status line that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Policy decides what happens to malformed lines.
type Policy int

const (
	// PolicyAbort fails the whole run on the first malformed line.
	PolicyAbort Policy = iota
	// PolicySkip drops malformed lines and reports them.
	PolicySkip
)

// ParsePolicy returns the policy named by name ("abort" or "skip").
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyAbort, fmt.Errorf("unknown malformed-line policy %q (want abort or skip)", name)
	}
}

func (p Policy) String() string {
	if p == PolicySkip {
		return "skip"
	}
	return "abort"
}

// SplitPath splits p into its components. Both '/' and the host separator
// delimit components; empty components are dropped and "." or ".." are kept.
func SplitPath(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
}

// Parse parses a single status line.
func Parse(line string) (Entry, error) {
	line = strings.TrimSuffix(line, "\r")
	if len(line) <= pathOffset {
		return Entry{}, &ParseError{Text: line, Err: ErrLineTooShort}
	}

	entry := Entry{
		Code:   Code(line[0]),
		Second: line[1],
	}

	raw := line[pathOffset:]
	if entry.Code == Renamed || entry.Code == Copied {
		if src, dst, ok := strings.Cut(raw, renameSep); ok {
			origin, err := unquotePath(src)
			if err != nil {
				return Entry{}, &ParseError{Text: line, Err: err}
			}
			entry.Origin = origin
			raw = dst
		}
	}

	path, err := unquotePath(raw)
	if err != nil {
		return Entry{}, &ParseError{Text: line, Err: err}
	}

	parts := SplitPath(path)
	if len(parts) == 0 {
		return Entry{}, &ParseError{Text: line, Err: ErrEmptyPath}
	}
	entry.Dirs = parts[:len(parts)-1]
	entry.Filename = parts[len(parts)-1]
	return entry, nil
}

// unquotePath undoes the C-style quoting git applies to unusual paths.
func unquotePath(p string) (string, error) {
	if len(p) < 2 || p[0] != '"' || p[len(p)-1] != '"' {
		return p, nil
	}
	unquoted, err := strconv.Unquote(p)
	if err != nil {
		return "", ErrBadQuoting
	}
	return unquoted, nil
}

// ParseLines parses every non-empty line. With PolicyAbort the first
// malformed line is returned as an error and no entries are returned. With
// PolicySkip malformed lines are collected in skipped.
func ParseLines(lines []string, policy Policy) (entries []Entry, skipped []*ParseError, err error) {
	entries = make([]Entry, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSuffix(line, "\r") == "" {
			continue
		}

		entry, err := Parse(line)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				return nil, nil, err
			}
			perr.Line = i + 1
			if policy == PolicyAbort {
				return nil, nil, perr
			}
			skipped = append(skipped, perr)
			continue
		}
		entry.Line = i + 1
		entries = append(entries, entry)
	}
	return entries, skipped, nil
}
