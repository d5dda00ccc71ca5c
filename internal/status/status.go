// Package status parses short-format version-control status lines.
package status

import "fmt"

// Code is the single status character at the start of a status line.
type Code byte

// Known status codes.
const (
	Unmodified Code = ' '
	Modified   Code = 'M'
	Added      Code = 'A'
	Deleted    Code = 'D'
	Renamed    Code = 'R'
	Copied     Code = 'C'
	Unmerged   Code = 'U'
)

// Category groups status codes for display.
type Category int

// Status categories, in display order.
const (
	CategoryUnknown Category = iota
	CategoryUnmodified
	CategoryModified
	CategoryAdded
	CategoryDeleted
	CategoryRenamed
	CategoryCopied
	CategoryUnmerged
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "unknown",
	CategoryUnmodified: "unmodified",
	CategoryModified:   "modified",
	CategoryAdded:      "added",
	CategoryDeleted:    "deleted",
	CategoryRenamed:    "renamed",
	CategoryCopied:     "copied",
	CategoryUnmerged:   "unmerged",
}

var codeCategories = map[Code]Category{
	Unmodified: CategoryUnmodified,
	Modified:   CategoryModified,
	Added:      CategoryAdded,
	Deleted:    CategoryDeleted,
	Renamed:    CategoryRenamed,
	Copied:     CategoryCopied,
	Unmerged:   CategoryUnmerged,
}

// Category returns the display category of c. Unrecognised codes map to
// CategoryUnknown.
func (c Code) Category() Category {
	if cat, ok := codeCategories[c]; ok {
		return cat
	}
	return CategoryUnknown
}

// String returns the code as a one character string. Bytes outside printable
// ASCII are shown as a \xNN escape.
func (c Code) String() string {
	if c < 0x20 || c > 0x7e {
		return fmt.Sprintf(`\x%02x`, byte(c))
	}
	return string(rune(c))
}

// String returns the lower-case category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryUnmodified,
		CategoryModified,
		CategoryAdded,
		CategoryDeleted,
		CategoryRenamed,
		CategoryCopied,
		CategoryUnmerged,
		CategoryUnknown,
	}
}
