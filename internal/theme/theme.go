// Package theme provides the colour schemes used to paint status annotations.
package theme

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/JamesDevlin5/Gitree/internal/status"
)

// Theme maps every status category to a true-colour foreground.
type Theme struct {
	Name       string
	Unmodified lipgloss.Color
	Modified   lipgloss.Color
	Added      lipgloss.Color
	Deleted    lipgloss.Color
	Renamed    lipgloss.Color
	Copied     lipgloss.Color
	Unmerged   lipgloss.Color
	Unknown    lipgloss.Color

	Bold bool

	renderer *lipgloss.Renderer
}

// Theme names.
const (
	DraculaName         = "dracula"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	SolarizedDarkName   = "solarized-dark"
	SolarizedLightName  = "solarized-light"
	CatppuccinMochaName = "catppuccin-mocha"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Name:       DraculaName,
		Unmodified: lipgloss.Color("#F8F8F2"), // Foreground
		Modified:   lipgloss.Color("#FFB86C"), // Orange
		Added:      lipgloss.Color("#50FA7B"), // Green
		Deleted:    lipgloss.Color("#FF5555"), // Red
		Renamed:    lipgloss.Color("#BD93F9"), // Purple
		Copied:     lipgloss.Color("#8BE9FD"), // Cyan
		Unmerged:   lipgloss.Color("#F1FA8C"), // Yellow
		Unknown:    lipgloss.Color("#6272A4"), // Comment
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Name:       NordName,
		Unmodified: lipgloss.Color("#E5E9F0"),
		Modified:   lipgloss.Color("#EBCB8B"),
		Added:      lipgloss.Color("#A3BE8C"),
		Deleted:    lipgloss.Color("#BF616A"),
		Renamed:    lipgloss.Color("#B48EAD"),
		Copied:     lipgloss.Color("#81A1C1"),
		Unmerged:   lipgloss.Color("#D08770"),
		Unknown:    lipgloss.Color("#4C566A"),
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Name:       GruvboxDarkName,
		Unmodified: lipgloss.Color("#EBDBB2"),
		Modified:   lipgloss.Color("#FABD2F"),
		Added:      lipgloss.Color("#B8BB26"),
		Deleted:    lipgloss.Color("#FB4934"),
		Renamed:    lipgloss.Color("#D3869B"),
		Copied:     lipgloss.Color("#83A598"),
		Unmerged:   lipgloss.Color("#FE8019"),
		Unknown:    lipgloss.Color("#928374"),
	}
}

// SolarizedDark returns the Solarized dark theme.
func SolarizedDark() *Theme {
	return &Theme{
		Name:       SolarizedDarkName,
		Unmodified: lipgloss.Color("#EEE8D5"),
		Modified:   lipgloss.Color("#B58900"),
		Added:      lipgloss.Color("#859900"),
		Deleted:    lipgloss.Color("#DC322F"),
		Renamed:    lipgloss.Color("#D33682"),
		Copied:     lipgloss.Color("#268BD2"),
		Unmerged:   lipgloss.Color("#CB4B16"),
		Unknown:    lipgloss.Color("#586E75"),
	}
}

// SolarizedLight returns the Solarized light theme.
func SolarizedLight() *Theme {
	thm := SolarizedDark()
	thm.Name = SolarizedLightName
	thm.Unmodified = lipgloss.Color("#073642")
	thm.Unknown = lipgloss.Color("#93A1A1")
	return thm
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Name:       CatppuccinMochaName,
		Unmodified: lipgloss.Color("#CDD6F4"), // Text
		Modified:   lipgloss.Color("#F9E2AF"), // Yellow
		Added:      lipgloss.Color("#A6E3A1"), // Green
		Deleted:    lipgloss.Color("#F38BA8"), // Red
		Renamed:    lipgloss.Color("#CBA6F7"), // Mauve
		Copied:     lipgloss.Color("#89DCEB"), // Sky
		Unmerged:   lipgloss.Color("#FAB387"), // Peach
		Unknown:    lipgloss.Color("#6C7086"), // Overlay0
	}
}

// GetTheme returns a theme by name, or nil if the name is unknown.
func GetTheme(name string) *Theme {
	switch NormalizeName(name) {
	case DraculaName:
		return Dracula()
	case NordName:
		return Nord()
	case GruvboxDarkName:
		return GruvboxDark()
	case SolarizedDarkName:
		return SolarizedDark()
	case SolarizedLightName:
		return SolarizedLight()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return nil
	}
}

// NormalizeName returns the canonical theme name if it is supported, or "".
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		NordName,
		GruvboxDarkName,
		SolarizedDarkName,
		SolarizedLightName,
		CatppuccinMochaName,
	}
}

// Color returns the foreground configured for c.
func (t *Theme) Color(c status.Category) lipgloss.Color {
	switch c {
	case status.CategoryUnmodified:
		return t.Unmodified
	case status.CategoryModified:
		return t.Modified
	case status.CategoryAdded:
		return t.Added
	case status.CategoryDeleted:
		return t.Deleted
	case status.CategoryRenamed:
		return t.Renamed
	case status.CategoryCopied:
		return t.Copied
	case status.CategoryUnmerged:
		return t.Unmerged
	default:
		return t.Unknown
	}
}

// Paint renders s in the colour of c. Output always carries true-colour
// escapes; callers pick Plain when colour is off.
func (t *Theme) Paint(c status.Category, s string) string {
	if t.renderer == nil {
		t.renderer = lipgloss.NewRenderer(io.Discard)
		t.renderer.SetColorProfile(termenv.TrueColor)
	}
	return t.renderer.NewStyle().Foreground(t.Color(c)).Bold(t.Bold).Render(s)
}
