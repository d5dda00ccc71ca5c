package theme

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesDevlin5/Gitree/internal/status"
)

func TestPalettePaint(t *testing.T) {
	p := NewPalette(false)

	tests := []struct {
		cat  status.Category
		want string
	}{
		{status.CategoryUnmodified, "\x1b[37mname\x1b[0m"},
		{status.CategoryModified, "\x1b[33mname\x1b[0m"},
		{status.CategoryAdded, "\x1b[32mname\x1b[0m"},
		{status.CategoryDeleted, "\x1b[31mname\x1b[0m"},
		{status.CategoryRenamed, "\x1b[35mname\x1b[0m"},
		{status.CategoryCopied, "\x1b[34mname\x1b[0m"},
		{status.CategoryUnmerged, "\x1b[33mname\x1b[0m"},
		{status.CategoryUnknown, "\x1b[0mname\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, p.Paint(tt.cat, "name"))
		})
	}
}

func TestPaletteBold(t *testing.T) {
	p := NewPalette(true)
	assert.Equal(t, "\x1b[33;1mx\x1b[0m", p.Paint(status.CategoryModified, "x"))
	assert.Equal(t, "\x1b[32;1mx\x1b[0m", p.Paint(status.CategoryAdded, "x"))
}

func TestPaletteUnknownCategoryFallsBack(t *testing.T) {
	p := NewPalette(false)
	assert.Equal(t, "\x1b[0mx\x1b[0m", p.Paint(status.Category(99), "x"))
}

func TestPaletteResetWithoutTerminal(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	p := NewPalette(false)
	assert.Equal(t, "\x1b[33m[M]: a.txt\x1b[0m", p.Paint(status.CategoryModified, "[M]: a.txt"))

	bold := NewPalette(true)
	assert.Equal(t, "\x1b[31;1mx\x1b[0m", bold.Paint(status.CategoryDeleted, "x"))
}

func TestPlainPaint(t *testing.T) {
	assert.Equal(t, "[M]: a", Plain{}.Paint(status.CategoryModified, "[M]: a"))
}

func TestThemePaint(t *testing.T) {
	thm := GetTheme("Dracula")
	require.NotNil(t, thm)

	out := thm.Paint(status.CategoryAdded, "main.go")
	assert.True(t, strings.HasPrefix(out, "\x1b["), "expected escape prefix, got %q", out)
	assert.Contains(t, out, "main.go")
	assert.True(t, strings.HasSuffix(out, "\x1b[0m"), "expected reset suffix, got %q", out)
	// #50FA7B
	assert.Contains(t, out, "80;250;123")

	assert.Equal(t, out, thm.Paint(status.CategoryAdded, "main.go"))
	assert.NotEqual(t, out, thm.Paint(status.CategoryDeleted, "main.go"))
}

func TestThemeColors(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			thm := GetTheme(name)
			require.NotNil(t, thm)
			assert.Equal(t, name, thm.Name)
			for _, cat := range status.Categories() {
				assert.NotEmpty(t, string(thm.Color(cat)), "category %s", cat)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, NordName, NormalizeName("  NORD "))
	assert.Equal(t, "", NormalizeName("unknown"))
	assert.Nil(t, GetTheme("unknown"))
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"always", ColorAlways},
		{"ON", ColorAlways},
		{"never", ColorNever},
		{"false", ColorNever},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
	assert.Equal(t, "never", ColorNever.String())
}

func TestColorModeEnabled(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	t.Setenv("NO_COLOR", "")
	require.NoError(t, os.Unsetenv("NO_COLOR"))

	isTerminal = func(int) bool { return true }
	assert.True(t, ColorAuto.Enabled(os.Stdout))
	assert.True(t, ColorAlways.Enabled(os.Stdout))
	assert.False(t, ColorNever.Enabled(os.Stdout))
	assert.False(t, ColorAuto.Enabled(nil))

	isTerminal = func(int) bool { return false }
	assert.False(t, ColorAuto.Enabled(os.Stdout))
	assert.True(t, ColorAlways.Enabled(os.Stdout))

	isTerminal = func(int) bool { return true }
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorAuto.Enabled(os.Stdout))
	assert.True(t, ColorAlways.Enabled(os.Stdout))
}

func TestNewPainter(t *testing.T) {
	p, err := New(false, "", false)
	require.NoError(t, err)
	assert.IsType(t, Plain{}, p)

	p, err = New(true, "", true)
	require.NoError(t, err)
	assert.IsType(t, &Palette{}, p)

	p, err = New(true, "nord", false)
	require.NoError(t, err)
	assert.IsType(t, &Theme{}, p)

	p, err = New(false, "nord", false)
	require.NoError(t, err)
	assert.IsType(t, Plain{}, p)

	_, err = New(true, "nope", false)
	assert.Error(t, err)
}
