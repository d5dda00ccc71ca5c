// Package config loads gitree settings from YAML and command-line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JamesDevlin5/Gitree/internal/log"
	"github.com/JamesDevlin5/Gitree/internal/theme"
)

// Config holds every setting that shapes a run.
type Config struct {
	Color       string // "auto", "always" or "never"
	Bold        bool
	Theme       string // empty selects the basic ANSI palette
	Style       string // "unicode" or "ascii"
	Icons       bool
	OnMalformed string // "abort" or "skip"
	MaxWidth    int    // 0 disables truncation
	Format      string // "tree", "yaml" or "json"
	Summary     bool
	DebugLog    string
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Color:       "auto",
		Style:       "unicode",
		OnMalformed: "abort",
		Format:      "tree",
	}
}

// knownKeys lists the keys accepted in the config file and in overrides.
var knownKeys = map[string]bool{
	"color":        true,
	"bold":         true,
	"theme":        true,
	"style":        true,
	"icons":        true,
	"on_malformed": true,
	"max_width":    true,
	"format":       true,
	"summary":      true,
	"debug_log":    true,
}

// Keys returns the accepted configuration keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

// coerceChoice returns the lower-cased value when it is one of choices.
func coerceChoice(value any, defaultVal string, choices ...string) string {
	text, ok := value.(string)
	if !ok {
		return defaultVal
	}
	text = strings.ToLower(strings.TrimSpace(text))
	for _, c := range choices {
		if text == c {
			return text
		}
	}
	return defaultVal
}

// choice applies data[key] through coerceChoice, warning when the value is
// rejected.
func choice(data map[string]any, key, current string, choices ...string) string {
	value, ok := data[key]
	if !ok {
		return current
	}
	got := coerceChoice(value, "", choices...)
	if got == "" {
		log.Warnf("ignoring config %s=%v (want %s), keeping %q", key, value, strings.Join(choices, ", "), current)
		return current
	}
	return got
}

// apply merges the recognised keys of data into c. Invalid values leave the
// current setting in place and produce a warning.
func (c *Config) apply(data map[string]any) {
	c.Color = choice(data, "color", c.Color, "auto", "always", "never")
	c.Bold = coerceBool(data["bold"], c.Bold)
	if value, ok := data["theme"]; ok && value != nil {
		name, isString := value.(string)
		switch normalized := theme.NormalizeName(name); {
		case isString && strings.TrimSpace(name) == "":
			c.Theme = ""
		case normalized != "":
			c.Theme = normalized
		default:
			log.Warnf("ignoring unknown config theme %v (available: %s)", value, strings.Join(theme.AvailableThemes(), ", "))
		}
	}
	c.Style = choice(data, "style", c.Style, "unicode", "ascii")
	c.Icons = coerceBool(data["icons"], c.Icons)
	c.OnMalformed = choice(data, "on_malformed", c.OnMalformed, "abort", "skip")
	if maxWidth := coerceInt(data["max_width"], c.MaxWidth); maxWidth < 0 {
		log.Warnf("ignoring negative config max_width=%d", maxWidth)
	} else {
		c.MaxWidth = maxWidth
	}
	c.Format = choice(data, "format", c.Format, "tree", "yaml", "json")
	c.Summary = coerceBool(data["summary"], c.Summary)
	if debugLog, ok := data["debug_log"].(string); ok {
		c.DebugLog = strings.TrimSpace(debugLog)
	}
}

func parseConfig(data map[string]any) *Config {
	cfg := DefaultConfig()
	cfg.apply(data)
	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the configuration file at configPath, or the first of
// gitree/config.yaml and gitree/config.yml below the user config directory.
// A missing file yields the defaults. On error the defaults are returned
// together with the error.
func LoadConfig(configPath string) (*Config, error) {
	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{expanded}
	} else {
		configBase := filepath.Clean(filepath.Join(getConfigDir(), "gitree"))
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec
		if os.IsNotExist(err) {
			if configPath != "" {
				return DefaultConfig(), fmt.Errorf("config file %s does not exist", path)
			}
			continue
		}
		if err != nil {
			return DefaultConfig(), fmt.Errorf("reading config %s: %w", path, err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
		}
		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}

// ApplyCLIOverrides applies "key=value" overrides on top of c. Keys may carry
// a "gitree." prefix. Unknown keys are an error.
func (c *Config) ApplyCLIOverrides(overrides []string) error {
	data := make(map[string]any, len(overrides))
	for _, override := range overrides {
		key, value, ok := strings.Cut(override, "=")
		if !ok {
			return fmt.Errorf("invalid config override %q, expected key=value", override)
		}
		key = strings.TrimPrefix(strings.TrimSpace(key), "gitree.")
		if key == "" {
			return fmt.Errorf("empty config key in override %q", override)
		}
		if !knownKeys[key] {
			return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
		}
		data[key] = value
	}
	c.apply(data)
	return nil
}

// ExpandPath expands a leading "~" and environment variables in path.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}
