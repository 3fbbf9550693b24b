// Package config parses comingsoon.toml splash configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultAccentColor is the default accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// FileName is the configuration file looked up from the working directory.
const FileName = "comingsoon.toml"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level comingsoon.toml configuration.
type Config struct {
	Splash  SplashConfig  `toml:"splash"`
	TUI     TUIConfig     `toml:"tui"`
	Logging LoggingConfig `toml:"logging"`
}

// SplashConfig controls the loading-to-content timing. All values are in
// milliseconds. The loading duration is an arbitrary minimum display time,
// not a measure of actual readiness.
type SplashConfig struct {
	LoadingMs      int `toml:"loading_ms"`       // minimum loading-view display time
	FadeMs         int `toml:"fade_ms"`          // cross-fade duration on exit
	InitialDelayMs int `toml:"initial_delay_ms"` // delay before the first content element appears
	StaggerMs      int `toml:"stagger_ms"`       // offset between successive content elements
}

// TUIConfig controls the splash appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// LoggingConfig controls the optional lifecycle log file.
type LoggingConfig struct {
	File  string `toml:"file"`  // empty = logging disabled
	Level string `toml:"level"` // debug, info, warn, error
}

// Validate checks the configuration for issues that would cause confusing
// runtime behavior. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Splash.LoadingMs < 0 {
		errs = append(errs, fmt.Errorf("splash.loading_ms must be >= 0"))
	}
	if c.Splash.FadeMs < 0 {
		errs = append(errs, fmt.Errorf("splash.fade_ms must be >= 0"))
	}
	if c.Splash.InitialDelayMs < 0 {
		errs = append(errs, fmt.Errorf("splash.initial_delay_ms must be >= 0"))
	}
	if c.Splash.StaggerMs < 0 {
		errs = append(errs, fmt.Errorf("splash.stagger_ms must be >= 0"))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	if c.Logging.Level != "" {
		switch strings.ToLower(c.Logging.Level) {
		case "debug", "info", "warn", "error":
		default:
			errs = append(errs, fmt.Errorf("logging.level must be one of debug, info, warn, error"))
		}
	}

	return errors.Join(errs...)
}

// Defaults returns a Config matching the original page timings: an 800ms
// loading hold, an 800ms cross-fade, then a 300ms lead-in with 150ms
// between content elements.
func Defaults() Config {
	return Config{
		Splash: SplashConfig{
			LoadingMs:      800,
			FadeMs:         800,
			InitialDelayMs: 300,
			StaggerMs:      150,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
		Logging: LoggingConfig{
			File:  "",
			Level: "info",
		},
	}
}

// Load reads comingsoon.toml from the given path. If path is empty, it walks
// up from the current working directory looking for the file; the splash
// needs no configuration, so a missing file yields pure defaults. Returns an
// error if the file contains unknown keys (likely typos).
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return &cfg, nil
		}
		path = found
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	return &cfg, nil
}

// findConfig walks up from the current directory looking for comingsoon.toml.
// An empty path with nil error means no config file exists.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// InitFile writes a default comingsoon.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# comingsoon.toml — splash configuration
# All timings are in milliseconds.

[splash]
loading_ms = 800       # minimum loading-view display time
fade_ms = 800          # cross-fade duration between views
initial_delay_ms = 300 # delay before the first content element appears
stagger_ms = 150       # offset between successive content elements

[tui]
accent_color = "#7D56F4" # hex color for badge/button/accent elements

[logging]
file = ""      # lifecycle log file (empty = disabled)
level = "info" # debug, info, warn, error
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
