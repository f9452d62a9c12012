package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the YAML config file looked up on disk.
const ConfigFileName = ".diagstyle.yaml"

// Registry modes.
const (
	ModeStandard    = "standard"
	ModeHighlighted = "highlighted"
	ModeCombined    = "combined"
	ModeTable       = "table"
)

// Output formats.
const (
	FormatAuto     = "auto"
	FormatTerminal = "terminal"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Themes.
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// Constants for default values.
const (
	DefaultMode   = ModeStandard
	DefaultFormat = FormatAuto
	DefaultTheme  = ThemeDefault
)

var (
	ErrUnknownMode   = errors.New("unknown mode")
	ErrUnknownFormat = errors.New("unknown format")
	ErrUnknownTheme  = errors.New("unknown theme")
)

// CliFlags holds the values of command-line flags.
// Empty strings mean the flag was not given.
type CliFlags struct {
	Mode       string
	Format     string
	Theme      string
	ConfigFile string
	NoColor    bool
	Debug      bool

	// Flags to track if they were explicitly set by the user
	NoColorSet bool
	DebugSet   bool
}

// AppConfig represents the application's configuration from .diagstyle.yaml.
type AppConfig struct {
	Mode    string          `yaml:"mode,omitempty"`
	Format  string          `yaml:"format,omitempty"`
	Theme   string          `yaml:"theme,omitempty"`
	NoColor bool            `yaml:"no_color"`
	Debug   bool            `yaml:"debug"`
	Table   diagstyle.Table `yaml:"table,omitempty"`

	// Path the config was read from; empty for defaults.
	Path string `yaml:"-"`

	// Keys the file set explicitly, even to their default value.
	fromFile map[string]bool
}

// FromFile reports whether key (mode, format or theme) was set by the
// config file rather than filled in from the defaults.
func (c *AppConfig) FromFile(key string) bool {
	return c.fromFile[key]
}

// DefaultAppConfig returns the hardcoded defaults.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Mode:   DefaultMode,
		Format: DefaultFormat,
		Theme:  DefaultTheme,
	}
}

// LoadConfig loads .diagstyle.yaml from the local directory or the user
// config directory. Missing or broken files fall back to defaults with a
// warning on stderr.
func LoadConfig() *AppConfig {
	configPath := getConfigPath()
	if configPath == "" {
		debugf("No %s found, using defaults only.", ConfigFileName)
		return DefaultAppConfig()
	}

	appCfg, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "diagstyle: warning: %v. Using defaults.\n", err)
		return DefaultAppConfig()
	}
	return appCfg
}

// LoadConfigFrom reads and parses the config file at path.
func LoadConfigFrom(path string) (*AppConfig, error) {
	// #nosec G304 -- path comes from the -config flag or getConfigPath
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	appCfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	appCfg.Path = path
	debugf("Loaded config from %s (mode=%s, format=%s, theme=%s).", path, appCfg.Mode, appCfg.Format, appCfg.Theme)
	return appCfg, nil
}

// ParseConfig decodes YAML config data and merges it onto the defaults.
func ParseConfig(data []byte) (*AppConfig, error) {
	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	appCfg := DefaultAppConfig()
	appCfg.fromFile = make(map[string]bool)
	if fileCfg.Mode != "" {
		appCfg.Mode = fileCfg.Mode
		appCfg.fromFile["mode"] = true
	}
	if fileCfg.Format != "" {
		appCfg.Format = fileCfg.Format
		appCfg.fromFile["format"] = true
	}
	if fileCfg.Theme != "" {
		appCfg.Theme = fileCfg.Theme
		appCfg.fromFile["theme"] = true
	}
	appCfg.NoColor = fileCfg.NoColor
	appCfg.Debug = fileCfg.Debug
	appCfg.Table = fileCfg.Table
	return appCfg, nil
}

// getConfigPath tries to find the .diagstyle.yaml configuration file.
// It checks local directory first, then XDG UserConfigDir (if valid).
func getConfigPath() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}

	configHome, err := os.UserConfigDir()
	// UserConfigDir may fail or return "/" in minimal containers.
	if err != nil || configHome == "" || configHome == "/" {
		debugf("UserConfigDir unusable (err=%v, path=%q).", err, configHome)
		return ""
	}

	xdgPath := filepath.Join(configHome, "diagstyle", ConfigFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	debugf("XDG config file not found at: %s", xdgPath)
	return ""
}

func debugEnabled() bool {
	return os.Getenv("DIAGSTYLE_DEBUG") != ""
}

func debugf(format string, args ...any) {
	if debugEnabled() {
		fmt.Fprintf(os.Stderr, "[DEBUG config] "+format+"\n", args...)
	}
}
