package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
)

// Resolution sources recorded on ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Mode    string
	Format  string
	Theme   string
	NoColor bool
	Debug   bool
	Table   diagstyle.Table

	// Resolution metadata (for debugging)
	ModeSource    string
	FormatSource  string
	ThemeSource   string
	NoColorSource string
	ConfigPath    string
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
// An explicit -config path that cannot be read is an error; a discovered
// file that cannot be read only produces a warning.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	var appCfg *AppConfig
	if cliFlags.ConfigFile != "" {
		var err error
		appCfg, err = LoadConfigFrom(cliFlags.ConfigFile)
		if err != nil {
			return nil, err
		}
	} else {
		appCfg = LoadConfig()
	}
	return resolve(cliFlags, appCfg)
}

func resolve(cliFlags CliFlags, appCfg *AppConfig) (*ResolvedConfig, error) {
	resolved := &ResolvedConfig{
		NoColor:       appCfg.NoColor,
		Debug:         appCfg.Debug,
		Table:         appCfg.Table,
		NoColorSource: SourceFile,
		ConfigPath:    appCfg.Path,
	}

	resolved.Mode, resolved.ModeSource = resolveString(cliFlags.Mode, "DIAGSTYLE_MODE", appCfg.Mode, appCfg.FromFile("mode"), DefaultMode)
	resolved.Format, resolved.FormatSource = resolveString(cliFlags.Format, "DIAGSTYLE_FORMAT", appCfg.Format, appCfg.FromFile("format"), DefaultFormat)
	resolved.Theme, resolved.ThemeSource = resolveString(cliFlags.Theme, "DIAGSTYLE_THEME", appCfg.Theme, appCfg.FromFile("theme"), DefaultTheme)

	// Resolve NoColor with priority: CLI > ENV > file
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = SourceCLI
	} else if env := envNoColor(); env != nil {
		resolved.NoColor = *env
		resolved.NoColorSource = SourceEnv
	}

	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
	} else if debugEnabled() {
		resolved.Debug = true
	}

	// NoColor implies the monochrome theme
	if resolved.NoColor {
		resolved.Theme = ThemeMono
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// Registry builds the registry selected by Mode.
func (c *ResolvedConfig) Registry() *diagstyle.Registry {
	switch c.Mode {
	case ModeHighlighted:
		return diagstyle.Highlighted()
	case ModeCombined:
		return diagstyle.Combined()
	case ModeTable:
		return c.Table.Build()
	default:
		return diagstyle.Standard()
	}
}

// resolveString applies CLI > env > file > default to one string setting.
// A file value counts only when the file set it, even if it equals def.
func resolveString(cli, envKey, file string, fromFile bool, def string) (string, string) {
	if cli != "" {
		return cli, SourceCLI
	}
	if v := os.Getenv(envKey); v != "" {
		return v, SourceEnv
	}
	if fromFile && file != "" {
		return file, SourceFile
	}
	return def, SourceDefault
}

// envNoColor reads DIAGSTYLE_NO_COLOR as a boolean, then NO_COLOR, which
// disables color whenever it is present and non-empty (no-color.org).
// Returns nil if neither applies.
func envNoColor() *bool {
	if b := getEnvBool("DIAGSTYLE_NO_COLOR"); b != nil {
		return b
	}
	if os.Getenv("NO_COLOR") != "" {
		b := true
		return &b
	}
	return nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// Modes returns the accepted -mode values.
func Modes() []string {
	return []string{ModeStandard, ModeHighlighted, ModeCombined, ModeTable}
}

// Formats returns the accepted -format values.
func Formats() []string {
	return []string{FormatAuto, FormatTerminal, FormatJSON, FormatYAML}
}

// Themes returns the accepted -theme values.
func Themes() []string {
	return []string{ThemeDefault, ThemeMono}
}

// validateResolvedConfig checks setting names. Registry contents are not validated.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if !slices.Contains(Modes(), cfg.Mode) {
		return fmt.Errorf("%w %q (must be one of %v)", ErrUnknownMode, cfg.Mode, Modes())
	}
	if !slices.Contains(Formats(), cfg.Format) {
		return fmt.Errorf("%w %q (must be one of %v)", ErrUnknownFormat, cfg.Format, Formats())
	}
	if !slices.Contains(Themes(), cfg.Theme) {
		return fmt.Errorf("%w %q (must be one of %v)", ErrUnknownTheme, cfg.Theme, Themes())
	}
	return nil
}
