package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
)

func TestResolveConfig_PriorityOrder(t *testing.T) {
	tests := []struct {
		name              string
		fileContent       string
		cliFlags          CliFlags
		envVars           map[string]string
		wantMode          string
		wantModeSource    string
		wantFormatSource  string
		wantNoColor       bool
		wantNoColorSource string
	}{
		{
			name:              "defaults when nothing set",
			wantMode:          DefaultMode,
			wantModeSource:    SourceDefault,
			wantFormatSource:  SourceDefault,
			wantNoColorSource: SourceFile,
		},
		{
			name:              "file overrides defaults",
			fileContent:       "mode: combined\nformat: yaml\n",
			wantMode:          ModeCombined,
			wantModeSource:    SourceFile,
			wantFormatSource:  SourceFile,
			wantNoColorSource: SourceFile,
		},
		{
			name:              "file value equal to default is still from file",
			fileContent:       "mode: standard\nformat: auto\n",
			wantMode:          ModeStandard,
			wantModeSource:    SourceFile,
			wantFormatSource:  SourceFile,
			wantNoColorSource: SourceFile,
		},
		{
			name:              "env overrides file",
			fileContent:       "mode: combined\n",
			envVars:           map[string]string{"DIAGSTYLE_MODE": ModeHighlighted},
			wantMode:          ModeHighlighted,
			wantModeSource:    SourceEnv,
			wantFormatSource:  SourceDefault,
			wantNoColorSource: SourceFile,
		},
		{
			name:              "CLI overrides env",
			cliFlags:          CliFlags{Mode: ModeStandard, Format: FormatJSON},
			envVars:           map[string]string{"DIAGSTYLE_MODE": ModeHighlighted, "DIAGSTYLE_FORMAT": FormatYAML},
			wantMode:          ModeStandard,
			wantModeSource:    SourceCLI,
			wantFormatSource:  SourceCLI,
			wantNoColorSource: SourceFile,
		},
		{
			name:              "NO_COLOR env applies",
			envVars:           map[string]string{"NO_COLOR": "1"},
			wantMode:          DefaultMode,
			wantModeSource:    SourceDefault,
			wantFormatSource:  SourceDefault,
			wantNoColor:       true,
			wantNoColorSource: SourceEnv,
		},
		{
			name:              "NO_COLOR env applies for any non-empty value",
			envVars:           map[string]string{"NO_COLOR": "yes"},
			wantMode:          DefaultMode,
			wantModeSource:    SourceDefault,
			wantFormatSource:  SourceDefault,
			wantNoColor:       true,
			wantNoColorSource: SourceEnv,
		},
		{
			name:              "DIAGSTYLE_NO_COLOR false wins over NO_COLOR",
			envVars:           map[string]string{"DIAGSTYLE_NO_COLOR": "false", "NO_COLOR": "1"},
			wantMode:          DefaultMode,
			wantModeSource:    SourceDefault,
			wantFormatSource:  SourceDefault,
			wantNoColor:       false,
			wantNoColorSource: SourceEnv,
		},
		{
			name:              "CLI no-color has priority over env",
			cliFlags:          CliFlags{NoColor: false, NoColorSet: true},
			envVars:           map[string]string{"DIAGSTYLE_NO_COLOR": "true"},
			wantMode:          DefaultMode,
			wantModeSource:    SourceDefault,
			wantFormatSource:  SourceDefault,
			wantNoColor:       false,
			wantNoColorSource: SourceCLI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := isolate(t)
			if tt.fileContent != "" {
				writeFile(t, filepath.Join(tempDir, ConfigFileName), tt.fileContent)
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			resolved, err := ResolveConfig(tt.cliFlags)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMode, resolved.Mode)
			assert.Equal(t, tt.wantModeSource, resolved.ModeSource)
			assert.Equal(t, tt.wantFormatSource, resolved.FormatSource)
			assert.Equal(t, tt.wantNoColor, resolved.NoColor)
			assert.Equal(t, tt.wantNoColorSource, resolved.NoColorSource)
		})
	}
}

func TestResolveConfig_NoColorForcesMonoTheme(t *testing.T) {
	isolate(t)

	resolved, err := ResolveConfig(CliFlags{Theme: ThemeDefault, NoColor: true, NoColorSet: true})
	require.NoError(t, err)

	assert.Equal(t, ThemeMono, resolved.Theme)
}

func TestResolveConfig_Validation(t *testing.T) {
	tests := []struct {
		name     string
		cliFlags CliFlags
		wantErr  error
	}{
		{name: "valid config", cliFlags: CliFlags{Mode: ModeTable, Format: FormatYAML, Theme: ThemeMono}},
		{name: "invalid mode", cliFlags: CliFlags{Mode: "everything"}, wantErr: ErrUnknownMode},
		{name: "invalid format", cliFlags: CliFlags{Format: "xml"}, wantErr: ErrUnknownFormat},
		{name: "invalid theme", cliFlags: CliFlags{Theme: "neon"}, wantErr: ErrUnknownTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := ResolveConfig(tt.cliFlags)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveConfig_ReturnsError_When_ExplicitConfigMissing(t *testing.T) {
	tempDir := isolate(t)

	_, err := ResolveConfig(CliFlags{ConfigFile: filepath.Join(tempDir, "nope.yaml")})

	assert.Error(t, err)
}

func TestResolveConfig_UsesExplicitConfigFile(t *testing.T) {
	tempDir := isolate(t)
	path := filepath.Join(tempDir, "styles.yaml")
	writeFile(t, path, "mode: table\ntable:\n  criteria: [a, b]\n")

	resolved, err := ResolveConfig(CliFlags{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, path, resolved.ConfigPath)
	assert.Equal(t, ModeTable, resolved.Mode)
	assert.ElementsMatch(t, []string{"a", "b"}, resolved.Registry().Criteria())
}

func TestResolvedConfig_Registry_SelectsMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantLen int
		check   string
		label   string
	}{
		{ModeStandard, 30, diagstyle.LinesOfCode, diagstyle.LinesOfCode},
		{ModeHighlighted, 3, diagstyle.LinesOfCode, "lines of code per file"},
		{ModeCombined, 30, diagstyle.LinesOfCode, "lines of code per file"},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			reg := (&ResolvedConfig{Mode: tt.mode}).Registry()

			assert.Equal(t, tt.wantLen, reg.Len())
			rec, ok := reg.Lookup(tt.check)
			require.True(t, ok)
			assert.Equal(t, tt.label, rec.CriteriaLabel)
		})
	}
}
