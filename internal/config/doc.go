// Package config handles configuration loading and merging for diagstyle.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-mode, -format, -theme, -no-color, -config)
//  2. Environment variables (DIAGSTYLE_MODE, DIAGSTYLE_FORMAT, DIAGSTYLE_THEME, DIAGSTYLE_NO_COLOR, NO_COLOR)
//  3. YAML config file (.diagstyle.yaml in local directory or ~/.config/diagstyle/.diagstyle.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Modes
//
//   - standard: every metrix++ criteria with the bulk default style
//   - highlighted: only the hand-picked criteria with their own labels and colors
//   - combined: standard, with the highlighted records applied on top
//   - table: the registry declared under "table:" in the config file
//
// # Environment Variables
//
//   - DIAGSTYLE_NO_COLOR or NO_COLOR: Set to "true" or "1" to disable colors
//   - DIAGSTYLE_DEBUG: Set to any non-empty value to enable debug output
package config
