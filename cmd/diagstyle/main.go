// diagstyle prints the style registry used to color metrix++ criteria in
// distribution diagrams.
//
// Usage:
//
//	diagstyle                          # list the standard registry
//	diagstyle list -mode combined -format json
//	diagstyle lookup std.code.lines.code std.general.size
//	diagstyle browse -mode highlighted
//
// Modes:
//
//	standard     every metrix++ criteria, orange/red, index 6
//	highlighted  hand-picked criteria with readable labels and colors
//	combined     standard with the highlighted records on top
//	table        the "table:" section of .diagstyle.yaml or -config
//
// Output formats (auto-detected):
//
//	terminal  — styled table (default when TTY)
//	json      — structured JSON (default when piped)
//	yaml      — overrides list readable as a table config
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/dkoosis/diagstyle/internal/config"
	"github.com/dkoosis/diagstyle/internal/version"
	"github.com/dkoosis/diagstyle/pkg/browse"
	"github.com/dkoosis/diagstyle/pkg/diagstyle"
	"github.com/dkoosis/diagstyle/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := "list"
	if len(args) > 0 {
		switch args[0] {
		case "list", "lookup", "browse":
			cmd, args = args[0], args[1:]
		}
	}

	fs := flag.NewFlagSet("diagstyle "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	modeFlag := fs.String("mode", "", "Registry: standard, highlighted, combined, table")
	formatFlag := fs.String("format", "", "Output format: auto, terminal, json, yaml")
	themeFlag := fs.String("theme", "", "Theme: default, mono")
	configFlag := fs.String("config", "", "Path to a .diagstyle.yaml file")
	noColorFlag := fs.Bool("no-color", false, "Disable colors")
	debugFlag := fs.Bool("debug", false, "Print config resolution to stderr")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	flags := config.CliFlags{
		Mode:       *modeFlag,
		Format:     *formatFlag,
		Theme:      *themeFlag,
		ConfigFile: *configFlag,
		NoColor:    *noColorFlag,
		Debug:      *debugFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-color":
			flags.NoColorSet = true
		case "debug":
			flags.DebugSet = true
		}
	})

	cfg, err := config.ResolveConfig(flags)
	if err != nil {
		fmt.Fprintf(stderr, "diagstyle: %v\n", err)
		return 2
	}
	if cfg.Debug {
		fmt.Fprintf(stderr, "[DEBUG] mode=%s (%s) format=%s (%s) theme=%s (%s) no_color=%t (%s) config=%q\n",
			cfg.Mode, cfg.ModeSource, cfg.Format, cfg.FormatSource, cfg.Theme, cfg.ThemeSource,
			cfg.NoColor, cfg.NoColorSource, cfg.ConfigPath)
	}
	reg := cfg.Registry()

	switch cmd {
	case "lookup":
		return runLookup(reg, fs.Args(), cfg, stdout, stderr)
	case "browse":
		return runBrowse(reg, stdout, stderr)
	default:
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "diagstyle: unexpected arguments %v\n", fs.Args())
			return 2
		}
		fmt.Fprint(stdout, selectRenderer(resolveFormat(cfg.Format, stdout), cfg.Theme, stdout).Render(reg.Records()))
		return 0
	}
}

// runLookup prints the records for each criteria. A miss is reported on
// stderr and turns the exit code to 1; found records are still printed.
func runLookup(reg *diagstyle.Registry, keys []string, cfg *config.ResolvedConfig, stdout, stderr io.Writer) int {
	if len(keys) == 0 {
		fmt.Fprintln(stderr, "diagstyle: lookup needs at least one criteria")
		return 2
	}
	code := 0
	var found []diagstyle.Record
	for _, key := range keys {
		rec, ok := reg.Lookup(key)
		if !ok {
			fmt.Fprintf(stderr, "diagstyle: no style for %q\n", key)
			code = 1
			continue
		}
		found = append(found, rec)
	}
	if len(found) > 0 {
		fmt.Fprint(stdout, selectRenderer(resolveFormat(cfg.Format, stdout), cfg.Theme, stdout).Render(found))
	}
	return code
}

func runBrowse(reg *diagstyle.Registry, stdout, stderr io.Writer) int {
	if !isTTYWriter(stdout) {
		fmt.Fprintln(stderr, "diagstyle: browse needs a terminal")
		return 1
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := browse.Run(ctx, reg.Records()); err != nil {
		fmt.Fprintf(stderr, "diagstyle: %v\n", err)
		return 1
	}
	return 0
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func selectRenderer(format, themeName string, w io.Writer) render.Renderer {
	switch format {
	case config.FormatJSON:
		return render.NewJSON()
	case config.FormatYAML:
		return render.NewYAML()
	default:
		// Not a terminal: no width to fit, print full rows.
		width := 0
		if f, ok := w.(*os.File); ok {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
		return render.NewTerminal(render.ThemeByName(themeName), width)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	// Auto-detect: TTY = terminal, piped = json
	if isTTYWriter(w) {
		return config.FormatTerminal
	}
	return config.FormatJSON
}
