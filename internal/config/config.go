package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/xitems/internal/app"
	"github.com/atomicstack/xitems/internal/theme"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Settings is the layered part of the configuration. Fields tagged for yaml
// may come from the resources file; all of them may come from the
// environment.
type Settings struct {
	Font               string `yaml:"font" env:"FONT"`
	Background         string `yaml:"background" env:"BACKGROUND"`
	Foreground         string `yaml:"foreground" env:"FOREGROUND"`
	SelectedBackground string `yaml:"selectedBackground" env:"SELECTED_BACKGROUND"`
	SelectedForeground string `yaml:"selectedForeground" env:"SELECTED_FOREGROUND"`
	BorderColor        string `yaml:"borderColor" env:"BORDER_COLOR"`
	BorderWidth        int    `yaml:"borderWidth" env:"BORDER_WIDTH"`
	HorizontalPadding  int    `yaml:"horizontalPadding" env:"HORIZONTAL_PADDING"`
	VerticalPadding    int    `yaml:"verticalPadding" env:"VERTICAL_PADDING"`
	Popup              bool   `yaml:"popup" env:"POPUP"`
	Clipboard          bool   `yaml:"clipboard" env:"CLIPBOARD"`
	Footer             bool   `yaml:"footer" env:"FOOTER"`
	X                  int    `yaml:"-" env:"X"`
	Y                  int    `yaml:"-" env:"Y"`
	Socket             string `yaml:"-" env:"SOCKET"`
	Trace              bool   `yaml:"-" env:"TRACE"`
	LogFile            string `yaml:"-" env:"LOG_FILE"`
}

const (
	progName     = "xitems"
	envPrefix    = "XITEMS_"
	envResources = envPrefix + "RESOURCES"
)

// Defaults returns the built-in settings.
func Defaults() Settings {
	spec := theme.DefaultSpec()
	return Settings{
		Font:               spec.Font,
		Background:         spec.Background,
		Foreground:         spec.Foreground,
		SelectedBackground: spec.SelectedBackground,
		SelectedForeground: spec.SelectedForeground,
		BorderColor:        spec.BorderColor,
		BorderWidth:        spec.BorderWidth,
		HorizontalPadding:  spec.HorizontalPadding,
		VerticalPadding:    spec.VerticalPadding,
		X:                  -1,
		Y:                  -1,
	}
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	vars := parseEnv(environ)

	base, err := layered(vars)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	font := fs.String("font", base.Font, "text attributes: fixed, bold, italic, underline, faint")
	bg := fs.String("bg", base.Background, "background colour")
	fg := fs.String("fg", base.Foreground, "foreground colour")
	sbg := fs.String("sbg", base.SelectedBackground, "background colour of the selected item")
	sfg := fs.String("sfg", base.SelectedForeground, "foreground colour of the selected item")
	bc := fs.String("bc", base.BorderColor, "border colour")
	bw := fs.Int("bw", base.BorderWidth, "border width (0 disables the border)")
	hp := fs.Int("hp", base.HorizontalPadding, "horizontal padding in cells")
	vp := fs.Int("vp", base.VerticalPadding, "vertical padding in lines")
	x := fs.Int("x", base.X, "panel column (-1 uses the pointer location)")
	y := fs.Int("y", base.Y, "panel row (-1 uses the pointer location)")
	popup := fs.Bool("popup", base.Popup, "open the menu in a tmux popup")
	socket := fs.String("socket", base.Socket, "path to the tmux socket (overrides environment detection)")
	clip := fs.Bool("clipboard", base.Clipboard, "also copy the chosen entry to the system clipboard")
	footer := fs.Bool("footer", base.Footer, "enable footer hint row (disabled by default)")
	unselected := fs.Bool("unselected", false, "start with no item selected")
	input := fs.String("input", "", "read items from this file instead of stdin")
	output := fs.String("output", "", "write the chosen entry to this file instead of stdout")
	trace := fs.Bool("trace", base.Trace, "enable verbose JSON trace logging")
	logFile := fs.String("log-file", base.LogFile, "path to the log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, &HelpError{Usage: usage(fs)}
		}
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			Theme: theme.Spec{
				Font:               *font,
				Background:         *bg,
				Foreground:         *fg,
				SelectedBackground: *sbg,
				SelectedForeground: *sfg,
				BorderColor:        *bc,
				BorderWidth:        *bw,
				HorizontalPadding:  *hp,
				VerticalPadding:    *vp,
			},
			X:          *x,
			Y:          *y,
			Popup:      *popup,
			SocketPath: *socket,
			Clipboard:  *clip,
			ShowFooter: *footer,
			Unselected: *unselected,
			InputPath:  *input,
			OutputPath: *output,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"font":       *font,
			"bg":         *bg,
			"fg":         *fg,
			"sbg":        *sbg,
			"sfg":        *sfg,
			"bc":         *bc,
			"bw":         strconv.Itoa(*bw),
			"hp":         strconv.Itoa(*hp),
			"vp":         strconv.Itoa(*vp),
			"x":          strconv.Itoa(*x),
			"y":          strconv.Itoa(*y),
			"popup":      strconv.FormatBool(*popup),
			"socket":     *socket,
			"clipboard":  strconv.FormatBool(*clip),
			"footer":     strconv.FormatBool(*footer),
			"unselected": strconv.FormatBool(*unselected),
			"input":      *input,
			"output":     *output,
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// layered resolves defaults, then the resources file, then the environment.
func layered(vars map[string]string) (Settings, error) {
	s := Defaults()
	if path := resourcesPath(vars); path != "" {
		if err := loadResources(path, &s); err != nil {
			return Settings{}, err
		}
	}
	if err := env.ParseWithOptions(&s, env.Options{Environment: vars, Prefix: envPrefix}); err != nil {
		return Settings{}, fmt.Errorf("environment: %w", err)
	}
	return s, nil
}

func resourcesPath(vars map[string]string) string {
	if p := strings.TrimSpace(vars[envResources]); p != "" {
		return p
	}
	if dir := strings.TrimSpace(vars["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, progName, "resources.yaml")
	}
	if home := strings.TrimSpace(vars["HOME"]); home != "" {
		return filepath.Join(home, ".config", progName, "resources.yaml")
	}
	return ""
}

// loadResources overlays the keys present in the file onto s. A missing file
// is not an error.
func loadResources(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("resources %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("resources %s: %w", path, err)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// HelpError is returned when -h or -help is given. It carries the usage
// text.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string { return flag.ErrHelp.Error() }

func (e *HelpError) Unwrap() error { return flag.ErrHelp }

func usage(fs *flag.FlagSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s [options] < items\n", progName)
	fs.SetOutput(&b)
	fs.PrintDefaults()
	return b.String()
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	var help *HelpError
	if errors.As(err, &help) {
		fmt.Fprint(os.Stderr, help.Usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the geometry options are usable.
func Validate(cfg Config) error {
	t := cfg.App.Theme
	if t.BorderWidth < 0 {
		return fmt.Errorf("border width must be >= 0 (got %d)", t.BorderWidth)
	}
	if t.HorizontalPadding < 0 {
		return fmt.Errorf("horizontal padding must be >= 0 (got %d)", t.HorizontalPadding)
	}
	if t.VerticalPadding < 0 {
		return fmt.Errorf("vertical padding must be >= 0 (got %d)", t.VerticalPadding)
	}
	if cfg.App.X < -1 {
		return fmt.Errorf("x must be >= -1 (got %d)", cfg.App.X)
	}
	if cfg.App.Y < -1 {
		return fmt.Errorf("y must be >= -1 (got %d)", cfg.App.Y)
	}
	return nil
}
