package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=" + t.TempDir()})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	th := cfg.App.Theme
	if th.Font != "fixed" || th.Background != "white" || th.Foreground != "black" {
		t.Fatalf("unexpected colour defaults: %+v", th)
	}
	if th.SelectedBackground != "black" || th.SelectedForeground != "white" || th.BorderColor != "black" {
		t.Fatalf("unexpected selected/border defaults: %+v", th)
	}
	if th.BorderWidth != 1 || th.HorizontalPadding != 1 || th.VerticalPadding != 0 {
		t.Fatalf("unexpected geometry defaults: %+v", th)
	}
	if cfg.App.X != -1 || cfg.App.Y != -1 {
		t.Fatalf("expected pointer placement by default, got %d,%d", cfg.App.X, cfg.App.Y)
	}
	if cfg.App.Popup || cfg.App.Clipboard || cfg.App.Unselected || cfg.Logging.Trace {
		t.Fatalf("expected boolean options off by default: %+v", cfg)
	}
}

func TestLoadArgsPrecedence(t *testing.T) {
	dir := t.TempDir()
	resources := filepath.Join(dir, "resources.yaml")
	data := "background: navy\nforeground: \"#ccc\"\nborderWidth: 3\nhorizontalPadding: 4\n"
	if err := os.WriteFile(resources, []byte(data), 0o600); err != nil {
		t.Fatalf("write resources: %v", err)
	}
	environ := []string{
		"XITEMS_RESOURCES=" + resources,
		"XITEMS_FOREGROUND=yellow",
		"XITEMS_HORIZONTAL_PADDING=2",
		"XITEMS_SOCKET=/tmp/env.sock",
		"XITEMS_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"-hp", "5", "-sbg", "red"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	th := cfg.App.Theme
	if th.Background != "navy" {
		t.Fatalf("expected resources background, got %q", th.Background)
	}
	if th.Foreground != "yellow" {
		t.Fatalf("expected environment to override resources, got %q", th.Foreground)
	}
	if th.HorizontalPadding != 5 {
		t.Fatalf("expected flag to override environment, got %d", th.HorizontalPadding)
	}
	if th.BorderWidth != 3 {
		t.Fatalf("expected resources border width, got %d", th.BorderWidth)
	}
	if th.SelectedBackground != "red" {
		t.Fatalf("expected flag selected background, got %q", th.SelectedBackground)
	}
	if th.SelectedForeground != "white" {
		t.Fatalf("expected default selected foreground, got %q", th.SelectedForeground)
	}
	if cfg.App.SocketPath != "/tmp/env.sock" || !cfg.Logging.Trace {
		t.Fatalf("expected socket and trace from environment, got %+v", cfg)
	}
	if cfg.Flags["hp"] != "5" || cfg.Flags["bg"] != "navy" {
		t.Fatalf("unexpected flags map: %v", cfg.Flags)
	}
}

func TestLoadArgsResourcesFromXDG(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "xitems"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "xitems", "resources.yaml"), []byte("font: bold\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + dir})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Theme.Font != "bold" {
		t.Fatalf("expected font from XDG resources, got %q", cfg.App.Theme.Font)
	}
}

func TestLoadArgsMalformedResources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("borderWidth: [nope\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadArgs(nil, []string{"XITEMS_RESOURCES=" + path}); err == nil {
		t.Fatalf("expected malformed resources to fail")
	}
}

func TestLoadArgsMissingResourcesIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := LoadArgs(nil, []string{"XITEMS_RESOURCES=" + path}); err != nil {
		t.Fatalf("expected missing resources to be ignored, got %v", err)
	}
}

func TestLoadArgsInvalidEnvironment(t *testing.T) {
	if _, err := LoadArgs(nil, []string{"XITEMS_BORDER_WIDTH=wide"}); err == nil {
		t.Fatalf("expected invalid integer to fail")
	}
}

func TestLoadArgsRejectsPositionalArguments(t *testing.T) {
	if _, err := LoadArgs([]string{"extra"}, nil); err == nil {
		t.Fatalf("expected positional argument to fail")
	}
}

func TestLoadArgsHelp(t *testing.T) {
	_, err := LoadArgs([]string{"-h"}, nil)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	var help *HelpError
	if !errors.As(err, &help) || !strings.Contains(help.Usage, "-sfg") {
		t.Fatalf("expected usage text listing flags")
	}
}

func TestLoadArgsChildFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{"-input", "/tmp/in", "-output", "/tmp/out", "-x", "0", "-y", "0", "-unselected"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.InputPath != "/tmp/in" || cfg.App.OutputPath != "/tmp/out" {
		t.Fatalf("unexpected io paths: %+v", cfg.App)
	}
	if cfg.App.X != 0 || cfg.App.Y != 0 || !cfg.App.Unselected {
		t.Fatalf("unexpected placement: %+v", cfg.App)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	bad := cfg
	bad.App.Theme.HorizontalPadding = -1
	if Validate(bad) == nil {
		t.Fatalf("expected negative padding to fail")
	}
	bad = cfg
	bad.App.X = -2
	if Validate(bad) == nil {
		t.Fatalf("expected x below -1 to fail")
	}
}
