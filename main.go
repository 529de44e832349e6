package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atomicstack/xitems/internal/app"
	"github.com/atomicstack/xitems/internal/config"
	"github.com/atomicstack/xitems/internal/logging"
	"github.com/atomicstack/xitems/internal/logging/events"
	"github.com/atomicstack/xitems/internal/tmux"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.RunContext(ctx, runtimeCfg.App)
	stop()
	if err != nil {
		logging.Error(err)
		os.Exit(exitCode(err))
	}
}

// exitCode reports err on stderr and maps it to the process exit status. A
// popup child has already shown its own diagnostic.
func exitCode(err error) int {
	var exit *app.ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	logging.Diagnostic(err)
	return 1
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload describes the run for the trace log: where items come
// from and go to, which mode draws the menu, and which streams are terminals.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	a := cfg.App
	payload := map[string]interface{}{
		"argv":       cfg.Args,
		"flags":      flags,
		"config":     cfg,
		"mode":       runMode(a),
		"input":      orDefault(a.InputPath, "stdin"),
		"output":     orDefault(a.OutputPath, "stdout"),
		"insideTmux": tmux.InsideTmux(),
		"streams":    probeStreams(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	return payload
}

func runMode(a app.Config) string {
	switch {
	case !a.Popup:
		return "direct"
	case tmux.InsideTmux():
		return "popup"
	}
	return "direct (popup unavailable)"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// streamInfo records whether a standard stream is a terminal. Items usually
// arrive on a pipe while the menu draws on /dev/tty.
type streamInfo struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Cols     int    `json:"cols,omitempty"`
	Rows     int    `json:"rows,omitempty"`
	Error    string `json:"error,omitempty"`
}

func probeStreams() []streamInfo {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	out := make([]streamInfo, len(files))
	for i, f := range files {
		info := streamInfo{Name: names[i]}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			info.Terminal = true
			cols, rows, err := term.GetSize(fd)
			if err != nil {
				info.Error = err.Error()
			}
			info.Cols, info.Rows = cols, rows
		}
		out[i] = info
	}
	return out
}
