package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/xitems/internal/logging"
	"github.com/atomicstack/xitems/internal/logging/events"
	"github.com/atomicstack/xitems/internal/menu"
	"github.com/atomicstack/xitems/internal/theme"
	"github.com/atomicstack/xitems/internal/tmux"
)

type popupHost interface {
	CurrentClientID() string
	DisplayPopup(tmux.PopupOptions) error
	WaitFor(channel string) error
	Close() error
}

var (
	connectHost = defaultConnectHost
	executable  = os.Executable

	// popupStartTimeout bounds the wait for the child to start running in
	// the popup.
	popupStartTimeout = 5 * time.Second
	popupPollInterval = 50 * time.Millisecond
)

var (
	// ErrNoClient is returned when no visible tmux client can host the popup.
	ErrNoClient = errors.New("no tmux client to show the popup on")
	// ErrPopupNotStarted is returned when the popup command never ran.
	ErrPopupNotStarted = errors.New("popup did not start")
)

func defaultConnectHost(ctx context.Context, socketPath string) (popupHost, error) {
	c, err := tmux.Connect(ctx, socketPath)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// runPopup shows the menu in a tmux popup running a child copy of this
// program, then relays the child's choice and exit status.
func runPopup(ctx context.Context, cfg Config, list *menu.List, styles *theme.Styles, raw []byte) error {
	dir, err := os.MkdirTemp("", "xitems-")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, "input")
	outputPath := filepath.Join(dir, "output")
	statusPath := filepath.Join(dir, "status")
	startedPath := filepath.Join(dir, "started")
	if err := os.WriteFile(inputPath, raw, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}

	exe, err := executable()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}

	host, err := connectHost(ctx, cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}
	defer host.Close()

	client := host.CurrentClientID()
	if client == "" {
		return fmt.Errorf("%w: %w", ErrSetup, ErrNoClient)
	}

	channel := fmt.Sprintf("xitems-%d-%d", os.Getpid(), time.Now().UnixNano())
	w, h := popupSize(cfg, list, styles)
	opts := tmux.PopupOptions{
		Client:  client,
		Width:   w,
		Height:  h,
		X:       coordinate(cfg.X),
		Y:       coordinate(cfg.Y),
		Command: tmux.ChildCommand(cfg.SocketPath, childArgs(exe, cfg, inputPath, outputPath), startedPath, statusPath, channel),
	}
	events.Popup.Launch(opts.Client, opts.Width, opts.Height, opts.X, opts.Y)
	if err := host.DisplayPopup(opts); err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}
	if err := waitForChild(ctx, host, channel, startedPath); err != nil {
		return err
	}

	status, err := readStatus(statusPath)
	if err != nil {
		return err
	}
	events.Popup.Done(channel, status)
	if status != 0 {
		return &ExitError{Code: status}
	}

	chosen, err := os.ReadFile(outputPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read popup output: %w", err)
	}
	if len(chosen) == 0 {
		return nil
	}
	return emit(cfg, string(chosen))
}

// waitForChild blocks until the child signals channel. It gives up when ctx
// ends, or when the child has not started within popupStartTimeout.
func waitForChild(ctx context.Context, host popupHost, channel, startedPath string) error {
	done := make(chan error, 1)
	go func() { done <- host.WaitFor(channel) }()

	ticker := time.NewTicker(popupPollInterval)
	defer ticker.Stop()
	deadline := time.Now().Add(popupStartTimeout)
	started := false
	for {
		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			return fmt.Errorf("%w: waiting for popup: %w", ErrSetup, ctx.Err())
		case <-ticker.C:
			if started {
				continue
			}
			if _, err := os.Stat(startedPath); err == nil {
				started = true
				continue
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("%w: %w after %s", ErrSetup, ErrPopupNotStarted, popupStartTimeout)
			}
		}
	}
}

// popupSize returns the outer size of the panel, which the popup matches
// exactly.
func popupSize(cfg Config, list *menu.List, styles *theme.Styles) (int, int) {
	w := list.MaxWidth() + 2*styles.HorizontalPadding + styles.Panel.GetHorizontalFrameSize()
	h := list.Len()*styles.RowHeight() + styles.Panel.GetVerticalFrameSize()
	if cfg.ShowFooter {
		h++
	}
	return w, h
}

func coordinate(v int) string {
	if v < 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func childArgs(exe string, cfg Config, inputPath, outputPath string) []string {
	t := cfg.Theme
	args := []string{exe,
		"-font", t.Font,
		"-bg", t.Background,
		"-fg", t.Foreground,
		"-sbg", t.SelectedBackground,
		"-sfg", t.SelectedForeground,
		"-bc", t.BorderColor,
		"-bw", strconv.Itoa(t.BorderWidth),
		"-hp", strconv.Itoa(t.HorizontalPadding),
		"-vp", strconv.Itoa(t.VerticalPadding),
		"-x", "0",
		"-y", "0",
		"-input", inputPath,
		"-output", outputPath,
	}
	if cfg.ShowFooter {
		args = append(args, "-footer")
	}
	if cfg.Unselected {
		args = append(args, "-unselected")
	}
	if logging.TraceEnabled() {
		args = append(args, "-trace", "-log-file", logging.Path())
	}
	return args
}

func readStatus(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read popup status: %w", err)
	}
	code, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("read popup status: %w", err)
	}
	return code, nil
}
