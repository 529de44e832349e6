package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/xitems/internal/backend"
	"github.com/atomicstack/xitems/internal/keysym"
	"github.com/atomicstack/xitems/internal/logging"
	"github.com/atomicstack/xitems/internal/logging/events"
	"github.com/atomicstack/xitems/internal/menu"
	"github.com/atomicstack/xitems/internal/theme"
	"github.com/atomicstack/xitems/internal/tmux"
	"github.com/atomicstack/xitems/internal/ui"
	"github.com/atomicstack/xitems/internal/ui/state"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Theme theme.Spec
	// X and Y place the panel; -1 means the pointer location.
	X, Y       int
	Popup      bool
	SocketPath string
	Clipboard  bool
	ShowFooter bool
	Unselected bool
	InputPath  string
	OutputPath string
}

// ErrSetup marks failures that happen before the menu can be shown.
var ErrSetup = errors.New("setup failed")

// ExitError carries a non-zero exit status reported by a popup child.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("popup exited with status %d", e.Code)
}

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout

	acquireTTY     = backend.AcquireTTY
	writeClipboard = clipboard.WriteAll
	runProgram     = func(ctx context.Context, m *ui.Model, tty *os.File) error {
		program := tea.NewProgram(m,
			tea.WithContext(ctx),
			tea.WithInput(tty),
			tea.WithOutput(tty),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithReportFocus(),
		)
		_, err := program.Run()
		return err
	}
)

// Run reads the items, shows the menu and writes the chosen entry.
func Run(cfg Config) error {
	return RunContext(context.Background(), cfg)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, cfg Config) error {
	var raw bytes.Buffer
	list, err := readItems(cfg.InputPath, &raw)
	if err != nil {
		return err
	}
	if list.Len() == 0 {
		return nil
	}
	styles, err := theme.New(cfg.Theme)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}

	if cfg.Popup {
		if tmux.InsideTmux() {
			return runPopup(ctx, cfg, list, styles, raw.Bytes())
		}
		logging.Warn("not running inside tmux, drawing in the terminal instead", "flag", "popup")
		events.Popup.Fallback("not inside tmux")
	}
	return runDirect(ctx, cfg, list, styles)
}

func readItems(path string, raw *bytes.Buffer) (*menu.List, error) {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: open input: %w", ErrSetup, err)
		}
		defer f.Close()
		r = f
	}
	return menu.Build(io.TeeReader(r, raw), keysym.Lookup)
}

func runDirect(ctx context.Context, cfg Config, list *menu.List, styles *theme.Styles) error {
	session, err := state.NewSession(list, styles.RowHeight())
	if err != nil {
		return err
	}
	if cfg.Unselected {
		session.Unselect()
	}
	x, y := position(ctx, cfg)
	model := ui.NewModel(session, styles, ui.Options{X: x, Y: y, ShowFooter: cfg.ShowFooter})

	tty, err := acquireTTY(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}
	if tty != nil {
		defer tty.Close()
	}
	if err := runProgram(ctx, model, tty); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	out := model.Outcome()
	if out.Status != state.Committed || !out.HasText {
		return nil
	}
	return emit(cfg, out.Text+"\n")
}

// position resolves unset coordinates to the tmux cursor, or the top-left
// corner outside tmux.
func position(ctx context.Context, cfg Config) (int, int) {
	x, y := cfg.X, cfg.Y
	if x >= 0 && y >= 0 {
		events.App.Position(x, y, "config")
		return x, y
	}
	source := "default"
	cx, cy := 0, 0
	if tmux.InsideTmux() {
		if c, err := tmux.Connect(ctx, cfg.SocketPath); err == nil {
			if cur, ok := c.CursorPosition(); ok {
				cx, cy = cur.X, cur.Y
				source = "tmux"
			}
			c.Close()
		}
	}
	if x < 0 {
		x = cx
	}
	if y < 0 {
		y = cy
	}
	events.App.Position(x, y, source)
	return x, y
}

// emit writes the committed entry to the output destination, then copies it
// to the clipboard when asked to.
func emit(cfg Config, text string) error {
	dest := "stdout"
	if cfg.OutputPath != "" {
		dest = cfg.OutputPath
		if err := os.WriteFile(cfg.OutputPath, []byte(text), 0o600); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else if _, err := io.WriteString(stdout, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	events.App.Output(dest, len(text))

	if cfg.Clipboard && text != "" {
		if err := writeClipboard(trimNewline(text)); err != nil {
			logging.Warn("couldn't copy to clipboard", "err", err)
		}
	}
	return nil
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
