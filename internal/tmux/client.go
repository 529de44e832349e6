package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/xitems/internal/backend"
)

const (
	connectAttempts = 10
	connectInterval = 50 * time.Millisecond
)

// ErrUnavailable is returned when no tmux server can be reached.
var ErrUnavailable = errors.New("couldn't connect to tmux")

// Client is a control-mode connection to one tmux server.
type Client struct {
	socketPath string
	conn       tmuxClient
}

// InsideTmux reports whether the process runs in a tmux pane.
func InsideTmux() bool {
	return strings.TrimSpace(os.Getenv("TMUX")) != ""
}

// Connect opens a control-mode client, retrying briefly while the server
// is busy.
func Connect(ctx context.Context, socketPath string) (*Client, error) {
	var conn tmuxClient
	err := backend.Retry(ctx, connectAttempts, connectInterval, func(context.Context) error {
		c, err := newTmux(socketPath)
		if err != nil {
			return err
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &Client{socketPath: socketPath, conn: conn}, nil
}

func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// SocketPath returns the socket the client was opened with, which is empty
// for the default server.
func (c *Client) SocketPath() string { return c.socketPath }

// CurrentClientID attempts to detect the client that launched the process
// so the popup opens on the visible tmux client instead of the control-mode
// connection.
func (c *Client) CurrentClientID() string {
	target := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	name, err := c.conn.DisplayMessage(target, "#{client_name}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}

// CursorPosition returns the cursor position of the current pane, offset by
// the pane position within its window.
func (c *Client) CursorPosition() (Cursor, bool) {
	target := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	out, err := c.conn.DisplayMessage(target, "#{cursor_x} #{cursor_y} #{pane_left} #{pane_top}")
	if err != nil {
		return Cursor{}, false
	}
	fields := strings.Fields(out)
	if len(fields) != 4 {
		return Cursor{}, false
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Cursor{}, false
		}
		v[i] = n
	}
	return Cursor{X: v[0] + v[2], Y: v[1] + v[3]}, true
}
