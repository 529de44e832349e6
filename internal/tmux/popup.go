package tmux

import (
	"fmt"
	"strconv"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// popupArgs composes the display-popup command line. The popup has no tmux
// border since the panel draws its own, and closes when the command exits.
func popupArgs(opts PopupOptions) []string {
	args := []string{"display-popup", "-E", "-B"}
	if strings.TrimSpace(opts.Client) != "" {
		args = append(args, "-c", opts.Client)
	}
	args = append(args,
		"-w", strconv.Itoa(opts.Width),
		"-h", strconv.Itoa(opts.Height),
		"-x", position(opts.X),
		"-y", position(opts.Y),
		opts.Command,
	)
	return args
}

func position(v string) string {
	if strings.TrimSpace(v) == "" {
		return "M"
	}
	return v
}

// DisplayPopup opens a popup running opts.Command.
func (c *Client) DisplayPopup(opts PopupOptions) error {
	if opts.Width < 1 || opts.Height < 1 {
		return fmt.Errorf("invalid popup size %dx%d", opts.Width, opts.Height)
	}
	if _, err := c.conn.Command(popupArgs(opts)...); err != nil {
		return fmt.Errorf("display-popup: %w", err)
	}
	return nil
}

// WaitFor blocks until channel is signalled.
func (c *Client) WaitFor(channel string) error {
	if _, err := c.conn.Command("wait-for", channel); err != nil {
		return fmt.Errorf("wait-for %s: %w", channel, err)
	}
	return nil
}

// ChildCommand returns the shell command run inside the popup: an empty
// startedPath is created, then argv runs, then its exit status is recorded
// in statusPath and channel is signalled.
func ChildCommand(socketPath string, argv []string, startedPath, statusPath, channel string) string {
	signal := append([]string{"tmux"}, baseArgs(socketPath)...)
	signal = append(signal, "wait-for", "-S", channel)
	return fmt.Sprintf(": > %s; %s; printf %%d $? > %s; %s",
		shellescape.Quote(startedPath),
		shellescape.QuoteCommand(argv),
		shellescape.Quote(statusPath),
		shellescape.QuoteCommand(signal),
	)
}
