package backend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	ttyPath     = "/dev/tty"
	ttyAttempts = 1000
	ttyInterval = time.Millisecond
)

// ErrNoTerminal is returned when the controlling terminal is unusable.
var ErrNoTerminal = errors.New("couldn't grab keyboard")

// openTTY is swapped out in tests.
var openTTY = func() (*os.File, error) {
	return os.OpenFile(ttyPath, os.O_RDWR, 0)
}

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// AcquireTTY opens the controlling terminal for exclusive keyboard and
// pointer input, retrying for about a second before giving up.
func AcquireTTY(ctx context.Context) (*os.File, error) {
	var tty *os.File
	err := Retry(ctx, ttyAttempts, ttyInterval, func(context.Context) error {
		f, err := openTTY()
		if err != nil {
			return err
		}
		if !isTerminal(f) {
			f.Close()
			return fmt.Errorf("%s is not a terminal", f.Name())
		}
		tty = f
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTerminal, err)
	}
	return tty, nil
}
