package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type launch struct {
	socket  string
	pane    string
	exit    string
	output  string
	cleanup func()
}

// launchMenu runs xitems in a fresh tmux session, feeding it items on stdin.
func launchMenu(t *testing.T, name, items string) launch {
	t.Helper()
	bin := BuildBinary(t)
	socket, cleanup, logDir := StartTmuxServer(t)
	t.Cleanup(func() { AssertNoServerCrash(t, logDir) })

	dir := t.TempDir()
	l := launch{
		socket:  socket,
		pane:    name + ":0.0",
		exit:    filepath.Join(dir, "exit-code"),
		output:  filepath.Join(dir, "output"),
		cleanup: cleanup,
	}
	itemsPath := filepath.Join(dir, "items")
	if err := os.WriteFile(itemsPath, []byte(items), 0o644); err != nil {
		t.Fatalf("failed to write items: %v", err)
	}
	script := filepath.Join(dir, "run.sh")
	body := "#!/bin/sh\n" +
		"\"$XITEMS_BIN\" -x 0 -y 0 -output \"$XITEMS_OUT\" < \"$XITEMS_ITEMS\" 2>/dev/null\n" +
		"printf '%s' $? > \"$XITEMS_EXIT\"\n" +
		"sleep 300\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("failed to write launcher script: %v", err)
	}
	cmd := tmuxCommand(socket, "new-session", "-d", "-x", "80", "-y", "24", "-s", name,
		"-e", "XITEMS_BIN="+bin,
		"-e", "XITEMS_OUT="+l.output,
		"-e", "XITEMS_ITEMS="+itemsPath,
		"-e", "XITEMS_EXIT="+l.exit,
		script)
	if err := cmd.Run(); err != nil {
		t.Skipf("skipping: unable to create tmux session: %v", err)
	}
	return l
}

func (l launch) keys(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if err := tmuxCommand(l.socket, "send-keys", "-t", l.pane, k).Run(); err != nil {
			t.Fatalf("send-keys %s failed: %v", k, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func TestMenuCommitsSelectionInPane(t *testing.T) {
	l := launchMenu(t, "commit", "apple\nbanana\ncherry\n")
	defer l.cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	screen := WaitForPaneText(t, ctx, l.socket, l.pane, "cherry", l.exit)
	for _, item := range []string{"apple", "banana"} {
		if !strings.Contains(screen, item) {
			t.Fatalf("expected %q on screen, got:\n%s", item, screen)
		}
	}

	l.keys(t, "Down", "Down", "Enter")
	if code := WaitForExit(t, ctx, l.exit); code != "0" {
		t.Fatalf("expected exit 0, got %s", code)
	}
	data, err := os.ReadFile(l.output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "cherry\n" {
		t.Fatalf("expected cherry, got %q", data)
	}
}

func TestMenuEscapeCancelsInPane(t *testing.T) {
	l := launchMenu(t, "cancel", "apple\nbanana\n")
	defer l.cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	WaitForPaneText(t, ctx, l.socket, l.pane, "banana", l.exit)

	l.keys(t, "Escape")
	if code := WaitForExit(t, ctx, l.exit); code != "0" {
		t.Fatalf("expected exit 0, got %s", code)
	}
	if _, err := os.Stat(l.output); !os.IsNotExist(err) {
		t.Fatalf("expected no output file after cancel, stat err %v", err)
	}
}
