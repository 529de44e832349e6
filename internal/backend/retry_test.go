package backend

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 5, time.Millisecond, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetryExhausts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Retry(context.Background(), 4, 0, func(context.Context) error {
		calls++
		return boom
	})
	if !errors.Is(err, ErrExhausted) || !errors.Is(err, boom) {
		t.Fatalf("expected exhausted error wrapping boom, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("expected 4 calls, got %d", calls)
	}
}

func TestRetryPacesAttempts(t *testing.T) {
	start := time.Now()
	_ = Retry(context.Background(), 3, 10*time.Millisecond, func(context.Context) error {
		return errors.New("fail")
	})
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected attempts to be paced, took %v", elapsed)
	}
}

func TestRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, 100, 5*time.Millisecond, func(context.Context) error {
		calls++
		if calls == 2 {
			cancel()
		}
		return errors.New("fail")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestAcquireTTYFailsWithoutTerminal(t *testing.T) {
	origOpen, origIs := openTTY, isTerminal
	t.Cleanup(func() { openTTY, isTerminal = origOpen, origIs })

	path := filepath.Join(t.TempDir(), "tty")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	opens := 0
	openTTY = func() (*os.File, error) {
		opens++
		return os.Open(path)
	}
	isTerminal = func(*os.File) bool { return false }

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := AcquireTTY(ctx); !errors.Is(err, ErrNoTerminal) {
		t.Fatalf("expected ErrNoTerminal, got %v", err)
	}
	if opens == 0 {
		t.Fatalf("expected at least one attempt")
	}
}

func TestAcquireTTYReturnsTerminal(t *testing.T) {
	origOpen, origIs := openTTY, isTerminal
	t.Cleanup(func() { openTTY, isTerminal = origOpen, origIs })

	path := filepath.Join(t.TempDir(), "tty")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	attempts := 0
	openTTY = func() (*os.File, error) {
		attempts++
		if attempts < 3 {
			return nil, os.ErrNotExist
		}
		return os.Open(path)
	}
	isTerminal = func(*os.File) bool { return true }

	f, err := AcquireTTY(context.Background())
	if err != nil {
		t.Fatalf("expected terminal, got %v", err)
	}
	defer f.Close()
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}
