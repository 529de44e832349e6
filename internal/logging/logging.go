package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

const (
	defaultLogFile = "xitems.log"
	progName       = "xitems"
)

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile

	diagMu sync.Mutex
	diag   = newDiagnostics(os.Stderr)
)

func newDiagnostics(w io.Writer) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{Prefix: progName})
}

// SetDiagnosticOutput redirects warnings and fatal diagnostics, which go to
// stderr by default.
func SetDiagnosticOutput(w io.Writer) {
	diagMu.Lock()
	diag = newDiagnostics(w)
	diagMu.Unlock()
}

// Warn reports a recoverable problem on the diagnostic stream and mirrors it
// into the trace log.
func Warn(msg string, keyvals ...interface{}) {
	diagMu.Lock()
	diag.Warn(msg, keyvals...)
	diagMu.Unlock()
	payload := map[string]interface{}{"msg": msg}
	for i := 0; i+1 < len(keyvals); i += 2 {
		payload[fmt.Sprint(keyvals[i])] = fmt.Sprint(keyvals[i+1])
	}
	Trace("warning", payload)
}

// Diagnostic reports a fatal error on the diagnostic stream.
func Diagnostic(err error) {
	if err == nil {
		return
	}
	diagMu.Lock()
	diag.Error(err.Error())
	diagMu.Unlock()
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	traceMu.Lock()
	path := logPath
	traceMu.Unlock()

	f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	log.SetOutput(f)
	log.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	enabled := traceEnabled
	path := logPath
	traceMu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Path returns the current log destination.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}
