// Package cmd implements the kv command-line interface.
package cmd

import (
	"io"
	"os"

	"kvdb/internal/config"
	"kvdb/internal/kvstore"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	Store  kvstore.Store
	Config config.Config
	Logger *zap.Logger
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	JSON   bool // output in JSON format
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	return colorize(a.Out, "\033[32m", s)
}

// warnColor wraps s in orange ANSI codes if w is a terminal. Commands that
// run without an App, like doctor, use it directly.
func warnColor(w io.Writer, s string) string {
	return colorize(w, "\033[38;5;214m", s)
}

func colorize(w io.Writer, code, s string) string {
	if isTerminal(w) {
		return code + s + "\033[0m"
	}
	return s
}

// logger returns a.Logger, or a no-op logger for apps built without one.
func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
