// internal/log/log.go
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes JSON records to a rotating file and mirrors warnings and
// errors to stderr. A nil *Logger is valid: debug and info are dropped,
// warnings and errors go to the default slog logger.
type Logger struct {
	*slog.Logger
	LogFile string
	LogDir  string
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log: invalid level %q", level)
	}
}

// New creates a logger writing to dir/badge.slog. An empty dir selects the
// user config directory.
func New(level string, dir string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if dir == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to find user config dir: %v\n", err)
			cfgDir = "."
		}
		dir = filepath.Join(cfgDir, "led-badge")
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "badge.slog"),
		MaxSize:    8, // MB
		MaxBackups: 2,
	}
	if lvl == slog.LevelDebug {
		w.MaxSize = 64
	}

	l := NewWithWriter(w, os.Stderr, lvl)
	l.LogFile = w.Filename
	l.LogDir = dir

	l.Info("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS))
	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Debug("Build", slog.String("Go version", bi.GoVersion), slog.String("Path", bi.Path))
	}

	return l, nil
}

// NewWithWriter builds a logger on explicit writers; console may be nil.
func NewWithWriter(file io.Writer, console io.Writer, lvl slog.Level) *Logger {
	var h slog.Handler = slog.NewJSONHandler(file, &slog.HandlerOptions{Level: lvl})
	if console != nil {
		h = teeHandler{
			a: h,
			b: slog.NewTextHandler(console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		}
	}
	return &Logger{Logger: slog.New(h)}
}

func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
	} else {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.Warn(fmt.Sprintf(msg, args...))
}

func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
	} else {
		l.Logger.Error(msg, args...)
	}
}

func (l *Logger) Errorf(msg string, args ...any) {
	l.Error(fmt.Sprintf(msg, args...))
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		LogDir:  l.LogDir,
	}
}

// teeHandler fans records out to two handlers.
type teeHandler struct {
	a, b slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return t.a.Enabled(ctx, lvl) || t.b.Enabled(ctx, lvl)
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if t.a.Enabled(ctx, r.Level) {
		err = t.a.Handle(ctx, r.Clone())
	}
	if t.b.Enabled(ctx, r.Level) {
		if e := t.b.Handle(ctx, r.Clone()); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{a: t.a.WithAttrs(attrs), b: t.b.WithAttrs(attrs)}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{a: t.a.WithGroup(name), b: t.b.WithGroup(name)}
}
