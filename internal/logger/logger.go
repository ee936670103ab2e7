// Package logger is the structured logger of the skinkit CLI. The theme,
// layout and render packages are pure and never log.
package logger

import (
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Fields are attached to every entry of a derived Logger.
type Fields map[string]any

// Options configures New. Writer defaults to stderr so command output on
// stdout stays clean.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a nil-safe zerolog wrapper: every method on a nil *Logger does nothing.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger. An empty Level means info.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if opts.HumanReadable {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}
	return &Logger{zl: zerolog.New(writer).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With returns a derived logger carrying fields, added in key order.
func (l *Logger) With(fields Fields) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.zl.With()
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		ctx = ctx.Interface(key, fields[key])
	}
	return &Logger{zl: ctx.Logger()}
}

// Document scopes entries to a theme document path.
func (l *Logger) Document(path string) *Logger {
	return l.With(Fields{"file": path})
}

// Theme scopes entries to a theme id.
func (l *Logger) Theme(id string) *Logger {
	return l.With(Fields{"theme": id})
}

// Findings logs parse warnings at warn level and parse errors at error level.
func (l *Logger) Findings(warnings, errs []string) {
	if l == nil {
		return
	}
	for _, msg := range warnings {
		l.zl.Warn().Msg(msg)
	}
	for _, msg := range errs {
		l.zl.Error().Msg(msg)
	}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.zl.Debug().Msg(msg)
	}
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.zl.Info().Msg(msg)
	}
}

func (l *Logger) Warn(msg string) {
	if l != nil {
		l.zl.Warn().Msg(msg)
	}
}

// Error logs msg with err attached when err is non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.zl.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
