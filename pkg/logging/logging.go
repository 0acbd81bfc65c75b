// Package logging configures zerolog for inkwell.
//
// Log lines go to a console writer and, when it can be opened, to a log file
// under the XDG state directory. The console writer must never be the
// stream inkwell renders to: a log line written between two frames of a live
// region would be erased by the next redraw.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls Setup
type Options struct {
	// Verbosity maps 0 to warn, 1 to info, 2 to debug and 3+ to trace
	Verbosity int
	// Console receives human readable lines; nil means os.Stderr
	Console io.Writer
	// File overrides the log file path; "-" disables the file
	File string
}

// Until Setup runs only warnings and errors are logged, so programs that use
// the library packages without configuring logging stay quiet.
func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// levels indexed by verbosity; anything past the end is trace
var levels = []zerolog.Level{zerolog.WarnLevel, zerolog.InfoLevel, zerolog.DebugLevel}

func levelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity < len(levels) {
		return levels[verbosity]
	}
	return zerolog.TraceLevel
}

// SetupLogger logs to stderr and the default log file
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity})
}

// SetupLoggerTo logs to console and the default log file
func SetupLoggerTo(console io.Writer, verbosity int) {
	Setup(Options{Verbosity: verbosity, Console: console})
}

// Setup replaces the global logger
func Setup(opts Options) {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(console),
	}}

	path := opts.File
	if path == "" {
		path = FilePath()
	}
	var fileErr error
	if path != "-" {
		var f *os.File
		if f, fileErr = openLogFile(path); fileErr == nil {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	return log.With().Fields(fields).Logger()
}

// FilePath is the default log file, $XDG_STATE_HOME/inkwell/inkwell.log
func FilePath() string {
	xdg.Reload()
	if xdg.StateHome == "" {
		return "inkwell.log"
	}
	return filepath.Join(xdg.StateHome, "inkwell", "inkwell.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// LogDuration logs how long operation took since start
func LogDuration(start time.Time, operation string) {
	log.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
