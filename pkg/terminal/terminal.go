// Package terminal works out what an output stream can display: whether it
// is a terminal, how many colors it takes, its size and whether Unicode box
// and spinner glyphs are safe to emit.
package terminal

import (
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// DefaultWidth is assumed when the size cannot be probed
	DefaultWidth = 80
	// DefaultHeight is assumed when the size cannot be probed
	DefaultHeight = 25
)

// Capabilities describes an output stream
type Capabilities struct {
	SupportsAnsi    bool
	ColorSystem     color.System
	Width           int
	Height          int
	IsTerminal      bool
	SupportsUnicode bool
	LegacyConsole   bool
}

// Plain describes a non-terminal sink of the given width: no escape
// sequences, Unicode allowed.
func Plain(width int) Capabilities {
	return Capabilities{
		ColorSystem:     color.SystemNone,
		Width:           width,
		Height:          DefaultHeight,
		SupportsUnicode: true,
	}
}

// Forced describes an ANSI terminal of the given width and color system
func Forced(width int, sys color.System) Capabilities {
	return Capabilities{
		SupportsAnsi:    true,
		ColorSystem:     sys,
		Width:           width,
		Height:          DefaultHeight,
		IsTerminal:      true,
		SupportsUnicode: true,
	}
}

// Environ is the environment lookup used while probing. It matches
// termenv's so the same value drives both.
type Environ = termenv.Environ

// MapEnv is an Environ backed by a map, for callers that need to probe
// against something other than the process environment.
type MapEnv map[string]string

// Environ returns the entries as KEY=VALUE pairs
func (m MapEnv) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

// Getenv returns the value for key, or ""
func (m MapEnv) Getenv(key string) string {
	return m[key]
}

type osEnviron struct{}

func (osEnviron) Environ() []string        { return os.Environ() }
func (osEnviron) Getenv(key string) string { return os.Getenv(key) }

// Probe inspects out and the process environment
func Probe(out io.Writer) Capabilities {
	return ProbeEnv(out, osEnviron{})
}

// ProbeEnv inspects out using env for every environment lookup
func ProbeEnv(out io.Writer, env Environ) Capabilities {
	logger := logging.GetLogger("terminal")

	fd, hasFd := descriptor(out)
	tty := hasFd && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	forced := forceColor(env)

	termName := env.Getenv("TERM")
	legacy := runtime.GOOS == "windows" && env.Getenv("WT_SESSION") == "" && termName == ""

	caps := Capabilities{
		IsTerminal:      tty,
		SupportsAnsi:    (tty || forced) && termName != "dumb" && termName != "unknown",
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		LegacyConsole:   legacy,
		SupportsUnicode: !legacy && unicodeLocale(env),
	}

	if caps.SupportsAnsi {
		output := termenv.NewOutput(out, termenv.WithEnvironment(env), termenv.WithTTY(true))
		caps.ColorSystem = FromProfile(output.Profile)
		if forced && caps.ColorSystem == color.SystemNone && env.Getenv("NO_COLOR") == "" {
			caps.ColorSystem = color.System4Bit
		}
		if legacy && caps.ColorSystem > color.System3Bit {
			caps.ColorSystem = color.System3Bit
		}
	}

	if tty {
		if w, h, err := term.GetSize(int(fd)); err == nil {
			if w > 0 {
				caps.Width = w
			}
			if h > 0 {
				caps.Height = h
			}
		} else {
			logger.Trace().Err(err).Msg("terminal size unavailable")
		}
	}
	if w, ok := positiveInt(env.Getenv("COLUMNS")); ok {
		caps.Width = w
	}
	if h, ok := positiveInt(env.Getenv("LINES")); ok {
		caps.Height = h
	}

	logger.Debug().
		Bool("terminal", caps.IsTerminal).
		Bool("ansi", caps.SupportsAnsi).
		Str("colorSystem", caps.ColorSystem.String()).
		Int("width", caps.Width).
		Int("height", caps.Height).
		Bool("unicode", caps.SupportsUnicode).
		Bool("legacy", caps.LegacyConsole).
		Msg("Probed terminal capabilities")

	return caps
}

// FromProfile maps a termenv profile onto a color system
func FromProfile(p termenv.Profile) color.System {
	switch p {
	case termenv.TrueColor:
		return color.SystemTrueColor
	case termenv.ANSI256:
		return color.System8Bit
	case termenv.ANSI:
		return color.System4Bit
	default:
		return color.SystemNone
	}
}

// ToProfile is the inverse of FromProfile. The 3-bit system has no profile
// of its own and maps to ANSI.
func ToProfile(sys color.System) termenv.Profile {
	switch sys {
	case color.SystemTrueColor:
		return termenv.TrueColor
	case color.System8Bit:
		return termenv.ANSI256
	case color.System3Bit, color.System4Bit:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

func descriptor(out io.Writer) (uintptr, bool) {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return f.Fd(), true
}

func forceColor(env Environ) bool {
	if v := env.Getenv("FORCE_COLOR"); v != "" && v != "0" {
		return true
	}
	if v := env.Getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
		return true
	}
	return false
}

// unicodeLocale reports false only for an explicitly non-UTF-8 locale. The
// first of LC_ALL, LC_CTYPE and LANG that is set decides.
func unicodeLocale(env Environ) bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := env.Getenv(key)
		if v == "" {
			continue
		}
		v = strings.ToLower(v)
		return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
	}
	return true
}

func positiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
