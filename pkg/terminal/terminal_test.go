// pkg/terminal/terminal_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test capability probing against controlled environments

package terminal_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/terminal"
)

func TestProbeEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     terminal.MapEnv
		ansi    bool
		system  color.System
		width   int
		height  int
		unicode bool
	}{
		{
			name:    "buffer is not a terminal",
			env:     terminal.MapEnv{"TERM": "xterm-256color"},
			system:  color.SystemNone,
			width:   terminal.DefaultWidth,
			height:  terminal.DefaultHeight,
			unicode: true,
		},
		{
			name:    "forced 256 colors",
			env:     terminal.MapEnv{"TERM": "xterm-256color", "FORCE_COLOR": "1"},
			ansi:    true,
			system:  color.System8Bit,
			width:   terminal.DefaultWidth,
			height:  terminal.DefaultHeight,
			unicode: true,
		},
		{
			name:    "forced truecolor",
			env:     terminal.MapEnv{"TERM": "xterm", "COLORTERM": "truecolor", "FORCE_COLOR": "1"},
			ansi:    true,
			system:  color.SystemTrueColor,
			width:   terminal.DefaultWidth,
			height:  terminal.DefaultHeight,
			unicode: true,
		},
		{
			name:    "forced without TERM falls back to standard colors",
			env:     terminal.MapEnv{"TERM": "vt100", "FORCE_COLOR": "1"},
			ansi:    true,
			system:  color.System4Bit,
			width:   terminal.DefaultWidth,
			height:  terminal.DefaultHeight,
			unicode: true,
		},
		{
			name:    "NO_COLOR keeps ansi but drops color",
			env:     terminal.MapEnv{"TERM": "xterm-256color", "FORCE_COLOR": "1", "NO_COLOR": "1"},
			ansi:    true,
			system:  color.SystemNone,
			width:   terminal.DefaultWidth,
			height:  terminal.DefaultHeight,
			unicode: true,
		},
		{
			name:    "dumb terminal",
			env:     terminal.MapEnv{"TERM": "dumb", "FORCE_COLOR": "1"},
			system:  color.SystemNone,
			width:   terminal.DefaultWidth,
			height:  terminal.DefaultHeight,
			unicode: true,
		},
		{
			name:    "size from environment",
			env:     terminal.MapEnv{"TERM": "xterm", "COLUMNS": "132", "LINES": "50"},
			system:  color.SystemNone,
			width:   132,
			height:  50,
			unicode: true,
		},
		{
			name:    "invalid size ignored",
			env:     terminal.MapEnv{"TERM": "xterm", "COLUMNS": "wide", "LINES": "-3"},
			system:  color.SystemNone,
			width:   terminal.DefaultWidth,
			height:  terminal.DefaultHeight,
			unicode: true,
		},
		{
			name:   "C locale disables unicode",
			env:    terminal.MapEnv{"TERM": "xterm", "LANG": "C"},
			system: color.SystemNone,
			width:  terminal.DefaultWidth,
			height: terminal.DefaultHeight,
		},
		{
			name:    "LC_ALL wins over LANG",
			env:     terminal.MapEnv{"TERM": "xterm", "LC_ALL": "en_US.UTF-8", "LANG": "C"},
			system:  color.SystemNone,
			width:   terminal.DefaultWidth,
			height:  terminal.DefaultHeight,
			unicode: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := terminal.ProbeEnv(&bytes.Buffer{}, tt.env)

			assert.False(t, caps.IsTerminal)
			assert.Equal(t, tt.ansi, caps.SupportsAnsi)
			assert.Equal(t, tt.system, caps.ColorSystem)
			assert.Equal(t, tt.width, caps.Width)
			assert.Equal(t, tt.height, caps.Height)
			assert.Equal(t, tt.unicode, caps.SupportsUnicode)
		})
	}
}

func TestProfileMapping(t *testing.T) {
	for _, sys := range []color.System{color.SystemNone, color.System4Bit, color.System8Bit, color.SystemTrueColor} {
		assert.Equal(t, sys, terminal.FromProfile(terminal.ToProfile(sys)), sys.String())
	}
	assert.Equal(t, termenv.ANSI, terminal.ToProfile(color.System3Bit))
}

func TestPresets(t *testing.T) {
	plain := terminal.Plain(40)
	assert.False(t, plain.SupportsAnsi)
	assert.Equal(t, 40, plain.Width)
	assert.True(t, plain.SupportsUnicode)

	forced := terminal.Forced(60, color.System8Bit)
	assert.True(t, forced.SupportsAnsi)
	assert.True(t, forced.IsTerminal)
	assert.Equal(t, color.System8Bit, forced.ColorSystem)
}

func TestMapEnv(t *testing.T) {
	env := terminal.MapEnv{"A": "1"}
	assert.Equal(t, "1", env.Getenv("A"))
	assert.Equal(t, "", env.Getenv("B"))
	assert.Equal(t, []string{"A=1"}, env.Environ())
}
