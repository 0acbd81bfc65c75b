// Package config loads inkwell's layered configuration.
//
// Values are read, in increasing priority, from the embedded defaults.toml,
// the user file ($XDG_CONFIG_HOME/inkwell/config.toml or an explicit path)
// and INKWELL_<SECTION>_<KEY> environment variables, so INKWELL_CONSOLE_WIDTH
// sets console.width and INKWELL_LIVE_VERTICAL_OVERFLOW sets
// live.vertical_overflow.
package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/terminal"
)

// Config is the decoded configuration
type Config struct {
	Console Console `koanf:"console"`
	Live    Live    `koanf:"live"`
	Spinner Spinner `koanf:"spinner"`
	Theme   Theme   `koanf:"theme"`
}

// Console overrides what the terminal probe reports
type Console struct {
	ColorSystem   string `koanf:"color_system"`
	Width         int    `koanf:"width"`
	Height        int    `koanf:"height"`
	TabSize       int    `koanf:"tab_size"`
	ForceTerminal bool   `koanf:"force_terminal"`
	NoColor       bool   `koanf:"no_color"`
	LegacyWindows bool   `koanf:"legacy_windows"`
	SafeBox       bool   `koanf:"safe_box"`
}

// Live holds live region defaults
type Live struct {
	RefreshPerSecond float64 `koanf:"refresh_per_second"`
	Transient        bool    `koanf:"transient"`
	VerticalOverflow string  `koanf:"vertical_overflow"`
	OverflowEdge     string  `koanf:"overflow_edge"`
}

// Spinner selects the default spinner animation
type Spinner struct {
	Name     string        `koanf:"name"`
	Interval time.Duration `koanf:"interval"`
}

// Theme points at an optional theme file and inline style overrides
type Theme struct {
	File   string                 `koanf:"file"`
	Styles map[string]interface{} `koanf:"styles"`
}

const defaultRefreshPerSecond = 4.0

// RefreshInterval converts RefreshPerSecond into a ticker period
func (l Live) RefreshInterval() time.Duration {
	rps := l.RefreshPerSecond
	if rps <= 0 {
		rps = defaultRefreshPerSecond
	}
	return time.Duration(float64(time.Second) / rps)
}

var (
	overflowNames = map[string]bool{"crop": true, "ellipsis": true, "visible": true}
	edgeNames     = map[string]bool{"top": true, "bottom": true}
)

// Validate checks values that decoding alone cannot
func (c *Config) Validate() error {
	if _, _, err := color.ParseSystem(c.Console.ColorSystem); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid console.color_system").
			WithDetail("key", "console.color_system").
			WithDetail("value", c.Console.ColorSystem)
	}
	checks := []struct {
		key   string
		value string
		valid map[string]bool
	}{
		{"live.vertical_overflow", c.Live.VerticalOverflow, overflowNames},
		{"live.overflow_edge", c.Live.OverflowEdge, edgeNames},
	}
	for _, check := range checks {
		if !check.valid[strings.ToLower(check.value)] {
			return errors.Newf(errors.ErrConfigParse, "invalid %s %q", check.key, check.value).
				WithDetail("key", check.key).
				WithDetail("value", check.value)
		}
	}
	if c.Console.Width < 0 || c.Console.Height < 0 || c.Console.TabSize < 0 {
		return errors.New(errors.ErrConfigParse, "console sizes must not be negative")
	}
	if c.Spinner.Interval < 0 {
		return errors.New(errors.ErrConfigParse, "spinner.interval must not be negative").
			WithDetail("key", "spinner.interval")
	}
	return nil
}

// Capabilities layers the console overrides over a probed descriptor
func (c *Config) Capabilities(probed terminal.Capabilities) (terminal.Capabilities, error) {
	caps := probed
	cc := c.Console

	if cc.ForceTerminal {
		caps.IsTerminal = true
		caps.SupportsAnsi = true
		if caps.ColorSystem == color.SystemNone {
			caps.ColorSystem = color.System4Bit
		}
	}

	sys, explicit, err := color.ParseSystem(cc.ColorSystem)
	if err != nil {
		return probed, errors.Wrap(err, errors.ErrConfigParse, "invalid console.color_system").
			WithDetail("value", cc.ColorSystem)
	}
	if explicit {
		caps.ColorSystem = sys
	}
	if cc.NoColor {
		caps.ColorSystem = color.SystemNone
	}
	if !caps.SupportsAnsi {
		caps.ColorSystem = color.SystemNone
	}

	if cc.Width > 0 {
		caps.Width = cc.Width
	}
	if cc.Height > 0 {
		caps.Height = cc.Height
	}
	if cc.LegacyWindows {
		caps.LegacyConsole = true
	}
	return caps, nil
}
