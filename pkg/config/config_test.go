// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs), environment
// PURPOSE: Test layered configuration loading and capability overrides

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/config"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/style"
	"github.com/arthur-debert/inkwell/pkg/terminal"
)

// isolate points XDG_CONFIG_HOME at an empty directory so no real user file
// is picked up
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "auto", cfg.Console.ColorSystem)
	assert.Equal(t, 8, cfg.Console.TabSize)
	assert.True(t, cfg.Console.SafeBox)
	assert.Equal(t, 4.0, cfg.Live.RefreshPerSecond)
	assert.Equal(t, "ellipsis", cfg.Live.VerticalOverflow)
	assert.Equal(t, "bottom", cfg.Live.OverflowEdge)
	assert.Equal(t, "dots", cfg.Spinner.Name)
	assert.Equal(t, 80*time.Millisecond, cfg.Spinner.Interval)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("defaults_only", func(t *testing.T) {
		isolate(t)
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("user_file_from_xdg", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "inkwell", "config.toml"), `
[console]
width = 100
color_system = "256"

[spinner]
interval = "120ms"
`)
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Console.Width)
		assert.Equal(t, "256", cfg.Console.ColorSystem)
		assert.Equal(t, 120*time.Millisecond, cfg.Spinner.Interval)
		// untouched keys keep their defaults
		assert.Equal(t, 8, cfg.Console.TabSize)
	})

	t.Run("explicit_path", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, path, "[live]\ntransient = true\n")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Live.Transient)
	})

	t.Run("explicit_path_missing", func(t *testing.T) {
		isolate(t)
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "bad.toml")
		writeFile(t, path, "[console\nwidth = ")
		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("environment_wins", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "inkwell", "config.toml"), "[console]\nwidth = 100\n")
		t.Setenv("INKWELL_CONSOLE_WIDTH", "72")
		t.Setenv("INKWELL_CONSOLE_TAB_SIZE", "4")
		t.Setenv("INKWELL_CONSOLE_NO_COLOR", "true")
		t.Setenv("INKWELL_LIVE_VERTICAL_OVERFLOW", "crop")

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, 72, cfg.Console.Width)
		assert.Equal(t, 4, cfg.Console.TabSize)
		assert.True(t, cfg.Console.NoColor)
		assert.Equal(t, "crop", cfg.Live.VerticalOverflow)
	})

	t.Run("invalid_values_rejected", func(t *testing.T) {
		isolate(t)
		t.Setenv("INKWELL_LIVE_OVERFLOW_EDGE", "middle")
		_, err := config.Load("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, "live.overflow_edge", errors.GetErrorDetails(err)["key"])
	})

	t.Run("invalid_color_system", func(t *testing.T) {
		isolate(t)
		t.Setenv("INKWELL_CONSOLE_COLOR_SYSTEM", "sepia")
		_, err := config.Load("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestCapabilities(t *testing.T) {
	probed := terminal.Forced(80, color.SystemTrueColor)

	tests := []struct {
		name    string
		console config.Console
		probed  terminal.Capabilities
		check   func(t *testing.T, caps terminal.Capabilities)
	}{
		{
			name:    "auto keeps probe",
			console: config.Console{ColorSystem: "auto"},
			probed:  probed,
			check: func(t *testing.T, caps terminal.Capabilities) {
				assert.Equal(t, probed, caps)
			},
		},
		{
			name:    "explicit color system",
			console: config.Console{ColorSystem: "standard"},
			probed:  probed,
			check: func(t *testing.T, caps terminal.Capabilities) {
				assert.Equal(t, color.System4Bit, caps.ColorSystem)
			},
		},
		{
			name:    "no color wins",
			console: config.Console{ColorSystem: "truecolor", NoColor: true},
			probed:  probed,
			check: func(t *testing.T, caps terminal.Capabilities) {
				assert.Equal(t, color.SystemNone, caps.ColorSystem)
				assert.True(t, caps.SupportsAnsi)
			},
		},
		{
			name:    "force terminal on a pipe",
			console: config.Console{ForceTerminal: true},
			probed:  terminal.Plain(80),
			check: func(t *testing.T, caps terminal.Capabilities) {
				assert.True(t, caps.IsTerminal)
				assert.True(t, caps.SupportsAnsi)
				assert.Equal(t, color.System4Bit, caps.ColorSystem)
			},
		},
		{
			name:    "color needs ansi",
			console: config.Console{ColorSystem: "256"},
			probed:  terminal.Plain(80),
			check: func(t *testing.T, caps terminal.Capabilities) {
				assert.Equal(t, color.SystemNone, caps.ColorSystem)
			},
		},
		{
			name:    "size and legacy overrides",
			console: config.Console{Width: 40, Height: 10, LegacyWindows: true},
			probed:  probed,
			check: func(t *testing.T, caps terminal.Capabilities) {
				assert.Equal(t, 40, caps.Width)
				assert.Equal(t, 10, caps.Height)
				assert.True(t, caps.LegacyConsole)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Console = tt.console
			caps, err := cfg.Capabilities(tt.probed)
			require.NoError(t, err)
			tt.check(t, caps)
		})
	}

	t.Run("bad color system", func(t *testing.T) {
		cfg := config.Default()
		cfg.Console.ColorSystem = "sepia"
		_, err := cfg.Capabilities(probed)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestRefreshInterval(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, config.Live{RefreshPerSecond: 4}.RefreshInterval())
	assert.Equal(t, 100*time.Millisecond, config.Live{RefreshPerSecond: 10}.RefreshInterval())
	assert.Equal(t, 250*time.Millisecond, config.Live{}.RefreshInterval())
}

func TestLoadTheme(t *testing.T) {
	t.Run("inline_styles", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "inkwell", "config.toml"), `
[theme.styles]
error = "bold magenta"
table.header = "italic"
`)
		cfg, err := config.Load("")
		require.NoError(t, err)

		th, err := cfg.LoadTheme()
		require.NoError(t, err)
		assert.Equal(t, style.MustParse("bold magenta"), th.Get("error"))
		assert.Equal(t, style.MustParse("italic"), th.Get("table.header"))
		// built-ins survive
		assert.Equal(t, style.MustParse("bright_green"), th.Get("rule.line"))
	})

	t.Run("theme_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mine.yaml")
		writeFile(t, path, "styles:\n  info: \"magenta\"\n")
		cfg := config.Default()
		cfg.Theme.File = path

		th, err := cfg.LoadTheme()
		require.NoError(t, err)
		assert.Equal(t, style.MustParse("magenta"), th.Get("info"))
	})

	t.Run("bad_inline_style", func(t *testing.T) {
		cfg := config.Default()
		cfg.Theme.Styles = map[string]interface{}{"error": "bold nocolor"}
		_, err := cfg.LoadTheme()
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))
	})
}
