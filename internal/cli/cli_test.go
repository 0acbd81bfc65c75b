// internal/cli/cli_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (temp dirs), sh for the spin command
// PURPOSE: Test the inkwell commands end to end against a non-terminal writer

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inkwell/internal/cli"
	"github.com/arthur-debert/inkwell/pkg/errors"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command with isolated config and state directories
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	for _, key := range []string{"FORCE_COLOR", "CLICOLOR_FORCE", "NO_COLOR", "COLUMNS", "LINES"} {
		t.Setenv(key, "")
	}

	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"joins arguments", []string{"print", "[bold]Hello[/bold]", "world"}, "Hello world\n"},
		{"escaped brackets", []string{"print", "[[red]]"}, "[red]\n"},
		{"wraps at width", []string{"print", "--width", "9", "aaaa bbbb cccc"}, "aaaa bbbb\ncccc\n"},
		{"xml tags", []string{"print", "--xml", "<error>bad</error> thing"}, "bad thing\n"},
		{"no arguments", []string{"print"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestPrintErrors(t *testing.T) {
	t.Run("markup", func(t *testing.T) {
		res := run(t, "", "print", "oops[/]")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrMarkupUnmatchedClose))
		assert.Empty(t, res.stdout)
	})

	t.Run("xml", func(t *testing.T) {
		res := run(t, "", "print", "--xml", "<error>unclosed")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrXMLParse))
	})

	t.Run("panel title", func(t *testing.T) {
		res := run(t, "", "print", "--title", "[bogus_colour]Note[/]", "hi")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrStyleUnknownToken), "got %v", res.err)
		assert.Empty(t, res.stdout)
	})

	t.Run("color system flag", func(t *testing.T) {
		res := run(t, "", "print", "--color", "bogus", "x")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigParse))
	})
}

func TestPrintPanel(t *testing.T) {
	res := run(t, "", "print", "--width", "20", "--title", "Note", "hi")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[0], "Note")
	assert.Equal(t, "│ hi               │", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "╰"))
}

func TestPrintForcedTerminal(t *testing.T) {
	res := run(t, "", "print", "--force-terminal", "--color", "256", "[red]x[/red]")
	require.NoError(t, res.err)
	assert.Equal(t, "\x1b[31mx\x1b[0m\n", res.stdout)

	res = run(t, "", "print", "--force-terminal", "--no-color", "[bold red]x[/]")
	require.NoError(t, res.err)
	assert.Equal(t, "\x1b[1mx\x1b[0m\n", res.stdout)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("INKWELL_CONSOLE_WIDTH", "9")
	res := run(t, "", "print", "aaaa bbbb cccc")
	require.NoError(t, res.err)
	assert.Equal(t, "aaaa bbbb\ncccc\n", res.stdout)
}

func TestTable(t *testing.T) {
	csv := "Name,Qty\napple,3\nkiwi,12\n"

	t.Run("header row", func(t *testing.T) {
		res := run(t, csv, "table")
		require.NoError(t, res.err)
		assert.Equal(t, strings.Join([]string{
			"┌───────┬─────┐",
			"│ Name  │ Qty │",
			"├───────┼─────┤",
			"│ apple │ 3   │",
			"│ kiwi  │ 12  │",
			"└───────┴─────┘",
		}, "\n")+"\n", res.stdout)
	})

	t.Run("no header", func(t *testing.T) {
		res := run(t, csv, "table", "--no-header")
		require.NoError(t, res.err)
		assert.Equal(t, strings.Join([]string{
			"┌───────┬─────┐",
			"│ Name  │ Qty │",
			"│ apple │ 3   │",
			"│ kiwi  │ 12  │",
			"└───────┴─────┘",
		}, "\n")+"\n", res.stdout)
	})

	t.Run("ragged records", func(t *testing.T) {
		res := run(t, "a,b\n1\n", "table")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "│ 1 │   │")
	})

	t.Run("unknown box", func(t *testing.T) {
		res := run(t, csv, "table", "--box", "wavy")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
	})

	t.Run("invalid cell markup", func(t *testing.T) {
		res := run(t, "Name,Qty\napple,[/]\n", "table")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrMarkupUnmatchedClose), "got %v", res.err)
		assert.Empty(t, res.stdout)
	})

	t.Run("bad csv", func(t *testing.T) {
		res := run(t, "a,\"b\n", "table")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
	})
}

func TestMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nSome *body* text.\n"), 0644))

	res := run(t, "", "markdown", "--width", "40", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Title")
	assert.Contains(t, res.stdout, "body")
	assert.NotContains(t, res.stdout, "\x1b[")

	res = run(t, "plain *stdin*", "md", "-")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "stdin")

	res = run(t, "", "markdown", filepath.Join(t.TempDir(), "missing.md"))
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
}

func TestSpin(t *testing.T) {
	t.Run("output printed", func(t *testing.T) {
		res := run(t, "", "spin", "--", "sh", "-c", "echo one; echo '[red]two'")
		require.NoError(t, res.err)
		assert.Equal(t, "one\n[red]two\n", res.stdout)
		assert.Contains(t, res.stderr, "sh finished")
	})

	t.Run("failing command", func(t *testing.T) {
		res := run(t, "", "spin", "--", "sh", "-c", "exit 3")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrCommandFailed))
		assert.NotContains(t, res.stderr, "finished")
	})

	t.Run("unknown spinner", func(t *testing.T) {
		res := run(t, "", "spin", "--spinner", "nope", "--", "true")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
	})

	t.Run("invalid message markup", func(t *testing.T) {
		res := run(t, "", "spin", "--message", "[/]", "--", "sh", "-c", "echo ran")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrMarkupUnmatchedClose), "got %v", res.err)
		assert.NotContains(t, res.stdout, "ran")
	})

	t.Run("needs a command", func(t *testing.T) {
		res := run(t, "", "spin")
		assert.Error(t, res.err)
	})
}

func TestPalette(t *testing.T) {
	res := run(t, "", "palette", "--width", "120", "dark_orange")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "Detected: none")
	for _, header := range []string{"3bit", "standard", "256", "truecolor"} {
		assert.Contains(t, res.stdout, header)
	}
	assert.Contains(t, res.stdout, "color(208)")

	res = run(t, "", "palette", "notacolor")
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrColorParse))
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "inkwell version dev")
}

func TestHelpTopics(t *testing.T) {
	t.Run("listing", func(t *testing.T) {
		res := run(t, "", "help", "topics")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "General topics:")
		assert.Contains(t, res.stdout, "markup")
		assert.Contains(t, res.stdout, "--color")
		assert.Contains(t, res.stdout, "Option topics:")
	})

	t.Run("markup topic", func(t *testing.T) {
		res := run(t, "", "help", "option-color")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "--color SYSTEM")
		assert.NotContains(t, res.stdout, "[bold]")
	})

	t.Run("markdown topic", func(t *testing.T) {
		res := run(t, "", "help", "config")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Configuration")
	})

	t.Run("command help", func(t *testing.T) {
		res := run(t, "", "help", "table")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "comma separated values")
	})

	t.Run("unknown", func(t *testing.T) {
		res := run(t, "", "help", "nothing-here")
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
	})
}

func TestNoCommand(t *testing.T) {
	res := run(t, "")
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput), "got %v", res.err)
	assert.Contains(t, res.err.Error(), "no command specified")
}

func TestFormatError(t *testing.T) {
	msg := cli.FormatError(errors.New(errors.ErrRender, "broken pipe"))
	assert.Contains(t, msg, "RENDER")
	assert.Contains(t, msg, "broken pipe")

	assert.Empty(t, cli.FormatError(nil))
}
