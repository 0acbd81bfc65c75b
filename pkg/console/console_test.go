// pkg/console/console_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test printing, encoding and output redirection of the console

package console_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/console"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
	"github.com/arthur-debert/inkwell/pkg/terminal"
	"github.com/arthur-debert/inkwell/pkg/testutil"
	"github.com/arthur-debert/inkwell/pkg/theme"
)

func TestPrintPlain(t *testing.T) {
	c, rec := testutil.PlainConsole(40)

	require.NoError(t, c.Print("[bold red]Hello[/] [blue]World[/]"))
	assert.Equal(t, "Hello World\n", rec.String())
}

func TestPrintJoinsStrings(t *testing.T) {
	c, rec := testutil.PlainConsole(40)

	require.NoError(t, c.Print("a", 42, "[i]b[/]"))
	assert.Equal(t, "a 42 b\n", rec.String())
}

func TestPrintRenderables(t *testing.T) {
	c, rec := testutil.PlainConsole(10)

	require.NoError(t, c.Print("top", &render.Rule{}, nil))
	assert.Equal(t, []string{"top", "──────────"}, testutil.Lines(rec.String()))
}

func TestPrintEscapedMarkup(t *testing.T) {
	c, rec := testutil.PlainConsole(40)

	require.NoError(t, c.Print("[[red]]"))
	assert.Equal(t, "[red]\n", rec.String())
}

func TestPrintMarkupError(t *testing.T) {
	c, rec := testutil.PlainConsole(40)

	err := c.Print("oops[/]")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkupUnmatchedClose))
	assert.Empty(t, rec.String())
}

func TestPrintANSI(t *testing.T) {
	tests := []struct {
		name string
		sys  color.System
		want string
	}{
		{"truecolor", color.SystemTrueColor, "\x1b[1;31mHi\x1b[0m\n"},
		{"standard", color.System4Bit, "\x1b[1;31mHi\x1b[0m\n"},
		{"no color keeps decorations", color.SystemNone, "\x1b[1mHi\x1b[0m\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := testutil.ANSIConsole(20, tt.sys)
			require.NoError(t, c.Print("[bold red]Hi[/]"))
			assert.Equal(t, tt.want, rec.String())
		})
	}
}

func TestPrintThemeTags(t *testing.T) {
	th, err := theme.FromSpecs(map[string]string{"danger": "underline"})
	require.NoError(t, err)
	c, rec := testutil.ANSIConsole(20, color.System8Bit, console.WithTheme(th))

	require.NoError(t, c.Print("[danger]x[/]"))
	assert.Equal(t, "\x1b[4mx\x1b[0m\n", rec.String())
}

func TestEncode(t *testing.T) {
	segs := segment.Segments{
		segment.ControlCode("\x1b[2K"),
		segment.New("a", style.MustParse("bold")),
		segment.NewLine(),
	}

	plain, _ := testutil.PlainConsole(10)
	assert.Equal(t, "a\n", plain.Encode(segs))

	ansiConsole, _ := testutil.ANSIConsole(10, color.System4Bit)
	assert.Equal(t, "\x1b[2K\x1b[1ma\x1b[0m\n", ansiConsole.Encode(segs))
}

func TestContext(t *testing.T) {
	caps := terminal.Forced(50, color.System8Bit)
	caps.SupportsUnicode = false
	caps.LegacyConsole = true
	c := console.New(&testutil.Recorder{}, caps, console.WithTabSize(4), console.WithSafeBox(false))

	ctx := c.Context()
	assert.Equal(t, 50, ctx.Width)
	assert.Equal(t, color.System8Bit, ctx.ColorSystem)
	assert.False(t, ctx.Unicode)
	assert.True(t, ctx.Legacy)
	assert.Equal(t, 4, ctx.TabSize)
	assert.False(t, ctx.SafeBox)
	assert.NotNil(t, ctx.Resolver)
}

func TestNewDefaultsSize(t *testing.T) {
	c := console.New(&testutil.Recorder{}, terminal.Capabilities{})
	assert.Equal(t, terminal.DefaultWidth, c.Width())
	assert.Equal(t, terminal.DefaultHeight, c.Height())
	assert.False(t, c.IsTerminal())
}

func TestControlAndCursor(t *testing.T) {
	plain, plainRec := testutil.PlainConsole(10)
	require.NoError(t, plain.ShowCursor(context.Background(), false))
	require.NoError(t, plain.Control(context.Background(), "\x1b[A"))
	assert.Empty(t, plainRec.String())

	term, termRec := testutil.ANSIConsole(10, color.System4Bit)
	require.NoError(t, term.ShowCursor(context.Background(), false))
	require.NoError(t, term.ShowCursor(context.Background(), true))
	assert.Equal(t, "\x1b[?25l\x1b[?25h", termRec.String())
}

type aboveHook struct {
	got []string
}

func (h *aboveHook) WriteAbove(output string) error {
	h.got = append(h.got, output)
	return nil
}

func TestHookOnlyForLeasedContexts(t *testing.T) {
	c, rec := testutil.PlainConsole(20)
	hook := &aboveHook{}
	require.NoError(t, c.AttachLive(hook))

	ctx, release, err := c.Exclusive().Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.PrintContext(ctx, "redirected"))
	release()

	require.NoError(t, c.Print("direct"))
	c.DetachLive(hook)

	assert.Equal(t, []string{"redirected\n"}, hook.got)
	assert.Equal(t, "direct\n", rec.String())
}

func TestRule(t *testing.T) {
	c, rec := testutil.PlainConsole(11)
	require.NoError(t, c.Rule("T"))
	assert.Equal(t, []string{"──── T ────"}, testutil.Lines(rec.String()))

	err := c.Rule("[bogus_colour]T[/]")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStyleUnknownToken), "got %v", err)
	assert.Equal(t, []string{"──── T ────"}, testutil.Lines(rec.String()))
}

func TestLine(t *testing.T) {
	c, rec := testutil.PlainConsole(20)
	require.NoError(t, c.Line(2))
	require.NoError(t, c.Line(0))
	assert.Equal(t, "\n\n", rec.String())
}

func TestAttachLiveOnlyOnce(t *testing.T) {
	c, _ := testutil.PlainConsole(20)
	first := &aboveHook{}
	require.NoError(t, c.AttachLive(first))

	err := c.AttachLive(&aboveHook{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrLiveActive))

	c.DetachLive(&aboveHook{}) // not attached, ignored
	assert.Error(t, c.AttachLive(&aboveHook{}))

	c.DetachLive(first)
	assert.NoError(t, c.AttachLive(&aboveHook{}))
}
