// pkg/markup/markup_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test markup tokenizing, parsing, escaping and error positions

package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/markup"
	"github.com/arthur-debert/inkwell/pkg/style"
	"github.com/arthur-debert/inkwell/pkg/theme"
)

func run(text, spec string) markup.Run {
	return markup.Run{Text: text, Style: style.MustParse(spec)}
}

func TestTokenize(t *testing.T) {
	tokens, err := markup.Tokenize("a[bold]b[/] [[c]]")
	require.NoError(t, err)
	assert.Equal(t, []markup.Token{
		{Kind: markup.TokenText, Value: "a", Pos: 0},
		{Kind: markup.TokenOpen, Value: "bold", Pos: 1},
		{Kind: markup.TokenText, Value: "b", Pos: 7},
		{Kind: markup.TokenClose, Value: "", Pos: 8},
		{Kind: markup.TokenText, Value: " [c]", Pos: 11},
	}, tokens)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []markup.Run
	}{
		{"two tags", "[red]Hello[/] [blue]World[/]", []markup.Run{
			run("Hello", "red"), run(" ", ""), run("World", "blue"),
		}},
		{"escaped brackets", "[[red]]", []markup.Run{run("[red]", "")}},
		{"literal bracket before digit", "list[0] = [1, 2]", []markup.Run{run("list[0] = [1, 2]", "")}},
		{"lone close bracket", "a ] b", []markup.Run{run("a ] b", "")}},
		{"nesting combines", "[bold]a[red]b[/red]c[/bold]", []markup.Run{
			run("a", "bold"), run("b", "bold red"), run("c", "bold"),
		}},
		{"close restores prior style", "[red on white]a[blue]b[/]c[/]", []markup.Run{
			run("a", "red on white"), run("b", "blue on white"), run("c", "red on white"),
		}},
		{"hex and link tags", "[#00ff00 link=http://x]go[/]", []markup.Run{
			run("go", "#00ff00 link=http://x"),
		}},
		{"empty tags produce no runs", "[bold][/]", nil},
		{"unicode text", "[i]héllo ✓[/]", []markup.Run{run("héllo ✓", "italic")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.Parse(tt.markup, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_PlainTextRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"tabs\tand\nnewlines\r\n",
		"prices: 3 < 4 > 2 (ok) {fine} [1]",
		"emoji 🎉 and wide 漢字",
	}
	for _, in := range inputs {
		runs, err := markup.Parse(in, nil)
		require.NoError(t, err)
		assert.Equal(t, in, markup.PlainText(runs))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		code     errors.ErrorCode
		position int
	}{
		{"unmatched close", "text[/]", errors.ErrMarkupUnmatchedClose, 4},
		{"unclosed tag", "[bold]a[red]b[/]", errors.ErrMarkupUnclosedTag, 0},
		{"unterminated tag", "ok [bold text", errors.ErrMarkupUnterminatedTag, 3},
		{"mismatched close", "[bold]x[/red]", errors.ErrMarkupMismatchedClose, 7},
		{"unknown token", "a[blorp]b[/]", errors.ErrStyleUnknownToken, 1},
		{"duplicate color", "[red green]x[/]", errors.ErrStyleDuplicate, 0},
		{"bad color", "[#zzz]x[/]", errors.ErrColorParse, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := markup.Parse(tt.markup, nil)
			require.Error(t, err)
			assert.Nil(t, runs)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.position, errors.GetErrorDetails(err)["position"])
		})
	}
}

func TestParse_ThemeNames(t *testing.T) {
	th, err := theme.FromSpecs(map[string]string{"warning": "bold yellow", "red": "blue"})
	require.NoError(t, err)

	got, err := markup.Parse("[warning]careful[/warning] [red]x[/]", th)
	require.NoError(t, err)
	assert.Equal(t, []markup.Run{
		run("careful", "bold yellow"),
		run(" ", ""),
		run("x", "blue"),
	}, got)
}

func TestEscape(t *testing.T) {
	text := "a [b] ]] [[c"
	escaped := markup.Escape(text)
	assert.Equal(t, "a [[b]] ]]]] [[[[c", escaped)

	runs, err := markup.Parse("[bold]"+escaped+"[/]", nil)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, text, runs[0].Text)
}

func TestStrip(t *testing.T) {
	got, err := markup.Strip("[bold]Hi[/] [[there]] [red]you[/red]")
	require.NoError(t, err)
	assert.Equal(t, "Hi [there] you", got)

	_, err = markup.Strip("[oops")
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkupUnterminatedTag))
}
