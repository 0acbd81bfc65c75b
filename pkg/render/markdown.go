package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/logging"
	"github.com/arthur-debert/inkwell/pkg/segment"
)

// Markdown renders a Markdown document through glamour
type Markdown struct {
	Source string
	// Theme is a glamour standard style used when color is available
	Theme string
}

// NewMarkdown returns a Markdown renderable with the dark glamour theme
func NewMarkdown(source string) *Markdown {
	return &Markdown{Source: source, Theme: "dark"}
}

func (m *Markdown) Measure(ctx *Context, maxWidth int) Measurement {
	return Measurement{Minimum: min(maxWidth, 1), Maximum: maxWidth}
}

func (m *Markdown) Render(ctx *Context, maxWidth int) segment.Segments {
	if maxWidth < 1 {
		return nil
	}
	logger := logging.GetLogger("render.markdown")

	themeName := m.Theme
	if themeName == "" {
		themeName = "dark"
	}
	profile := termenvProfile(ctx.ColorSystem)
	if profile == termenv.Ascii {
		themeName = "notty"
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(themeName),
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(maxWidth),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain markdown source")
		return NewText(m.Source, ctx.Style("markdown.text")).WithOverflow(Fold).Render(ctx, maxWidth)
	}
	out, err := tr.Render(m.Source)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain markdown source")
		return NewText(m.Source, ctx.Style("markdown.text")).WithOverflow(Fold).Render(ctx, maxWidth)
	}

	var text *Text
	if profile == termenv.Ascii {
		text = NewText(ansi.Strip(out), ctx.Style("markdown.text"))
	} else {
		text = FromANSI(out)
	}
	lines := trimBlankEdges(text.WithNoWrap(true).Wrap(ctx, maxWidth), ctx)
	return segment.JoinLines(lines)
}

// trimBlankEdges drops glamour's leading and trailing blank lines and the
// padding it leaves at the end of each line
func trimBlankEdges(lines []segment.Line, ctx *Context) []segment.Line {
	isBlank := func(l segment.Line) bool {
		return strings.TrimSpace(lineText(l)) == ""
	}
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		text := lineText(l)
		trimmed := strings.TrimRight(text, " ")
		if len(trimmed) < len(text) {
			left, _ := segment.DivideAt(l, ctx.CellLen(trimmed), ctx.CellWidth)
			lines[i] = left
		}
	}
	return lines
}

// termenvProfile maps a color system onto glamour's color profile
func termenvProfile(sys color.System) termenv.Profile {
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
