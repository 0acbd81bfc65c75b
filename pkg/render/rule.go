package render

import (
	"strings"

	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Rule is a horizontal line across the full width, optionally titled
type Rule struct {
	Title      *Text
	Characters string
	Style      style.Style
	Align      Justify
}

// NewRule returns a centered rule. The title is markup whose tag names are
// looked up in r; an empty title draws a plain line.
func NewRule(title string, r style.Resolver) (*Rule, error) {
	t, err := edgeText(title, r)
	if err != nil {
		return nil, err
	}
	return &Rule{Title: t, Align: JustifyCenter}, nil
}

func (r *Rule) Measure(ctx *Context, maxWidth int) Measurement {
	return Measurement{Minimum: 1, Maximum: maxWidth}
}

func (r *Rule) Render(ctx *Context, maxWidth int) segment.Segments {
	if maxWidth < 1 {
		return nil
	}
	chars := r.Characters
	if chars == "" {
		chars = "─"
		if !ctx.Unicode {
			chars = "-"
		}
	}
	lineStyle := r.Style
	if lineStyle.IsNull() {
		lineStyle = ctx.Style("rule.line")
	}

	if r.Title == nil || r.Title.Len() == 0 || maxWidth < 4 {
		return segment.Segments{segment.New(r.fill(ctx, chars, maxWidth), lineStyle), segment.NewLine()}
	}

	title := titleSegments(ctx, r.Title, ctx.Style("rule.text"), maxWidth-2)

	gap := maxWidth - title.CellLength(ctx.CellWidth)
	var before int
	switch r.Align {
	case JustifyLeft:
		before = min(1, gap)
	case JustifyRight:
		before = gap - min(1, gap)
	default:
		before = gap / 2
	}

	var out segment.Segments
	if before > 0 {
		out = append(out, segment.New(r.fill(ctx, chars, before), lineStyle))
	}
	out = append(out, title...)
	if gap-before > 0 {
		out = append(out, segment.New(r.fill(ctx, chars, gap-before), lineStyle))
	}
	return append(out, segment.NewLine())
}

// fill repeats chars to exactly width cells
func (r *Rule) fill(ctx *Context, chars string, width int) string {
	cw := max(ctx.CellLen(chars), 1)
	repeated := strings.Repeat(chars, width/cw+1)
	left, _ := segment.DivideAt(segment.Line{segment.Plain(repeated)}, width, ctx.CellWidth)
	return segment.PlainText(segment.Segments(left))
}
