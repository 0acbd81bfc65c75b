package render

import (
	"strings"

	"github.com/arthur-debert/inkwell/pkg/markup"
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Span is a styled piece of a Text
type Span struct {
	Text  string
	Style style.Style
}

// Text is a paragraph of styled text that wraps to the render width
type Text struct {
	spans    []Span
	style    style.Style
	justify  Justify
	overflow Overflow
	noWrap   bool
	end      string
}

// NewText creates a text with a single span
func NewText(plain string, s style.Style) *Text {
	t := &Text{end: "\n"}
	if plain != "" {
		t.spans = []Span{{Text: plain, Style: s}}
	}
	return t
}

// FromMarkup parses console markup into a text. Tag names are looked up in
// r before being parsed as styles.
func FromMarkup(source string, r style.Resolver) (*Text, error) {
	runs, err := markup.Parse(source, r)
	if err != nil {
		return nil, err
	}
	return FromRuns(runs), nil
}

// MustMarkup is FromMarkup without a resolver that panics on error
func MustMarkup(source string) *Text {
	t, err := FromMarkup(source, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// FromRuns builds a text from parsed markup runs
func FromRuns(runs []markup.Run) *Text {
	t := &Text{end: "\n"}
	for _, run := range runs {
		t.spans = append(t.spans, Span{Text: run.Text, Style: run.Style})
	}
	return t
}

func (t *Text) clone() *Text {
	cp := *t
	cp.spans = append([]Span(nil), t.spans...)
	return &cp
}

// Append returns a copy with another span at the end
func (t *Text) Append(text string, s style.Style) *Text {
	cp := t.clone()
	if text != "" {
		cp.spans = append(cp.spans, Span{Text: text, Style: s})
	}
	return cp
}

// WithStyle returns a copy with a base style under every span
func (t *Text) WithStyle(s style.Style) *Text {
	cp := t.clone()
	cp.style = s
	return cp
}

// WithJustify returns a copy with different justification
func (t *Text) WithJustify(j Justify) *Text {
	cp := t.clone()
	cp.justify = j
	return cp
}

// WithOverflow returns a copy with a different overflow strategy
func (t *Text) WithOverflow(o Overflow) *Text {
	cp := t.clone()
	cp.overflow = o
	return cp
}

// WithNoWrap returns a copy that never wraps; long lines are cut by the
// overflow strategy, cropping when that is Wrap or Fold
func (t *Text) WithNoWrap(noWrap bool) *Text {
	cp := t.clone()
	cp.noWrap = noWrap
	return cp
}

// WithEnd returns a copy that ends with end instead of a newline
func (t *Text) WithEnd(end string) *Text {
	cp := t.clone()
	cp.end = end
	return cp
}

// Alignment implements Aligned
func (t *Text) Alignment() Justify { return t.justify }

// Spans returns the spans of the text
func (t *Text) Spans() []Span {
	return append([]Span(nil), t.spans...)
}

// Plain returns the text without styles
func (t *Text) Plain() string {
	var sb strings.Builder
	for _, s := range t.spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Len is the text length in bytes
func (t *Text) Len() int {
	n := 0
	for _, s := range t.spans {
		n += len(s.Text)
	}
	return n
}

// Measure implements Renderable: the widest line is the maximum and the
// longest word is the minimum
func (t *Text) Measure(ctx *Context, maxWidth int) Measurement {
	var m Measurement
	for _, line := range t.logicalLines(ctx) {
		text := lineText(line)
		m.Maximum = max(m.Maximum, ctx.CellLen(text))
		if t.noWrap {
			continue
		}
		for _, word := range words(text) {
			m.Minimum = max(m.Minimum, ctx.CellLen(text[word.start:word.end]))
		}
	}
	if t.noWrap {
		m.Minimum = m.Maximum
	}
	return m.Normalize()
}

// Render implements Renderable
func (t *Text) Render(ctx *Context, maxWidth int) segment.Segments {
	if maxWidth < 1 {
		return nil
	}
	lines := t.Wrap(ctx, maxWidth)
	var out segment.Segments
	for i, line := range lines {
		out = append(out, line...)
		if i < len(lines)-1 {
			out = append(out, segment.NewLine())
		}
	}
	if t.end == "\n" {
		out = append(out, segment.NewLine())
	} else if t.end != "" {
		out = append(out, segment.New(t.end, t.style))
	}
	return segment.Merge(out)
}

// Wrap lays the text out as lines of at most width cells, justified and
// with the base style applied
func (t *Text) Wrap(ctx *Context, width int) []segment.Line {
	overflow := t.overflow
	if overflow == nil {
		overflow = Wrap
	}
	if t.noWrap && (overflow == Wrap || overflow == Fold) {
		overflow = Crop
	}

	var out []segment.Line
	for _, line := range t.logicalLines(ctx) {
		for _, fitted := range overflow.Fit(line, width, ctx) {
			fitted = segment.Line(segment.ApplyStyle(segment.Segments(fitted), t.style))
			out = append(out, JustifyLine(fitted, width, t.justify, ctx.CellWidth))
		}
	}
	return out
}

// logicalLines splits the text at newlines after normalizing line endings
// and expanding tabs
func (t *Text) logicalLines(ctx *Context) []segment.Line {
	var segs segment.Segments
	for _, s := range t.spans {
		text := strings.ReplaceAll(s.Text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
		segs = append(segs, segment.New(text, s.Style))
	}
	// a trailing newline ends the last line rather than starting another
	lines := segment.SplitLines(segs)
	if len(lines) == 0 {
		lines = []segment.Line{nil}
	}
	for i, line := range lines {
		lines[i] = expandTabs(line, ctx)
	}
	return lines
}

func expandTabs(line segment.Line, ctx *Context) segment.Line {
	hasTab := false
	for _, seg := range line {
		if strings.ContainsRune(seg.Text, '\t') {
			hasTab = true
			break
		}
	}
	if !hasTab {
		return line
	}
	tab := ctx.Tabs()
	col := 0
	out := make(segment.Line, 0, len(line))
	for _, seg := range line {
		var sb strings.Builder
		for _, r := range seg.Text {
			if r == '\t' {
				n := tab - col%tab
				sb.WriteString(strings.Repeat(" ", n))
				col += n
				continue
			}
			sb.WriteRune(r)
			col += ctx.RuneWidth(r)
		}
		out = append(out, segment.Segment{Text: sb.String(), Style: seg.Style})
	}
	return out
}
