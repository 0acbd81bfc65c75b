package render

import (
	"strings"

	"github.com/arthur-debert/inkwell/pkg/box"
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Panel draws a box around its content, with optional titles in the top
// and bottom edges
type Panel struct {
	Content       Renderable
	Box           *box.Box
	Title         *Text
	Subtitle      *Text
	TitleAlign    Justify
	SubtitleAlign Justify
	Style         style.Style
	BorderStyle   style.Style
	// Expand fills the render width; otherwise the panel fits its content
	Expand bool
	// Width fixes the outer width when positive
	Width int
	PadX  int
	PadY  int
}

// NewPanel returns an expanding rounded panel with one cell of horizontal
// padding
func NewPanel(content Renderable) *Panel {
	return &Panel{
		Content:       content,
		Box:           box.Rounded,
		TitleAlign:    JustifyCenter,
		SubtitleAlign: JustifyCenter,
		Expand:        true,
		PadX:          1,
	}
}

// SetTitle parses markup for the top edge; tag names are looked up in r.
// An empty title removes it.
func (p *Panel) SetTitle(title string, r style.Resolver) error {
	t, err := edgeText(title, r)
	if err != nil {
		return err
	}
	p.Title = t
	return nil
}

// SetSubtitle parses markup for the bottom edge
func (p *Panel) SetSubtitle(subtitle string, r style.Resolver) error {
	t, err := edgeText(subtitle, r)
	if err != nil {
		return err
	}
	p.Subtitle = t
	return nil
}

func edgeText(source string, r style.Resolver) (*Text, error) {
	if source == "" {
		return nil, nil
	}
	return FromMarkup(source, r)
}

// BorderWidth implements Bordered
func (p *Panel) BorderWidth() int { return 2 }

// PaddingWidth implements Padded
func (p *Panel) PaddingWidth() int { return 2 * p.PadX }

func (p *Panel) Measure(ctx *Context, maxWidth int) Measurement {
	if p.Width > 0 {
		w := min(p.Width, maxWidth)
		return Measurement{Minimum: w, Maximum: w}
	}
	overhead := Overhead(p)
	if maxWidth-overhead < 1 {
		return Measurement{Minimum: maxWidth, Maximum: maxWidth}
	}
	m := Measure(ctx, p.Content, maxWidth-overhead).Add(overhead)
	if p.Title != nil {
		// title plus its spaces and one edge glyph each side
		m.Maximum = max(m.Maximum, ctx.CellLen(p.Title.Plain())+4)
	}
	return m.Normalize().WithMaximum(maxWidth)
}

func (p *Panel) Render(ctx *Context, maxWidth int) segment.Segments {
	width := maxWidth
	switch {
	case p.Width > 0:
		width = min(p.Width, maxWidth)
	case !p.Expand:
		width = min(p.Measure(ctx, maxWidth).Maximum, maxWidth)
	}
	if width < 2 {
		return nil
	}

	b := ctx.Box(p.Box)
	if b == nil {
		b = ctx.Box(box.Rounded)
	}
	borderStyle := p.BorderStyle
	if borderStyle.IsNull() {
		borderStyle = ctx.Style("panel.border")
	}
	inner := max(width-2, 0)
	content := max(inner-2*p.PadX, 0)

	var lines []segment.Line
	lines = append(lines, p.edge(ctx, b.TopLeft, b.Top, b.TopRight, p.Title, p.TitleAlign, width, borderStyle))

	blank := segment.New(strings.Repeat(" ", inner), p.Style)
	left := segment.New(b.Left, borderStyle)
	right := segment.New(b.Right, borderStyle)
	pad := segment.New(strings.Repeat(" ", p.PadX), p.Style)

	for i := 0; i < p.PadY; i++ {
		lines = append(lines, segment.Line{left, blank, right})
	}
	if content > 0 {
		for _, line := range RenderLines(ctx, WithStyle(p.Content, p.Style), content, true) {
			row := segment.Line{left}
			if p.PadX > 0 {
				row = append(row, pad)
			}
			row = append(row, line...)
			if p.PadX > 0 {
				row = append(row, pad)
			}
			lines = append(lines, append(row, right))
		}
	}
	for i := 0; i < p.PadY; i++ {
		lines = append(lines, segment.Line{left, blank, right})
	}

	lines = append(lines, p.edge(ctx, b.BottomLeft, b.Bottom, b.BottomRight, p.Subtitle, p.SubtitleAlign, width, borderStyle))
	return segment.JoinLines(lines)
}

// edge draws a top or bottom border, embedding title when there is room
func (p *Panel) edge(ctx *Context, leftGlyph, fill, rightGlyph string, title *Text, align Justify, width int, s style.Style) segment.Line {
	inner := width - 2
	if title == nil || title.Len() == 0 || inner-2 < 1 {
		return segment.Line{segment.New(leftGlyph+strings.Repeat(fill, inner)+rightGlyph, s)}
	}

	titleLine := titleSegments(ctx, title, ctx.Style("panel.title"), inner-2)
	tw := titleLine.CellLength(ctx.CellWidth)
	gap := inner - 2 - tw
	var before int
	switch align {
	case JustifyLeft:
		before = 0
	case JustifyRight:
		before = gap
	default:
		before = gap / 2
	}

	line := segment.Line{segment.New(leftGlyph+fill+strings.Repeat(fill, before), s)}
	line = append(line, titleLine...)
	line = append(line, segment.New(strings.Repeat(fill, gap-before)+fill+rightGlyph, s))
	return line
}

// titleSegments renders " title " over base, truncated to width cells
func titleSegments(ctx *Context, title *Text, base style.Style, width int) segment.Line {
	line := segment.Line{segment.New(" ", base)}
	for _, span := range title.Spans() {
		line = append(line, segment.New(span.Text, base.Combine(span.Style)))
	}
	line = append(line, segment.New(" ", base))
	return Ellipsis.Fit(line, width, ctx)[0]
}
