package render

import (
	"github.com/arthur-debert/inkwell/pkg/segment"
)

// Align places its content within the render width
type Align struct {
	Content Renderable
	Justify Justify
	// Width limits the area aligned within; zero uses the full width
	Width int
}

func AlignLeft(r Renderable) *Align   { return &Align{Content: r, Justify: JustifyLeft} }
func AlignCenter(r Renderable) *Align { return &Align{Content: r, Justify: JustifyCenter} }
func AlignRight(r Renderable) *Align  { return &Align{Content: r, Justify: JustifyRight} }

// Alignment implements Aligned
func (a *Align) Alignment() Justify { return a.Justify }

func (a *Align) Measure(ctx *Context, maxWidth int) Measurement {
	return Measure(ctx, a.Content, maxWidth)
}

func (a *Align) Render(ctx *Context, maxWidth int) segment.Segments {
	width := maxWidth
	if a.Width > 0 {
		width = min(a.Width, maxWidth)
	}
	childWidth := min(Measure(ctx, a.Content, width).Maximum, width)
	j := a.Justify
	if j == JustifyDefault {
		j = JustifyLeft
	}

	lines := RenderLines(ctx, a.Content, childWidth, true)
	for i, line := range lines {
		lines[i] = JustifyLine(line, width, j, ctx.CellWidth)
	}
	return segment.JoinLines(lines)
}
