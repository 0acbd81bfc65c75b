package render

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Padding surrounds its content with blank space
type Padding struct {
	Content                  Renderable
	Top, Right, Bottom, Left int
	Style                    style.Style
	// Expand fills the full render width instead of fitting the content
	Expand bool
}

// NewPadding pads r CSS style: one value for all sides, two for
// vertical/horizontal or four for top, right, bottom, left.
func NewPadding(r Renderable, pad ...int) *Padding {
	p := &Padding{Content: r, Expand: true}
	switch len(pad) {
	case 0:
	case 1:
		p.Top, p.Right, p.Bottom, p.Left = pad[0], pad[0], pad[0], pad[0]
	case 2:
		p.Top, p.Bottom = pad[0], pad[0]
		p.Left, p.Right = pad[1], pad[1]
	case 4:
		p.Top, p.Right, p.Bottom, p.Left = pad[0], pad[1], pad[2], pad[3]
	default:
		panic(fmt.Sprintf("render: padding takes 1, 2 or 4 values, got %d", len(pad)))
	}
	for _, v := range pad {
		if v < 0 {
			panic(fmt.Sprintf("render: negative padding %d", v))
		}
	}
	return p
}

// PaddingWidth implements Padded
func (p *Padding) PaddingWidth() int {
	return p.Left + p.Right
}

func (p *Padding) Measure(ctx *Context, maxWidth int) Measurement {
	extra := p.PaddingWidth()
	if maxWidth-extra < 1 {
		return Measurement{Minimum: maxWidth, Maximum: maxWidth}
	}
	return Measure(ctx, p.Content, maxWidth-extra).Add(extra).WithMaximum(maxWidth)
}

func (p *Padding) Render(ctx *Context, maxWidth int) segment.Segments {
	width := maxWidth
	if !p.Expand {
		width = min(p.Measure(ctx, maxWidth).Maximum, maxWidth)
	}
	inner := width - p.PaddingWidth()
	if inner < 1 {
		return nil
	}

	lines := RenderLines(ctx, WithStyle(p.Content, p.Style), inner, true)
	blank := segment.Line{segment.New(strings.Repeat(" ", width), p.Style)}

	var out []segment.Line
	for i := 0; i < p.Top; i++ {
		out = append(out, blank)
	}
	for _, line := range lines {
		var row segment.Line
		if p.Left > 0 {
			row = append(row, segment.New(strings.Repeat(" ", p.Left), p.Style))
		}
		row = append(row, line...)
		if p.Right > 0 {
			row = append(row, segment.New(strings.Repeat(" ", p.Right), p.Style))
		}
		out = append(out, row)
	}
	for i := 0; i < p.Bottom; i++ {
		out = append(out, blank)
	}
	return segment.JoinLines(out)
}
