package render

import (
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Group renders its items one after another
type Group struct {
	Items []Renderable
}

// NewGroup groups renderables
func NewGroup(items ...Renderable) *Group {
	return &Group{Items: items}
}

func (g *Group) Measure(ctx *Context, maxWidth int) Measurement {
	return MeasureAll(ctx, maxWidth, g.Items...)
}

func (g *Group) Render(ctx *Context, maxWidth int) segment.Segments {
	var out segment.Segments
	for _, item := range g.Items {
		out = append(out, item.Render(ctx, maxWidth)...)
	}
	return out
}

// Styled layers a style under everything its content renders
type Styled struct {
	Content Renderable
	Style   style.Style
}

// WithStyle wraps r so it renders with s as its base style
func WithStyle(r Renderable, s style.Style) *Styled {
	return &Styled{Content: r, Style: s}
}

func (s *Styled) Measure(ctx *Context, maxWidth int) Measurement {
	return s.Content.Measure(ctx, maxWidth)
}

func (s *Styled) Render(ctx *Context, maxWidth int) segment.Segments {
	return segment.ApplyStyle(s.Content.Render(ctx, maxWidth), s.Style)
}
