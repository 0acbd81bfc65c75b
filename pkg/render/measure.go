package render

import (
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Renderable is anything that can be drawn to the console
type Renderable interface {
	// Measure reports the narrowest and widest useful widths, given at most
	// maxWidth cells
	Measure(ctx *Context, maxWidth int) Measurement
	// Render produces segments for exactly maxWidth cells or fewer
	Render(ctx *Context, maxWidth int) segment.Segments
}

// Bordered is implemented by renderables that draw a frame
type Bordered interface {
	// BorderWidth is the horizontal cells the frame takes
	BorderWidth() int
}

// Padded is implemented by renderables with inner spacing
type Padded interface {
	// PaddingWidth is the horizontal cells of padding
	PaddingWidth() int
}

// Aligned is implemented by renderables that justify their content
type Aligned interface {
	Alignment() Justify
}

// Overhead sums the horizontal cells r spends on borders and padding
func Overhead(r interface{}) int {
	n := 0
	if b, ok := r.(Bordered); ok {
		n += b.BorderWidth()
	}
	if p, ok := r.(Padded); ok {
		n += p.PaddingWidth()
	}
	return n
}

// Measurement is the range of widths a renderable can be drawn at
type Measurement struct {
	Minimum int
	Maximum int
}

// Span is the difference between the maximum and minimum
func (m Measurement) Span() int {
	return m.Maximum - m.Minimum
}

// Normalize makes both bounds non-negative with Minimum <= Maximum
func (m Measurement) Normalize() Measurement {
	minimum := max(m.Minimum, 0)
	maximum := max(m.Maximum, 0)
	return Measurement{Minimum: min(minimum, maximum), Maximum: max(minimum, maximum)}
}

// WithMaximum caps both bounds at width
func (m Measurement) WithMaximum(width int) Measurement {
	return Measurement{Minimum: min(m.Minimum, width), Maximum: min(m.Maximum, width)}
}

// WithMinimum raises both bounds to at least width
func (m Measurement) WithMinimum(width int) Measurement {
	width = max(width, 0)
	return Measurement{Minimum: max(m.Minimum, width), Maximum: max(m.Maximum, width)}
}

// ClampTo keeps both bounds within [minWidth, maxWidth]. A negative bound
// is ignored.
func (m Measurement) ClampTo(minWidth, maxWidth int) Measurement {
	if minWidth >= 0 {
		m = m.WithMinimum(minWidth)
	}
	if maxWidth >= 0 {
		m = m.WithMaximum(maxWidth)
	}
	return m
}

// Add widens both bounds by n cells
func (m Measurement) Add(n int) Measurement {
	return Measurement{Minimum: m.Minimum + n, Maximum: m.Maximum + n}
}

// Measure measures r and normalizes the result to maxWidth
func Measure(ctx *Context, r Renderable, maxWidth int) Measurement {
	if maxWidth < 1 {
		return Measurement{}
	}
	return r.Measure(ctx, maxWidth).Normalize().WithMaximum(maxWidth)
}

// MeasureAll combines the measurements of several renderables drawn one
// after the other
func MeasureAll(ctx *Context, maxWidth int, items ...Renderable) Measurement {
	var out Measurement
	for _, r := range items {
		m := Measure(ctx, r, maxWidth)
		out.Minimum = max(out.Minimum, m.Minimum)
		out.Maximum = max(out.Maximum, m.Maximum)
	}
	return out
}

// RenderLines renders r at width and splits the result into lines. With
// pad true every line is padded or cropped to exactly width cells.
func RenderLines(ctx *Context, r Renderable, width int, pad bool) []segment.Line {
	if width < 1 {
		return nil
	}
	lines := segment.SplitLines(r.Render(ctx, width))
	if !pad {
		return lines
	}
	for i, line := range lines {
		lines[i] = segment.AdjustLineLength(line, width, style.Null, ctx.CellWidth)
	}
	return lines
}
