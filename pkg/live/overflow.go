package live

import (
	"strings"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
)

// VerticalOverflow decides what happens when a frame is taller than the
// terminal
type VerticalOverflow int

const (
	// OverflowEllipsis drops lines and marks the cut with an ellipsis line
	OverflowEllipsis VerticalOverflow = iota
	// OverflowCrop drops lines silently
	OverflowCrop
	// OverflowVisible draws every line; the terminal scrolls and the part
	// above the screen can no longer be redrawn
	OverflowVisible
)

func (v VerticalOverflow) String() string {
	switch v {
	case OverflowCrop:
		return "crop"
	case OverflowVisible:
		return "visible"
	default:
		return "ellipsis"
	}
}

// ParseVerticalOverflow maps a configuration value to a VerticalOverflow
func ParseVerticalOverflow(name string) (VerticalOverflow, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ellipsis":
		return OverflowEllipsis, nil
	case "crop":
		return OverflowCrop, nil
	case "visible":
		return OverflowVisible, nil
	}
	return OverflowEllipsis, errors.Newf(errors.ErrInvalidInput, "unknown vertical overflow %q", name).
		WithDetail("value", name)
}

// Edge is the side of a frame that loses lines when it overflows
type Edge int

const (
	// EdgeBottom keeps the first lines
	EdgeBottom Edge = iota
	// EdgeTop keeps the last lines
	EdgeTop
)

func (e Edge) String() string {
	if e == EdgeTop {
		return "top"
	}
	return "bottom"
}

// ParseEdge maps a configuration value to an Edge
func ParseEdge(name string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bottom":
		return EdgeBottom, nil
	case "top":
		return EdgeTop, nil
	}
	return EdgeBottom, errors.Newf(errors.ErrInvalidInput, "unknown overflow edge %q", name).
		WithDetail("value", name)
}

// fitHeight applies the overflow policy to a frame of lines
func fitHeight(ctx *render.Context, lines []segment.Line, height int, policy VerticalOverflow, edge Edge) []segment.Line {
	if policy == OverflowVisible || height < 1 || len(lines) <= height {
		return lines
	}

	keep := height
	if policy == OverflowEllipsis {
		keep = height - 1
	}

	var out []segment.Line
	if edge == EdgeTop {
		out = append(out, lines[len(lines)-keep:]...)
	} else {
		out = append(out, lines[:keep]...)
	}
	if policy != OverflowEllipsis {
		return out
	}

	marker := ellipsisLine(ctx)
	if edge == EdgeTop {
		return append([]segment.Line{marker}, out...)
	}
	return append(out, marker)
}

// ellipsisLine is a centered marker without trailing padding
func ellipsisLine(ctx *render.Context) segment.Line {
	marker := ctx.Ellipsis()
	line := segment.Line{}
	if left := (ctx.Width - ctx.CellLen(marker)) / 2; left > 0 {
		line = append(line, segment.Plain(strings.Repeat(" ", left)))
	}
	return append(line, segment.New(marker, ctx.Style("live.ellipsis")))
}
