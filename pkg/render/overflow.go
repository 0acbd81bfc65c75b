package render

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/inkwell/pkg/cells"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/segment"
)

// Justify is the horizontal alignment of lines within the render width
type Justify int

const (
	// JustifyDefault leaves lines at their natural length
	JustifyDefault Justify = iota
	JustifyLeft
	JustifyCenter
	JustifyRight
)

func (j Justify) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	default:
		return "default"
	}
}

// ParseJustify parses "left", "center", "right" or "default"
func ParseJustify(name string) (Justify, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return JustifyDefault, nil
	case "left":
		return JustifyLeft, nil
	case "center", "centre":
		return JustifyCenter, nil
	case "right":
		return JustifyRight, nil
	}
	return JustifyDefault, errors.Newf(errors.ErrInvalidInput, "unknown justify %q", name)
}

// JustifyLine pads line to width according to j. Lines already at or over
// width are returned unchanged.
func JustifyLine(line segment.Line, width int, j Justify, w cells.WidthFunc) segment.Line {
	n := line.CellLength(w)
	if n >= width {
		return line
	}
	gap := width - n
	pad := func(k int) segment.Segment { return segment.Plain(strings.Repeat(" ", k)) }

	out := make(segment.Line, 0, len(line)+2)
	switch j {
	case JustifyLeft:
		out = append(out, line...)
		out = append(out, pad(gap))
	case JustifyCenter:
		left := gap / 2
		if left > 0 {
			out = append(out, pad(left))
		}
		out = append(out, line...)
		if gap-left > 0 {
			out = append(out, pad(gap-left))
		}
	case JustifyRight:
		out = append(out, pad(gap))
		out = append(out, line...)
	default:
		return line
	}
	return out
}

// Overflow decides what happens to a line longer than the render width
type Overflow interface {
	// Fit turns one logical line into one or more lines of at most width
	// cells
	Fit(line segment.Line, width int, ctx *Context) []segment.Line
	Name() string
}

var (
	// Wrap breaks lines between words, folding words that are too long
	Wrap Overflow = wrapOverflow{}
	// Fold breaks lines at the width regardless of words
	Fold Overflow = foldOverflow{}
	// Crop cuts lines at the width
	Crop Overflow = cropOverflow{}
	// Ellipsis cuts lines and marks the cut
	Ellipsis Overflow = ellipsisOverflow{}
)

var overflowByName = map[string]Overflow{
	"wrap":     Wrap,
	"fold":     Fold,
	"crop":     Crop,
	"ellipsis": Ellipsis,
}

// ParseOverflow looks up an overflow strategy by name
func ParseOverflow(name string) (Overflow, error) {
	if o, ok := overflowByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return o, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown overflow %q", name)
}

type wrapOverflow struct{}

func (wrapOverflow) Name() string { return "wrap" }

func (wrapOverflow) Fit(line segment.Line, width int, ctx *Context) []segment.Line {
	text := lineText(line)
	if ctx.CellLen(text) <= width {
		return []segment.Line{line}
	}
	return sliceRanges(line, wordWrap(text, width, ctx.CellWidth))
}

type foldOverflow struct{}

func (foldOverflow) Name() string { return "fold" }

func (foldOverflow) Fit(line segment.Line, width int, ctx *Context) []segment.Line {
	text := lineText(line)
	if ctx.CellLen(text) <= width {
		return []segment.Line{line}
	}
	return sliceRanges(line, foldRanges(text, 0, width, ctx.CellWidth))
}

type cropOverflow struct{}

func (cropOverflow) Name() string { return "crop" }

func (cropOverflow) Fit(line segment.Line, width int, ctx *Context) []segment.Line {
	left, _ := segment.DivideAt(line, width, ctx.CellWidth)
	return []segment.Line{left}
}

type ellipsisOverflow struct{}

func (ellipsisOverflow) Name() string { return "ellipsis" }

func (ellipsisOverflow) Fit(line segment.Line, width int, ctx *Context) []segment.Line {
	if line.CellLength(ctx.CellWidth) <= width {
		return []segment.Line{line}
	}
	marker := ctx.Ellipsis()
	mw := ctx.CellLen(marker)
	if mw > width {
		return []segment.Line{{segment.Plain(cells.Crop(marker, width, ctx.CellWidth))}}
	}
	left, _ := segment.DivideAt(line, width-mw, ctx.CellWidth)
	// the marker takes the style of the text it replaces
	markerStyle := line[len(line)-1].Style
	if len(left) > 0 {
		markerStyle = left[len(left)-1].Style
	}
	return []segment.Line{append(left, segment.New(marker, markerStyle))}
}

type span struct{ start, end int }

func lineText(line segment.Line) string {
	var sb strings.Builder
	for _, seg := range line {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// sliceRanges cuts a line into the given byte ranges of its text
func sliceRanges(line segment.Line, ranges []span) []segment.Line {
	out := make([]segment.Line, 0, len(ranges))
	for _, r := range ranges {
		var cut segment.Line
		pos := 0
		for _, seg := range line {
			segStart, segEnd := pos, pos+len(seg.Text)
			pos = segEnd
			from, to := max(segStart, r.start), min(segEnd, r.end)
			if from >= to {
				continue
			}
			cut = append(cut, segment.Segment{Text: seg.Text[from-segStart : to-segStart], Style: seg.Style})
		}
		out = append(out, cut)
	}
	return out
}

// wordWrap returns byte ranges of greedy word wrapped lines. Whitespace at
// a break is dropped; leading indentation of the first line is kept.
func wordWrap(text string, width int, w cells.WidthFunc) []span {
	var (
		lines     []span
		cur       span
		curWidth  int
		open      bool
		prevEnd   int
		firstWord = true
	)
	for _, word := range words(text) {
		start := word.start
		if firstWord {
			start = 0
			firstWord = false
		}
		ww := cells.Len(text[start:word.end], w)
		if open {
			gap := cells.Len(text[prevEnd:start], w)
			if curWidth+gap+ww <= width {
				cur.end = word.end
				curWidth += gap + ww
				prevEnd = word.end
				continue
			}
			lines = append(lines, cur)
			open = false
		}
		if ww > width {
			chunks := foldRanges(text[start:word.end], start, width, w)
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			cur, curWidth, open = last, cells.Len(text[last.start:last.end], w), true
		} else {
			cur, curWidth, open = span{start, word.end}, ww, true
		}
		prevEnd = word.end
	}
	if open {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = append(lines, span{0, 0})
	}
	return lines
}

// words finds runs of non-space characters
func words(text string) []span {
	var out []span
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, span{start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, span{start, len(text)})
	}
	return out
}

// foldRanges chops text into ranges of at most width cells, offset by base
func foldRanges(text string, base, width int, w cells.WidthFunc) []span {
	var out []span
	pos := base
	for _, piece := range cells.Chop(text, width, w) {
		out = append(out, span{pos, pos + len(piece)})
		pos += len(piece)
	}
	if len(out) == 0 {
		out = append(out, span{base, base})
	}
	return out
}
