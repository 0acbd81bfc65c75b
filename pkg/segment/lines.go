package segment

import (
	"strings"

	"github.com/arthur-debert/inkwell/pkg/cells"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Line is one row of segments without the trailing line break
type Line Segments

// CellLength returns the width of the line in cells
func (l Line) CellLength(w cells.WidthFunc) int {
	n := 0
	for _, seg := range l {
		n += seg.CellLen(w)
	}
	return n
}

// SplitLines breaks segments into lines at line break segments and at
// newlines embedded in text. A trailing line break does not start a new,
// empty line.
func SplitLines(segs Segments) []Line {
	var (
		lines []Line
		line  Line
	)
	for _, seg := range segs {
		if seg.LineBreak {
			lines = append(lines, line)
			line = nil
			continue
		}
		if seg.Control || !strings.Contains(seg.Text, "\n") {
			line = append(line, seg)
			continue
		}
		parts := strings.Split(seg.Text, "\n")
		for i, part := range parts {
			if part != "" {
				line = append(line, Segment{Text: part, Style: seg.Style})
			}
			if i < len(parts)-1 {
				lines = append(lines, line)
				line = nil
			}
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// JoinLines flattens lines back into segments with a line break after
// each line
func JoinLines(lines []Line) Segments {
	var out Segments
	for _, line := range lines {
		out = append(out, line...)
		out = append(out, NewLine())
	}
	return out
}

// AdjustLineLength crops or pads the line to exactly length cells. Padding
// uses pad as its style.
func AdjustLineLength(line Line, length int, pad style.Style, w cells.WidthFunc) Line {
	current := line.CellLength(w)
	switch {
	case current < length:
		out := make(Line, len(line), len(line)+1)
		copy(out, line)
		return append(out, Segment{Text: strings.Repeat(" ", length-current), Style: pad})
	case current > length:
		left, _ := DivideAt(line, length, w)
		return left
	default:
		return line
	}
}

// DivideAt splits the line at a cell offset. Double width runes that
// straddle the cut become spaces on both sides.
func DivideAt(line Line, col int, w cells.WidthFunc) (Line, Line) {
	var left, right Line
	pos := 0
	for i, seg := range line {
		if pos >= col {
			right = append(right, line[i:]...)
			break
		}
		n := seg.CellLen(w)
		if pos+n <= col {
			left = append(left, seg)
			pos += n
			continue
		}
		a, b := cells.Split(seg.Text, col-pos, w)
		if a != "" {
			left = append(left, Segment{Text: a, Style: seg.Style})
		}
		if b != "" {
			right = append(right, Segment{Text: b, Style: seg.Style})
		}
		right = append(right, line[i+1:]...)
		break
	}
	return left, right
}

// Crop keeps cells [start, end) of the line
func (l Line) Crop(start, end int, w cells.WidthFunc) Line {
	_, rest := DivideAt(l, start, w)
	mid, _ := DivideAt(rest, end-start, w)
	return mid
}

// SetShape makes every line exactly width cells and pads or truncates the
// list to height lines
func SetShape(lines []Line, width, height int, pad style.Style, w cells.WidthFunc) []Line {
	out := make([]Line, 0, height)
	for i := 0; i < height; i++ {
		var line Line
		if i < len(lines) {
			line = lines[i]
		}
		out = append(out, AdjustLineLength(line, width, pad, w))
	}
	return out
}
