// Package segment holds the unit of rendered output: a run of text with one
// style, a line break, or a raw control sequence.
package segment

import (
	"strings"

	"github.com/arthur-debert/inkwell/pkg/cells"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Segment is a piece of styled text. Control segments carry escape
// sequences that are written verbatim and occupy no cells.
type Segment struct {
	Text      string
	Style     style.Style
	LineBreak bool
	Control   bool
}

// Segments is the output of a render pass
type Segments []Segment

// New returns a text segment
func New(text string, s style.Style) Segment {
	return Segment{Text: text, Style: s}
}

// Plain returns an unstyled text segment
func Plain(text string) Segment {
	return Segment{Text: text}
}

// NewLine returns a line break segment
func NewLine() Segment {
	return Segment{Text: "\n", LineBreak: true}
}

// ControlCode returns a segment that is written raw
func ControlCode(seq string) Segment {
	return Segment{Text: seq, Control: true}
}

// CellLen returns the cells the segment occupies
func (s Segment) CellLen(w cells.WidthFunc) int {
	if s.Control || s.LineBreak {
		return 0
	}
	return cells.Len(s.Text, w)
}

// Merge concatenates adjacent segments that share a style, in a single
// pass. Line breaks and control segments are never merged and empty text
// segments are dropped.
func Merge(segs Segments) Segments {
	out := make(Segments, 0, len(segs))
	for _, seg := range segs {
		if seg.Text == "" && !seg.LineBreak {
			continue
		}
		if n := len(out); n > 0 && mergeable(out[n-1], seg) {
			out[n-1].Text += seg.Text
			continue
		}
		out = append(out, seg)
	}
	return out
}

func mergeable(a, b Segment) bool {
	return !a.LineBreak && !a.Control && !b.LineBreak && !b.Control && a.Style == b.Style
}

// ApplyStyle layers s under every text segment: the segment's own style
// wins where it sets something.
func ApplyStyle(segs Segments, s style.Style) Segments {
	if s.IsNull() {
		return segs
	}
	out := make(Segments, len(segs))
	for i, seg := range segs {
		if !seg.Control && !seg.LineBreak {
			seg.Style = s.Combine(seg.Style)
		}
		out[i] = seg
	}
	return out
}

// PlainText returns the text of all non-control segments
func PlainText(segs Segments) string {
	var sb strings.Builder
	for _, seg := range segs {
		if !seg.Control {
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}
