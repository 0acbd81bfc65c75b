// Package cells measures and cuts text by terminal cell width.
//
// Width is computed per rune through a WidthFunc so callers can swap the
// East Asian width tables for their own; the default uses go-runewidth.
// Grapheme clusters are not segmented.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WidthFunc returns the number of cells a rune occupies (0, 1 or 2)
type WidthFunc func(r rune) int

// RuneWidth is the default WidthFunc
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// Default is used wherever a nil WidthFunc is given
var Default WidthFunc = RuneWidth

func orDefault(w WidthFunc) WidthFunc {
	if w == nil {
		return Default
	}
	return w
}

// Len returns the cell width of s
func Len(s string, w WidthFunc) int {
	w = orDefault(w)
	n := 0
	for _, r := range s {
		n += w(r)
	}
	return n
}

// SetLength crops or pads s with spaces to exactly length cells. A double
// width rune that would straddle the edge is replaced by a space.
func SetLength(s string, length int, w WidthFunc) string {
	if length <= 0 {
		return ""
	}
	w = orDefault(w)
	var sb strings.Builder
	n := 0
	for _, r := range s {
		rw := w(r)
		if n+rw > length {
			break
		}
		sb.WriteRune(r)
		n += rw
	}
	if n < length {
		sb.WriteString(strings.Repeat(" ", length-n))
	}
	return sb.String()
}

// Crop returns the longest prefix of s that fits in width cells
func Crop(s string, width int, w WidthFunc) string {
	if width <= 0 {
		return ""
	}
	w = orDefault(w)
	n := 0
	for i, r := range s {
		rw := w(r)
		if n+rw > width {
			return s[:i]
		}
		n += rw
	}
	return s
}

// Truncate crops s to width cells, ending with tail when anything was cut
func Truncate(s string, width int, tail string, w WidthFunc) string {
	w = orDefault(w)
	if Len(s, w) <= width {
		return s
	}
	tw := Len(tail, w)
	if tw > width {
		return Crop(tail, width, w)
	}
	return Crop(s, width-tw, w) + tail
}

// Chop splits s into pieces of at most width cells, for character folding.
// A rune wider than width gets a piece of its own.
func Chop(s string, width int, w WidthFunc) []string {
	if s == "" {
		return nil
	}
	if width <= 0 {
		width = 1
	}
	w = orDefault(w)
	var (
		pieces []string
		start  int
		n      int
	)
	for i, r := range s {
		rw := w(r)
		if n+rw > width && i > start {
			pieces = append(pieces, s[start:i])
			start, n = i, 0
		}
		n += rw
	}
	return append(pieces, s[start:])
}

// Split cuts s at cell position col. A double width rune straddling col is
// replaced by a space on each side so both halves keep their cell widths.
func Split(s string, col int, w WidthFunc) (left, right string) {
	if col <= 0 {
		return "", s
	}
	w = orDefault(w)
	n := 0
	for i, r := range s {
		if n == col {
			return s[:i], s[i:]
		}
		rw := w(r)
		if n+rw > col {
			size := len(string(r))
			return s[:i] + strings.Repeat(" ", col-n),
				strings.Repeat(" ", n+rw-col) + s[i+size:]
		}
		n += rw
	}
	return s, ""
}
