package render

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// FromANSI decodes text containing SGR and OSC 8 sequences into a styled
// Text. Other escape sequences are dropped.
func FromANSI(s string) *Text {
	t := &Text{end: "\n"}
	var (
		cur  style.Style
		text strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			t.spans = append(t.spans, Span{Text: text.String(), Style: cur})
			text.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] != 0x1b || i+1 >= len(s) {
			text.WriteByte(s[i])
			i++
			continue
		}
		switch s[i+1] {
		case '[':
			end := i + 2
			for end < len(s) && (s[end] < 0x40 || s[end] > 0x7e) {
				end++
			}
			if end >= len(s) {
				return finishANSI(t, flush)
			}
			if s[end] == 'm' {
				flush()
				cur = applySGR(cur, s[i+2:end])
			}
			i = end + 1
		case ']':
			body, next := readOSC(s, i+2)
			if strings.HasPrefix(body, "8;") {
				flush()
				if parts := strings.SplitN(body, ";", 3); len(parts) == 3 {
					cur = cur.WithLink(parts[2])
				}
			}
			i = next
		default:
			i += 2
		}
	}
	return finishANSI(t, flush)
}

func finishANSI(t *Text, flush func()) *Text {
	flush()
	return t
}

// readOSC returns the OSC body starting at i and the index after its
// terminator (BEL or ST)
func readOSC(s string, i int) (string, int) {
	for j := i; j < len(s); j++ {
		if s[j] == 0x07 {
			return s[i:j], j + 1
		}
		if s[j] == 0x1b && j+1 < len(s) && s[j+1] == '\\' {
			return s[i:j], j + 2
		}
	}
	return s[i:], len(s)
}

var sgrDecorations = map[int]style.Decoration{
	1: style.Bold, 2: style.Dim, 3: style.Italic, 4: style.Underline,
	5: style.Blink, 6: style.Blink2, 7: style.Reverse, 8: style.Conceal,
	9: style.Strike, 21: style.Underline2, 51: style.Frame, 52: style.Encircle,
	53: style.Overline,
}

// applySGR updates s with the parameters of one SGR sequence. Resets of
// single attributes clear the whole decoration set they belong to.
func applySGR(s style.Style, params string) style.Style {
	if params == "" {
		return style.Null.WithLink(s.Link())
	}
	codes := make([]int, 0, 4)
	for _, p := range strings.FieldsFunc(params, func(r rune) bool { return r == ';' || r == ':' }) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return s
		}
		codes = append(codes, n)
	}

	for i := 0; i < len(codes); i++ {
		c := codes[i]
		switch {
		case c == 0:
			s = style.Null.WithLink(s.Link())
		case sgrDecorations[c] != 0:
			s = s.WithDecoration(sgrDecorations[c])
		case c >= 22 && c <= 29:
			s = clearDecorations(s, c)
		case c >= 30 && c <= 37:
			s = s.WithForeground(color.Standard(uint8(c - 30)))
		case c >= 90 && c <= 97:
			s = s.WithForeground(color.Standard(uint8(c - 90 + 8)))
		case c == 39:
			s = s.WithForeground(color.Default())
		case c >= 40 && c <= 47:
			s = s.WithBackground(color.Standard(uint8(c - 40)))
		case c >= 100 && c <= 107:
			s = s.WithBackground(color.Standard(uint8(c - 100 + 8)))
		case c == 49:
			s = s.WithBackground(color.Default())
		case c == 38 || c == 48:
			col, used := extendedColor(codes[i+1:])
			i += used
			if c == 38 {
				s = s.WithForeground(col)
			} else {
				s = s.WithBackground(col)
			}
		}
	}
	return s
}

// extendedColor decodes "5;N" or "2;R;G;B" and reports how many codes it
// consumed
func extendedColor(codes []int) (color.Color, int) {
	switch {
	case len(codes) >= 2 && codes[0] == 5:
		return color.EightBit(uint8(clampByte(codes[1]))), 2
	case len(codes) >= 4 && codes[0] == 2:
		return color.FromRGB(clampByte(codes[1]), clampByte(codes[2]), clampByte(codes[3])), 4
	}
	return color.Default(), len(codes)
}

func clampByte(n int) uint8 {
	return uint8(min(max(n, 0), 255))
}

// clearDecorations handles the SGR 22-29 "not" codes
func clearDecorations(s style.Style, code int) style.Style {
	var mask style.Decoration
	switch code {
	case 22:
		mask = style.Bold | style.Dim
	case 23:
		mask = style.Italic
	case 24:
		mask = style.Underline | style.Underline2
	case 25:
		mask = style.Blink | style.Blink2
	case 27:
		mask = style.Reverse
	case 28:
		mask = style.Conceal
	case 29:
		mask = style.Strike
	}
	return s.WithoutDecoration(mask)
}
