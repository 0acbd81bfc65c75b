// Package box provides the glyph tables used to draw panel and table
// borders. Glyph sets come from lipgloss border definitions.
package box

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Position selects a horizontal rule of a box
type Position int

const (
	PositionTop Position = iota
	PositionHeader
	PositionRow
	PositionFooter
	PositionBottom
)

// Box is a set of border glyphs. Each field is one cell wide.
type Box struct {
	Name string

	TopLeft, Top, TopDivider, TopRight             string
	Left, Divider, Right                           string
	RowLeft, Row, RowCross, RowRight               string
	BottomLeft, Bottom, BottomDivider, BottomRight string

	// ASCII is true when every glyph is 7-bit
	ASCII bool
	// NoOuterRules suppresses the top and bottom lines
	NoOuterRules bool
}

// FromBorder builds a box from a lipgloss border definition
func FromBorder(name string, b lipgloss.Border) *Box {
	bx := &Box{
		Name:          name,
		TopLeft:       b.TopLeft,
		Top:           b.Top,
		TopDivider:    b.MiddleTop,
		TopRight:      b.TopRight,
		Left:          b.Left,
		Divider:       b.Left,
		Right:         b.Right,
		RowLeft:       b.MiddleLeft,
		Row:           b.Top,
		RowCross:      b.Middle,
		RowRight:      b.MiddleRight,
		BottomLeft:    b.BottomLeft,
		Bottom:        b.Bottom,
		BottomDivider: b.MiddleBottom,
		BottomRight:   b.BottomRight,
	}
	bx.ASCII = isASCII(bx.glyphs()...)
	return bx
}

var (
	Square  = FromBorder("square", lipgloss.NormalBorder())
	Rounded = FromBorder("rounded", lipgloss.RoundedBorder())
	Heavy   = FromBorder("heavy", lipgloss.ThickBorder())
	Double  = FromBorder("double", lipgloss.DoubleBorder())
	Block   = FromBorder("block", lipgloss.BlockBorder())
	Hidden  = FromBorder("hidden", lipgloss.HiddenBorder())
	ASCII   = FromBorder("ascii", lipgloss.ASCIIBorder())

	Markdown = func() *Box {
		b := FromBorder("markdown", lipgloss.MarkdownBorder())
		b.NoOuterRules = true
		return b
	}()

	// ASCIIDouble keeps the double look without leaving 7-bit
	ASCIIDouble = func() *Box {
		b := FromBorder("ascii_double", lipgloss.ASCIIBorder())
		b.Row = "="
		return b
	}()
)

var byName = map[string]*Box{}

func init() {
	for _, b := range []*Box{Square, Rounded, Heavy, Double, Block, Hidden, ASCII, ASCIIDouble, Markdown} {
		byName[b.Name] = b
	}
}

// Get returns a predefined box by name
func Get(name string) (*Box, bool) {
	b, ok := byName[strings.ToLower(name)]
	return b, ok
}

// Names lists the predefined boxes
func Names() []string {
	return []string{"square", "rounded", "heavy", "double", "block", "hidden", "ascii", "ascii_double", "markdown"}
}

// Fallbacks for terminals without Unicode. Resolved once, never walked.
var asciiFallback = map[*Box]*Box{
	Square:  ASCII,
	Rounded: ASCII,
	Heavy:   ASCII,
	Block:   ASCII,
	Double:  ASCIIDouble,
}

// Legacy Windows consoles lack the rounded and heavy glyphs
var legacyFallback = map[*Box]*Box{
	Rounded: Square,
	Heavy:   Square,
}

// Substitute returns the box to draw with given the terminal's abilities
func (b *Box) Substitute(unicode, legacy bool) *Box {
	if b == nil {
		return nil
	}
	if legacy {
		if f, ok := legacyFallback[b]; ok {
			b = f
		}
	}
	if !unicode && !b.ASCII {
		if f, ok := asciiFallback[b]; ok {
			return f
		}
		return ASCII
	}
	return b
}

// Line builds a horizontal rule for the given column widths. With edge
// false the outer corners are left out.
func (b *Box) Line(pos Position, widths []int, edge bool) string {
	var left, fill, cross, right string
	switch pos {
	case PositionTop:
		left, fill, cross, right = b.TopLeft, b.Top, b.TopDivider, b.TopRight
	case PositionBottom:
		left, fill, cross, right = b.BottomLeft, b.Bottom, b.BottomDivider, b.BottomRight
	default:
		left, fill, cross, right = b.RowLeft, b.Row, b.RowCross, b.RowRight
	}

	var sb strings.Builder
	if edge {
		sb.WriteString(left)
	}
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(cross)
		}
		sb.WriteString(strings.Repeat(fill, max(w, 0)))
	}
	if edge {
		sb.WriteString(right)
	}
	return sb.String()
}

func (b *Box) glyphs() []string {
	return []string{
		b.TopLeft, b.Top, b.TopDivider, b.TopRight,
		b.Left, b.Divider, b.Right,
		b.RowLeft, b.Row, b.RowCross, b.RowRight,
		b.BottomLeft, b.Bottom, b.BottomDivider, b.BottomRight,
	}
}

func isASCII(glyphs ...string) bool {
	for _, g := range glyphs {
		for i := 0; i < len(g); i++ {
			if g[i] >= 0x80 {
				return false
			}
		}
	}
	return true
}
