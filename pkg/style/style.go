// Package style defines the immutable Style value: foreground and background
// colors, decoration flags and an optional hyperlink.
package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/arthur-debert/inkwell/pkg/color"
)

// Decoration is a set of text attribute flags
type Decoration uint16

const (
	Bold Decoration = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Blink2
	Reverse
	Conceal
	Strike
	Underline2
	Frame
	Encircle
	Overline
)

type decorationInfo struct {
	flag    Decoration
	name    string
	sgr     int
	aliases []string
}

// Ordered by flag value; ToMarkup and SGR emission follow this order
var decorations = []decorationInfo{
	{Bold, "bold", 1, []string{"b"}},
	{Dim, "dim", 2, []string{"d"}},
	{Italic, "italic", 3, []string{"i"}},
	{Underline, "underline", 4, []string{"u"}},
	{Blink, "blink", 5, nil},
	{Blink2, "blink2", 6, nil},
	{Reverse, "reverse", 7, []string{"r"}},
	{Conceal, "conceal", 8, nil},
	{Strike, "strike", 9, []string{"s"}},
	{Underline2, "underline2", 21, []string{"uu"}},
	{Frame, "frame", 51, nil},
	{Encircle, "encircle", 52, nil},
	{Overline, "overline", 53, []string{"o"}},
}

var decorationByName = func() map[string]Decoration {
	m := make(map[string]Decoration)
	for _, d := range decorations {
		m[d.name] = d.flag
		for _, alias := range d.aliases {
			m[alias] = d.flag
		}
	}
	return m
}()

// Style is an immutable value. The zero value is the null style, which
// renders text unchanged.
type Style struct {
	fg    color.Color
	bg    color.Color
	decor Decoration
	link  string
}

// New returns the null style
func New() Style {
	return Style{}
}

// Null is the style that applies nothing
var Null = Style{}

func (s Style) Foreground() color.Color { return s.fg }
func (s Style) Background() color.Color { return s.bg }
func (s Style) Decorations() Decoration { return s.decor }
func (s Style) Link() string            { return s.link }
func (s Style) Has(d Decoration) bool   { return s.decor&d == d }
func (s Style) IsNull() bool            { return s == Style{} }

// WithForeground returns a copy with the foreground color replaced
func (s Style) WithForeground(c color.Color) Style {
	s.fg = c
	return s
}

// WithBackground returns a copy with the background color replaced
func (s Style) WithBackground(c color.Color) Style {
	s.bg = c
	return s
}

// WithDecoration returns a copy with the given decorations added
func (s Style) WithDecoration(d Decoration) Style {
	s.decor |= d
	return s
}

// WithoutDecoration returns a copy with the given decorations removed
func (s Style) WithoutDecoration(d Decoration) Style {
	s.decor &^= d
	return s
}

// linkEscaper percent-encodes whitespace, which would otherwise split the
// link token when the style is written back out as markup
var linkEscaper = strings.NewReplacer(
	" ", "%20",
	"\t", "%09",
	"\n", "%0A",
	"\v", "%0B",
	"\f", "%0C",
	"\r", "%0D",
)

// WithLink returns a copy with the hyperlink replaced. Whitespace in uri is
// percent-encoded.
func (s Style) WithLink(uri string) Style {
	s.link = linkEscaper.Replace(uri)
	return s
}

// Equal compares styles using color equality semantics
func (s Style) Equal(other Style) bool {
	return s.fg.Equal(other.fg) &&
		s.bg.Equal(other.bg) &&
		s.decor == other.decor &&
		s.link == other.link
}

// Combine layers b over s: non-default colors in b win, decorations are
// ORed and a non-empty link in b wins.
func (s Style) Combine(b Style) Style {
	out := s
	if !b.fg.IsDefault() {
		out.fg = b.fg
	}
	if !b.bg.IsDefault() {
		out.bg = b.bg
	}
	out.decor |= b.decor
	if b.link != "" {
		out.link = b.link
	}
	return out
}

// Combine folds styles left to right
func Combine(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out = out.Combine(s)
	}
	return out
}

// ToMarkup returns a style definition that Parse maps back to s
func (s Style) ToMarkup() string {
	if s.IsNull() {
		return "default"
	}
	var parts []string
	for _, d := range decorations {
		if s.decor&d.flag != 0 {
			parts = append(parts, d.name)
		}
	}
	if !s.fg.IsDefault() {
		parts = append(parts, s.fg.String())
	}
	if !s.bg.IsDefault() {
		parts = append(parts, "on", s.bg.String())
	}
	if s.link != "" {
		parts = append(parts, "link="+s.link)
	}
	return strings.Join(parts, " ")
}

func (s Style) String() string {
	return s.ToMarkup()
}

// Degrade maps both colors onto the given color system
func (s Style) Degrade(sys color.System) Style {
	s.fg = color.Degrade(s.fg, sys)
	s.bg = color.Degrade(s.bg, sys)
	return s
}

// SGR returns the semicolon separated SGR parameters for the style under the
// given color system.
func (s Style) SGR(sys color.System) string {
	var params []string
	for _, d := range decorations {
		if s.decor&d.flag != 0 {
			params = append(params, strconv.Itoa(d.sgr))
		}
	}
	params = append(params, color.Degrade(s.fg, sys).SGR(true)...)
	params = append(params, color.Degrade(s.bg, sys).SGR(false)...)
	return strings.Join(params, ";")
}

// Render wraps text in the escape sequences for the style. With SystemNone
// the text is returned unchanged; legacy consoles get no hyperlinks.
func (s Style) Render(text string, sys color.System, legacy bool) string {
	if sys == color.SystemNone {
		return text
	}
	return s.Encode(text, sys, legacy)
}

// Encode is Render for a terminal that takes escape sequences but may have
// no colors: with SystemNone only decorations and links are emitted.
func (s Style) Encode(text string, sys color.System, legacy bool) string {
	if text == "" {
		return text
	}
	out := text
	if sgr := s.SGR(sys); sgr != "" {
		out = "\x1b[" + sgr + "m" + text + "\x1b[0m"
	}
	if s.link != "" && !legacy {
		out = ansi.SetHyperlink(s.link) + out + ansi.ResetHyperlink()
	}
	return out
}
