package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arthur-debert/inkwell/pkg/errors"
)

// Type identifies how a color was specified
type Type uint8

const (
	TypeDefault Type = iota
	TypeStandard
	TypeEightBit
	TypeTrueColor
)

// RGB is a 24-bit color triple
type RGB struct {
	R, G, B uint8
}

// Hex returns the triple as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color is an immutable terminal color value. The zero value is the terminal
// default color.
type Color struct {
	Type   Type
	Number uint8 // palette index for TypeStandard and TypeEightBit
	RGB    RGB
}

// Default returns the color that inherits the terminal default
func Default() Color {
	return Color{}
}

// Standard returns one of the 16 standard ANSI colors
func Standard(n uint8) Color {
	if n > 15 {
		panic(fmt.Sprintf("color: standard color number %d out of range", n))
	}
	return Color{Type: TypeStandard, Number: n, RGB: StandardPalette[n]}
}

// EightBit returns an entry of the 256-color palette. Numbers below 16 are
// the standard colors and are returned as such.
func EightBit(n uint8) Color {
	if n < 16 {
		return Standard(n)
	}
	return Color{Type: TypeEightBit, Number: n, RGB: EightBitPalette[n]}
}

// FromRGB returns a truecolor value
func FromRGB(r, g, b uint8) Color {
	return Color{Type: TypeTrueColor, RGB: RGB{r, g, b}}
}

// IsDefault reports whether the color inherits the terminal default
func (c Color) IsDefault() bool {
	return c.Type == TypeDefault
}

// Equal compares two colors. Two default colors are always equal; otherwise
// colors are compared by RGB.
func (c Color) Equal(other Color) bool {
	if c.IsDefault() || other.IsDefault() {
		return c.IsDefault() && other.IsDefault()
	}
	return c.RGB == other.RGB
}

// String returns the canonical markup form of the color, which Parse maps
// back to an identical value.
func (c Color) String() string {
	switch c.Type {
	case TypeStandard:
		return standardNames[c.Number]
	case TypeEightBit:
		return fmt.Sprintf("color(%d)", c.Number)
	case TypeTrueColor:
		return c.RGB.Hex()
	default:
		return "default"
	}
}

// SGR returns the SGR parameters selecting this color as foreground or
// background. The default color has no parameters.
func (c Color) SGR(foreground bool) []string {
	switch c.Type {
	case TypeStandard:
		n := int(c.Number)
		base := 30
		if !foreground {
			base = 40
		}
		if n >= 8 {
			return []string{strconv.Itoa(base + 60 + n - 8)}
		}
		return []string{strconv.Itoa(base + n)}
	case TypeEightBit:
		sel := "38"
		if !foreground {
			sel = "48"
		}
		return []string{sel, "5", strconv.Itoa(int(c.Number))}
	case TypeTrueColor:
		sel := "38"
		if !foreground {
			sel = "48"
		}
		return []string{
			sel, "2",
			strconv.Itoa(int(c.RGB.R)),
			strconv.Itoa(int(c.RGB.G)),
			strconv.Itoa(int(c.RGB.B)),
		}
	default:
		return nil
	}
}

// Blend linearly interpolates each channel of a towards b. factor is clamped
// to [0, 1]; a default color blends as black.
func Blend(a, b Color, factor float64) Color {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	ca := toColorful(a.RGB)
	cb := toColorful(b.RGB)
	r, g, bl := ca.BlendRgb(cb, factor).Clamped().RGB255()
	return FromRGB(r, g, bl)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Parse parses a single color token
func Parse(text string) (Color, error) {
	original := text
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Color{}, errors.New(errors.ErrColorParse, "empty color").
			WithDetail("token", original)
	}
	if text == "default" {
		return Default(), nil
	}
	if n, ok := standardByName[text]; ok {
		return Standard(n), nil
	}
	if n, ok := eightBitByName[text]; ok {
		return EightBit(n), nil
	}

	switch {
	case strings.HasPrefix(text, "#"):
		return parseHex(original, text)
	case strings.HasPrefix(text, "rgb(") && strings.HasSuffix(text, ")"):
		return parseRGBFunc(original, text[4:len(text)-1])
	case strings.HasPrefix(text, "color(") && strings.HasSuffix(text, ")"):
		n, err := strconv.Atoi(strings.TrimSpace(text[6 : len(text)-1]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, errors.Newf(errors.ErrColorParse,
				"color number must be in 0-255 in %q", original).
				WithDetail("token", original)
		}
		return EightBit(uint8(n)), nil
	}

	return Color{}, errors.Newf(errors.ErrColorParse, "unknown color %q", original).
		WithDetail("token", original)
}

// IsColorSyntax reports whether text uses one of the explicit color
// notations, as opposed to a bare word that may name a color.
func IsColorSyntax(text string) bool {
	text = strings.ToLower(text)
	return strings.HasPrefix(text, "#") ||
		strings.HasPrefix(text, "rgb(") ||
		strings.HasPrefix(text, "color(")
}

func parseHex(original, text string) (Color, error) {
	digits := text[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return Color{}, errors.Newf(errors.ErrColorParse,
			"hex color %q must have 3 or 6 digits", original).WithDetail("token", original)
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return Color{}, errors.Newf(errors.ErrColorParse,
				"invalid hex digit %q in %q", r, original).WithDetail("token", original)
		}
	}
	c, err := colorful.Hex(text)
	if err != nil {
		return Color{}, errors.Wrapf(err, errors.ErrColorParse, "invalid hex color %q", original)
	}
	r, g, b := c.RGB255()
	return FromRGB(r, g, b), nil
}

func parseRGBFunc(original, body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, errors.Newf(errors.ErrColorParse,
			"rgb() expects three components in %q", original).WithDetail("token", original)
	}
	var channels [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return Color{}, errors.Newf(errors.ErrColorParse,
				"rgb() component %q out of range in %q", strings.TrimSpace(p), original).
				WithDetail("token", original)
		}
		channels[i] = uint8(v)
	}
	return FromRGB(channels[0], channels[1], channels[2]), nil
}
