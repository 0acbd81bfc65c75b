package style

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/errors"
)

// Resolver looks up named styles, such as those defined by a theme
type Resolver interface {
	Lookup(name string) (Style, bool)
}

// Resolve returns the named style from r when there is one, otherwise it
// parses spec as a style definition.
func Resolve(spec string, r Resolver) (Style, error) {
	if r != nil {
		if s, ok := r.Lookup(strings.TrimSpace(spec)); ok {
			return s, nil
		}
	}
	return Parse(spec)
}

// MustParse is like Parse but panics on error
func MustParse(spec string) Style {
	s, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse parses a style definition such as "bold red on #202020".
//
// Tokens are separated by whitespace. "on" makes the following color the
// background, "link" takes the next token (or "link=URI") as a hyperlink and
// "default" is accepted and ignored. Setting the foreground, background or
// link twice is an error.
func Parse(spec string) (Style, error) {
	var (
		s                        Style
		haveFg, haveBg, haveLink bool
	)
	tokens := tokenize(spec)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		lower := strings.ToLower(tok)

		switch {
		case lower == "default":
			continue

		case lower == "on":
			if i+1 >= len(tokens) {
				return Style{}, syntaxError(spec, tok, "expected a color after 'on'")
			}
			i++
			c, err := color.Parse(tokens[i])
			if err != nil {
				return Style{}, errors.Wrapf(err, errors.ErrStyleSyntax,
					"expected a color after 'on', got %q", tokens[i]).
					WithDetail("spec", spec).
					WithDetail("token", tokens[i])
			}
			if haveBg {
				return Style{}, duplicateError(spec, tokens[i], "background")
			}
			s.bg, haveBg = c, true

		case lower == "link" || strings.HasPrefix(lower, "link="):
			uri := strings.TrimPrefix(tok[4:], "=")
			if lower == "link" {
				if i+1 >= len(tokens) {
					return Style{}, syntaxError(spec, tok, "expected a URI after 'link'")
				}
				i++
				uri = tokens[i]
			}
			if uri == "" {
				return Style{}, syntaxError(spec, tok, "empty link")
			}
			if haveLink {
				return Style{}, duplicateError(spec, tok, "link")
			}
			s.link, haveLink = uri, true

		default:
			if d, ok := decorationByName[lower]; ok {
				s.decor |= d
				continue
			}
			c, err := color.Parse(tok)
			if err != nil {
				if color.IsColorSyntax(tok) {
					return Style{}, err
				}
				return Style{}, errors.Newf(errors.ErrStyleUnknownToken,
					"unknown style token %q", tok).
					WithDetail("spec", spec).
					WithDetail("token", tok)
			}
			if haveFg {
				return Style{}, duplicateError(spec, tok, "foreground")
			}
			s.fg, haveFg = c, true
		}
	}
	return s, nil
}

// tokenize splits on whitespace outside parentheses so "rgb(1, 2, 3)" stays
// a single token.
func tokenize(spec string) []string {
	var (
		tokens []string
		cur    strings.Builder
		depth  int
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range spec {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case unicode.IsSpace(r) && depth == 0:
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return tokens
}

func syntaxError(spec, token, msg string) error {
	return errors.New(errors.ErrStyleSyntax, msg).
		WithDetail("spec", spec).
		WithDetail("token", token)
}

func duplicateError(spec, token, attr string) error {
	return errors.Newf(errors.ErrStyleDuplicate, "%s specified more than once", attr).
		WithDetail("spec", spec).
		WithDetail("token", token)
}
