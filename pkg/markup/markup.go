package markup

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// TokenKind identifies a markup token
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenOpen
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	default:
		return "text"
	}
}

// Token is one lexical element of markup. Value holds the text for
// TokenText and the tag body for tags ("" for a bare "[/]"). Pos is the byte
// offset in the source.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int
}

// Run is a piece of text with the style in effect for it
type Run struct {
	Text  string
	Style style.Style
}

// Tokenize splits markup into text and tag tokens in a single pass
func Tokenize(markup string) ([]Token, error) {
	var (
		tokens  []Token
		text    strings.Builder
		textPos = -1
	)
	addText := func(pos int, s string) {
		if textPos < 0 {
			textPos = pos
		}
		text.WriteString(s)
	}
	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenText, Value: text.String(), Pos: textPos})
			text.Reset()
		}
		textPos = -1
	}

	for i := 0; i < len(markup); {
		c := markup[i]
		switch {
		case c == '[' && i+1 < len(markup) && markup[i+1] == '[':
			addText(i, "[")
			i += 2
		case c == ']' && i+1 < len(markup) && markup[i+1] == ']':
			addText(i, "]")
			i += 2
		case c == '[' && i+1 < len(markup) && startsTag(markup[i+1]):
			end := strings.IndexByte(markup[i+1:], ']')
			if end < 0 {
				return nil, errors.New(errors.ErrMarkupUnterminatedTag, "tag is missing its closing ']'").
					WithDetail("position", i).
					WithDetail("tag", markup[i:])
			}
			flush()
			body := markup[i+1 : i+1+end]
			if strings.HasPrefix(body, "/") {
				tokens = append(tokens, Token{Kind: TokenClose, Value: strings.TrimSpace(body[1:]), Pos: i})
			} else {
				tokens = append(tokens, Token{Kind: TokenOpen, Value: strings.TrimSpace(body), Pos: i})
			}
			i += end + 2
		default:
			addText(i, markup[i:i+1])
			i++
		}
	}
	flush()
	return tokens, nil
}

func startsTag(c byte) bool {
	return c == '/' || c == '#' || c < 0x80 && unicode.IsLetter(rune(c))
}

type frame struct {
	spec  string
	style style.Style
	pos   int
}

// Parse converts markup into runs. Tag bodies are looked up in r first and
// otherwise parsed as style definitions; r may be nil. Adjacent runs are not
// merged.
func Parse(markup string, r style.Resolver) ([]Run, error) {
	tokens, err := Tokenize(markup)
	if err != nil {
		return nil, err
	}

	var (
		runs  []Run
		stack []frame
	)
	current := func() style.Style {
		if len(stack) == 0 {
			return style.Null
		}
		return stack[len(stack)-1].style
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenText:
			runs = append(runs, Run{Text: tok.Value, Style: current()})

		case TokenOpen:
			s, err := style.Resolve(tok.Value, r)
			if err != nil {
				return nil, withPosition(err, tok.Pos)
			}
			stack = append(stack, frame{spec: tok.Value, style: current().Combine(s), pos: tok.Pos})

		case TokenClose:
			if len(stack) == 0 {
				return nil, errors.Newf(errors.ErrMarkupUnmatchedClose,
					"closing tag [/%s] has nothing to close", tok.Value).
					WithDetail("position", tok.Pos)
			}
			top := stack[len(stack)-1]
			if tok.Value != "" && tok.Value != top.spec {
				return nil, errors.Newf(errors.ErrMarkupMismatchedClose,
					"closing tag [/%s] does not match [%s]", tok.Value, top.spec).
					WithDetail("position", tok.Pos).
					WithDetail("open_position", top.pos)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, errors.Newf(errors.ErrMarkupUnclosedTag, "tag [%s] is never closed", top.spec).
			WithDetail("position", top.pos)
	}
	return runs, nil
}

// withPosition records where in the markup a style error occurred
func withPosition(err error, pos int) error {
	if inkErr, ok := errors.From(err); ok {
		return inkErr.WithDetail("position", pos)
	}
	return errors.Wrap(err, errors.ErrStyleSyntax, "invalid style").WithDetail("position", pos)
}

// Escape makes text safe to embed in markup
func Escape(text string) string {
	return escaper.Replace(text)
}

var escaper = strings.NewReplacer("[", "[[", "]", "]]")

// Strip returns the plain text of markup with every tag removed
func Strip(markup string) (string, error) {
	tokens, err := Tokenize(markup)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.Kind == TokenText {
			sb.WriteString(tok.Value)
		}
	}
	return sb.String(), nil
}

// PlainText concatenates the text of runs
func PlainText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
