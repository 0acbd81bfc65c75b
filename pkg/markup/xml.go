package markup

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/logging"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// NoFormatTag wraps content that is only shown in plain output
const NoFormatTag = "no-format"

// ParseXML converts semantic XML tags such as <error>x</error> into runs.
// Tag names are resolved through r; unknown names leave the text unstyled.
// Content inside <no-format> is kept only when plain is true, and when plain
// is true every run carries the null style.
func ParseXML(input string, r style.Resolver, plain bool) ([]Run, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<markup>" + input + "</markup>"); err != nil {
		return nil, errors.Wrap(err, errors.ErrXMLParse, "invalid markup XML")
	}

	var runs []Run
	walkXML(doc.Root(), style.Null, r, plain, &runs)
	return runs, nil
}

func walkXML(el *etree.Element, current style.Style, r style.Resolver, plain bool, runs *[]Run) {
	for _, child := range el.Child {
		switch tok := child.(type) {
		case *etree.CharData:
			if tok.Data == "" {
				continue
			}
			s := current
			if plain {
				s = style.Null
			}
			*runs = append(*runs, Run{Text: tok.Data, Style: s})

		case *etree.Element:
			if tok.Tag == NoFormatTag {
				if plain {
					walkXML(tok, style.Null, r, plain, runs)
				}
				continue
			}
			next := current
			if s, ok := lookupTag(tok.Tag, r); ok {
				next = current.Combine(s)
			} else {
				logger := logging.GetLogger("markup")
				logger.Trace().Str("tag", tok.Tag).Msg("Unknown XML style tag")
			}
			walkXML(tok, next, r, plain, runs)
		}
	}
}

// lookupTag resolves a tag name through the resolver, then as a single
// style word such as "bold" or "red"
func lookupTag(name string, r style.Resolver) (style.Style, bool) {
	if r != nil {
		if s, ok := r.Lookup(name); ok {
			return s, true
		}
	}
	s, err := style.Parse(name)
	if err != nil {
		return style.Null, false
	}
	return s, true
}
