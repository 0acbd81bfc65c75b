/*
Package markup parses console markup into styled text runs.

# Syntax

Markup is plain text with inline style tags:

	[bold red]Error:[/] file not found
	[link=https://example.com]docs[/link=https://example.com]

An opening tag holds a style definition or the name of a theme style. "[/]"
closes the innermost open tag; "[/spec]" closes it only when spec matches the
opening text exactly. Tags nest, and each level combines its style over the
enclosing one.

"[[" and "]]" produce literal brackets. A "[" that is not followed by a
letter, "#" or "/" is also literal, so "[1, 2]" needs no escaping.

# Errors

Parsing fails on a close tag with nothing open, a tag that is never closed, a
"[" tag start with no "]", and any style definition that does not parse. The
returned *errors.InkError carries the byte "position" of the offending tag
in its details.

# XML tags

ParseXML accepts the semantic tag form used by templates:

	<error>failed</error><no-format> (plain output only)</no-format>

Tag names are resolved through the theme.
*/
package markup
