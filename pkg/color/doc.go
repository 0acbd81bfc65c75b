/*
Package color models terminal colors and degrades them to what a terminal can
actually display.

A Color is one of four kinds: the terminal default (emit no code), one of the
16 standard ANSI colors, an entry of the xterm 256-color palette, or a 24-bit
truecolor value. Every non-default color carries its RGB triple so colors of
different kinds can be compared and degraded.

# Color systems

The negotiated color depth of a terminal is a System:

	SystemNone       no color codes at all
	System3Bit       8 colors (legacy consoles)
	System4Bit       16 standard colors
	System8Bit       xterm 256-color palette
	SystemTrueColor  24-bit RGB

Degrade maps a color onto a system by searching the system's fixed palette for
the entry nearest in RGB space. The search is deterministic and memoised.

# Parsing

Parse accepts named colors ("red", "bright_blue", "grey50", "orange1"),
"#rgb" and "#rrggbb" hex, "rgb(r,g,b)", "color(N)" and "default".
*/
package color
