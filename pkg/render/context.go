package render

import (
	"github.com/arthur-debert/inkwell/pkg/box"
	"github.com/arthur-debert/inkwell/pkg/cells"
	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// DefaultTabSize is used when a context does not set one
const DefaultTabSize = 8

// Context carries what renderables need to know about the output. It is
// treated as immutable; the With methods return modified copies.
type Context struct {
	ColorSystem  color.System
	SupportsAnsi bool
	Unicode      bool
	Legacy       bool
	Width        int
	Height       int
	TabSize      int
	CellWidth    cells.WidthFunc
	SafeBox      bool
	Resolver     style.Resolver
}

// NewContext returns a plain, Unicode capable context of the given width
func NewContext(width int) *Context {
	return &Context{
		ColorSystem: color.SystemNone,
		Unicode:     true,
		Width:       width,
		Height:      25,
		TabSize:     DefaultTabSize,
		CellWidth:   cells.Default,
		SafeBox:     true,
	}
}

func (c *Context) clone() *Context {
	cp := *c
	return &cp
}

// WithWidth returns a copy with a different width
func (c *Context) WithWidth(width int) *Context {
	cp := c.clone()
	cp.Width = width
	return cp
}

// WithHeight returns a copy with a different height
func (c *Context) WithHeight(height int) *Context {
	cp := c.clone()
	cp.Height = height
	return cp
}

// WithResolver returns a copy resolving style names through r
func (c *Context) WithResolver(r style.Resolver) *Context {
	cp := c.clone()
	cp.Resolver = r
	return cp
}

// WithColorSystem returns a copy targeting a different color system
func (c *Context) WithColorSystem(sys color.System) *Context {
	cp := c.clone()
	cp.ColorSystem = sys
	return cp
}

// CellLen measures s with the context's width function
func (c *Context) CellLen(s string) int {
	return cells.Len(s, c.CellWidth)
}

// RuneWidth measures one rune with the context's width function
func (c *Context) RuneWidth(r rune) int {
	if c.CellWidth == nil {
		return cells.Default(r)
	}
	return c.CellWidth(r)
}

// Tabs returns the tab size, falling back to DefaultTabSize
func (c *Context) Tabs() int {
	if c.TabSize <= 0 {
		return DefaultTabSize
	}
	return c.TabSize
}

// Style resolves a theme name, or failing that a style definition. Unknown
// names give the null style.
func (c *Context) Style(name string) style.Style {
	s, err := style.Resolve(name, c.Resolver)
	if err != nil {
		return style.Null
	}
	return s
}

// Box returns the box to draw with, swapping in a safe variant when the
// terminal cannot show b
func (c *Context) Box(b *box.Box) *box.Box {
	return b.Substitute(c.Unicode, c.SafeBox && c.Legacy)
}

// Ellipsis is the marker used for truncated text
func (c *Context) Ellipsis() string {
	if c.Unicode {
		return "…"
	}
	return "..."
}
