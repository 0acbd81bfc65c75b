// Package console turns renderables into bytes on a writer.
//
// A Console pairs an io.Writer with the capabilities of whatever is on the
// other end of it. Print accepts markup strings and render.Renderable values,
// renders them at the console width and encodes the segments as plain text
// or ANSI depending on the capabilities. Every write goes through the
// console's Exclusive so a live display can own the terminal for as long as
// it runs.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/arthur-debert/inkwell/pkg/cells"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
	"github.com/arthur-debert/inkwell/pkg/terminal"
	"github.com/arthur-debert/inkwell/pkg/theme"
)

// Hook takes over output while a live display owns the console. It receives
// encoded output that must appear above the live region.
type Hook interface {
	WriteAbove(output string) error
}

type options struct {
	theme     *theme.Theme
	tabSize   int
	safeBox   bool
	cellWidth cells.WidthFunc
}

// Option configures a Console
type Option func(*options)

// WithTheme sets the theme used to resolve markup tags and named styles
func WithTheme(t *theme.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithTabSize sets the tab stop distance
func WithTabSize(n int) Option {
	return func(o *options) {
		o.tabSize = n
	}
}

// WithSafeBox controls substitution of box styles that legacy consoles
// cannot draw
func WithSafeBox(safe bool) Option {
	return func(o *options) {
		o.safeBox = safe
	}
}

// WithCellWidth replaces the cell width function
func WithCellWidth(w cells.WidthFunc) Option {
	return func(o *options) {
		o.cellWidth = w
	}
}

// Console renders to one output stream
type Console struct {
	out       io.Writer
	caps      terminal.Capabilities
	opts      options
	exclusive *Exclusive

	mu   sync.Mutex
	hook Hook
}

// New creates a console writing to out
func New(out io.Writer, caps terminal.Capabilities, opts ...Option) *Console {
	cfg := options{
		theme:     theme.Default(),
		tabSize:   render.DefaultTabSize,
		safeBox:   true,
		cellWidth: cells.Default,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if caps.Width <= 0 {
		caps.Width = terminal.DefaultWidth
	}
	if caps.Height <= 0 {
		caps.Height = terminal.DefaultHeight
	}
	return &Console{
		out:       out,
		caps:      caps,
		opts:      cfg,
		exclusive: NewExclusive(),
	}
}

// Capabilities returns the capabilities the console renders for
func (c *Console) Capabilities() terminal.Capabilities { return c.caps }

// Width is the render width in cells
func (c *Console) Width() int { return c.caps.Width }

// Height is the terminal height in lines
func (c *Console) Height() int { return c.caps.Height }

// Theme returns the console theme
func (c *Console) Theme() *theme.Theme { return c.opts.theme }

// Exclusive returns the primitive guarding writes to the console
func (c *Console) Exclusive() *Exclusive { return c.exclusive }

// IsTerminal reports whether cursor movement can be used
func (c *Console) IsTerminal() bool {
	return c.caps.IsTerminal && c.caps.SupportsAnsi
}

// Context builds the render context for one top-level render
func (c *Console) Context() *render.Context {
	return &render.Context{
		ColorSystem:  c.caps.ColorSystem,
		SupportsAnsi: c.caps.SupportsAnsi,
		Unicode:      c.caps.SupportsUnicode,
		Legacy:       c.caps.LegacyConsole,
		Width:        c.caps.Width,
		Height:       c.caps.Height,
		TabSize:      c.opts.tabSize,
		CellWidth:    c.opts.cellWidth,
		SafeBox:      c.opts.safeBox,
		Resolver:     c.opts.theme,
	}
}

// Render renders r at the console width
func (c *Console) Render(r render.Renderable) segment.Segments {
	ctx := c.Context()
	return r.Render(ctx, ctx.Width)
}

// RenderLines renders r at width, padding every line to exactly width cells
func (c *Console) RenderLines(r render.Renderable, width int) []segment.Line {
	return render.RenderLines(c.Context(), r, width, true)
}

// Encode turns segments into the bytes to send. Without ANSI support styles
// are dropped and control segments are skipped.
func (c *Console) Encode(segs segment.Segments) string {
	var sb strings.Builder
	for _, seg := range segs {
		switch {
		case seg.Control:
			if c.caps.SupportsAnsi {
				sb.WriteString(seg.Text)
			}
		case seg.LineBreak:
			sb.WriteString("\n")
		case !c.caps.SupportsAnsi:
			sb.WriteString(seg.Text)
		default:
			sb.WriteString(seg.Style.Encode(seg.Text, c.caps.ColorSystem, c.caps.LegacyConsole))
		}
	}
	return sb.String()
}

// Renderables converts Print arguments into renderables. Strings are parsed
// as markup; consecutive strings and other non-renderable values are joined
// with a space into one text.
func (c *Console) Renderables(objs ...interface{}) ([]render.Renderable, error) {
	var out []render.Renderable
	var pending *render.Text

	appendText := func(t *render.Text) {
		if pending == nil {
			pending = t
			return
		}
		pending = pending.Append(" ", style.Null)
		for _, span := range t.Spans() {
			pending = pending.Append(span.Text, span.Style)
		}
	}
	flush := func() {
		if pending != nil {
			out = append(out, pending)
			pending = nil
		}
	}

	for _, obj := range objs {
		switch v := obj.(type) {
		case nil:
			continue
		case string:
			t, err := render.FromMarkup(v, c.opts.theme)
			if err != nil {
				return nil, err
			}
			appendText(t)
		case render.Renderable:
			flush()
			out = append(out, v)
		default:
			appendText(render.NewText(fmt.Sprint(v), style.Null))
		}
	}
	flush()
	return out, nil
}

// Print renders objs and writes them, waiting for any live display to end
func (c *Console) Print(objs ...interface{}) error {
	return c.PrintContext(context.Background(), objs...)
}

// PrintContext is Print for cooperative callers. A context leased from the
// console's Exclusive, such as a live display's, writes immediately and the
// output lands above the live region.
func (c *Console) PrintContext(ctx context.Context, objs ...interface{}) error {
	items, err := c.Renderables(objs...)
	if err != nil {
		return err
	}
	var segs segment.Segments
	for _, item := range items {
		segs = append(segs, c.Render(item)...)
	}
	return c.emit(ctx, c.Encode(segs))
}

// Rule prints a horizontal rule with an optional markup title
func (c *Console) Rule(title string) error {
	r, err := render.NewRule(title, c.opts.theme)
	if err != nil {
		return err
	}
	return c.Print(r)
}

// Line prints n blank lines
func (c *Console) Line(n int) error {
	if n < 1 {
		return nil
	}
	return c.emit(context.Background(), strings.Repeat("\n", n))
}

// Control writes escape sequences. They are dropped when the output does
// not support ANSI.
func (c *Console) Control(ctx context.Context, seqs ...string) error {
	if !c.caps.SupportsAnsi || len(seqs) == 0 {
		return nil
	}
	return c.WriteRaw(ctx, strings.Join(seqs, ""))
}

// ShowCursor shows or hides the cursor on a terminal
func (c *Console) ShowCursor(ctx context.Context, show bool) error {
	if !c.IsTerminal() {
		return nil
	}
	if show {
		return c.Control(ctx, ansi.ShowCursor)
	}
	return c.Control(ctx, ansi.HideCursor)
}

// WriteRaw writes s as is, bypassing any hook
func (c *Console) WriteRaw(ctx context.Context, s string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, release, err := c.exclusive.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return c.write(s)
}

// AttachLive installs h to receive output printed through leased contexts.
// Only one live display may be attached at a time.
func (c *Console) AttachLive(h Hook) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hook != nil {
		return errors.New(errors.ErrLiveActive, "a live display is already active on this console")
	}
	c.hook = h
	return nil
}

// DetachLive removes h if it is the attached hook
func (c *Console) DetachLive(h Hook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hook == h {
		c.hook = nil
	}
}

func (c *Console) currentHook() Hook {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hook
}

func (c *Console) emit(ctx context.Context, output string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	leased := c.exclusive.Held(ctx)
	_, release, err := c.exclusive.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if h := c.currentHook(); leased && h != nil {
		return h.WriteAbove(output)
	}
	return c.write(output)
}

func (c *Console) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}
