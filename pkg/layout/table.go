package layout

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/inkwell/pkg/box"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/logging"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Column configures one table column
type Column struct {
	Header      *render.Text
	Footer      *render.Text
	Spec        ColumnSpec
	Justify     render.Justify
	Overflow    render.Overflow
	NoWrap      bool
	Style       style.Style
	HeaderStyle style.Style
	FooterStyle style.Style
}

// Table lays out rows of cells in columns. Cells are markup strings or
// renderables.
type Table struct {
	Columns []*Column
	Title   *render.Text
	Caption *render.Text
	// Resolver looks up tag names in the markup passed to NewTable, AddRow,
	// SetTitle and SetCaption
	Resolver style.Resolver
	// Box draws the borders; nil draws none and separates columns with
	// Gutter spaces
	Box        *box.Box
	Gutter     int
	ShowHeader bool
	ShowFooter bool
	ShowEdge   bool
	ShowLines  bool
	PadX       int
	// Expand fills the render width instead of fitting the content
	Expand bool
	// Width caps the table width when positive
	Width       int
	Style       style.Style
	BorderStyle style.Style
	HeaderStyle style.Style
	RowStyles   []style.Style

	rows [][]render.Renderable
}

// NewTable returns a bordered table with a content sized column per header.
// Headers are markup whose tag names are looked up in r.
func NewTable(r style.Resolver, headers ...string) (*Table, error) {
	t := &Table{
		Box:        box.Square,
		ShowHeader: true,
		ShowEdge:   true,
		PadX:       1,
		Gutter:     1,
		Resolver:   r,
	}
	for _, h := range headers {
		txt, err := render.FromMarkup(h, r)
		if err != nil {
			return nil, err
		}
		t.AddColumn(&Column{Header: txt, Spec: SizeToContent()})
	}
	return t, nil
}

// SetTitle parses title markup shown centered above the table
func (t *Table) SetTitle(title string) error {
	txt, err := t.markup(title)
	if err != nil {
		return err
	}
	t.Title = txt
	return nil
}

// SetCaption parses caption markup shown centered below the table
func (t *Table) SetCaption(caption string) error {
	txt, err := t.markup(caption)
	if err != nil {
		return err
	}
	t.Caption = txt
	return nil
}

// markup parses source with the table resolver; empty source yields nil
func (t *Table) markup(source string) (*render.Text, error) {
	if source == "" {
		return nil, nil
	}
	return render.FromMarkup(source, t.Resolver)
}

// AddColumn appends a column
func (t *Table) AddColumn(c *Column) *Table {
	t.Columns = append(t.Columns, c)
	return t
}

// AddRow appends a row. Each cell is a string of markup, a
// render.Renderable or nil for an empty cell. Missing cells are left empty;
// extra cells add content sized columns. A cell with invalid markup fails the
// whole row and the table is left unchanged.
func (t *Table) AddRow(cells ...interface{}) error {
	row := make([]render.Renderable, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case nil:
			row[i] = nil
		case string:
			txt, err := t.markup(v)
			if err != nil {
				if inkErr, ok := errors.From(err); ok {
					inkErr.WithDetail("row", len(t.rows)).WithDetail("column", i)
				}
				return err
			}
			row[i] = &markupCell{text: txt}
		case render.Renderable:
			row[i] = v
		default:
			panic(fmt.Sprintf("layout: unsupported cell type %T", c))
		}
	}
	for len(t.Columns) < len(row) {
		t.AddColumn(&Column{Spec: SizeToContent()})
	}
	t.rows = append(t.rows, row)
	return nil
}

// RowCount returns the number of body rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// markupCell is a cell given as markup. Unlike renderable cells it takes
// its justification and wrapping from the column.
type markupCell struct {
	text *render.Text
	col  *Column
	base style.Style
}

func (m *markupCell) styled() *render.Text {
	txt := m.text
	if txt == nil {
		txt = render.NewText("", style.Null)
	}
	txt = txt.WithStyle(m.base)
	if m.col != nil {
		txt = txt.WithJustify(m.col.Justify).WithNoWrap(m.col.NoWrap)
		if m.col.Overflow != nil {
			txt = txt.WithOverflow(m.col.Overflow)
		}
	}
	return txt
}

func (m *markupCell) Measure(ctx *render.Context, maxWidth int) render.Measurement {
	return m.styled().Measure(ctx, maxWidth)
}

func (m *markupCell) Render(ctx *render.Context, maxWidth int) segment.Segments {
	return m.styled().Render(ctx, maxWidth)
}

type rowKind int

const (
	rowHeader rowKind = iota
	rowBody
	rowFooter
)

type tableRow struct {
	kind  rowKind
	cells []render.Renderable
	style style.Style
}

// grid resolves all rows into cells bound to their columns
func (t *Table) grid(ctx *render.Context) []tableRow {
	var rows []tableRow
	cell := func(r render.Renderable, col *Column, base style.Style) render.Renderable {
		if r == nil {
			return &markupCell{col: col, base: base}
		}
		if mc, ok := r.(*markupCell); ok {
			return &markupCell{text: mc.text, col: col, base: base}
		}
		return render.WithStyle(r, base)
	}

	if t.ShowHeader {
		headerStyle := t.HeaderStyle
		if headerStyle.IsNull() {
			headerStyle = ctx.Style("table.header")
		}
		row := tableRow{kind: rowHeader}
		for _, col := range t.Columns {
			row.cells = append(row.cells, cell(&markupCell{text: col.Header}, col, headerStyle.Combine(col.HeaderStyle)))
		}
		rows = append(rows, row)
	}
	for n, r := range t.rows {
		row := tableRow{kind: rowBody}
		if len(t.RowStyles) > 0 {
			row.style = t.RowStyles[n%len(t.RowStyles)]
		}
		for i, col := range t.Columns {
			var c render.Renderable
			if i < len(r) {
				c = r[i]
			}
			row.cells = append(row.cells, cell(c, col, row.style.Combine(col.Style)))
		}
		rows = append(rows, row)
	}
	if t.ShowFooter {
		footerStyle := ctx.Style("table.footer")
		row := tableRow{kind: rowFooter}
		for _, col := range t.Columns {
			row.cells = append(row.cells, cell(&markupCell{text: col.Footer}, col, footerStyle.Combine(col.FooterStyle)))
		}
		rows = append(rows, row)
	}
	return rows
}

func (t *Table) bordered() bool {
	return t.Box != nil
}

// overhead is the cells spent outside the columns
func (t *Table) overhead() int {
	n := len(t.Columns)
	if n == 0 {
		return 0
	}
	if !t.bordered() {
		return (n - 1) * t.Gutter
	}
	o := n - 1
	if t.ShowEdge {
		o += 2
	}
	return o
}

// BorderWidth implements render.Bordered
func (t *Table) BorderWidth() int { return t.overhead() }

// PaddingWidth implements render.Padded
func (t *Table) PaddingWidth() int { return 2 * t.PadX * len(t.Columns) }

// columnMeasures measures every column including cell padding
func (t *Table) columnMeasures(ctx *render.Context, rows []tableRow, maxWidth int) []render.Measurement {
	pad := 2 * t.PadX
	out := make([]render.Measurement, len(t.Columns))
	for i, col := range t.Columns {
		if col.Spec.Mode == ModeFixed {
			w := col.Spec.Width + pad
			out[i] = render.Measurement{Minimum: w, Maximum: w}
			continue
		}
		var m render.Measurement
		for _, row := range rows {
			cm := render.Measure(ctx, row.cells[i], max(maxWidth-pad, 1))
			m.Minimum = max(m.Minimum, cm.Minimum)
			m.Maximum = max(m.Maximum, cm.Maximum)
		}
		out[i] = render.Measurement{Minimum: m.Minimum + pad, Maximum: m.Maximum + pad}
	}
	return out
}

// Measure implements render.Renderable
func (t *Table) Measure(ctx *render.Context, maxWidth int) render.Measurement {
	width := t.availableWidth(maxWidth)
	if len(t.Columns) == 0 || width < 1 {
		return render.Measurement{}
	}
	m := render.Measurement{Minimum: t.overhead(), Maximum: t.overhead()}
	for _, cm := range t.columnMeasures(ctx, t.grid(ctx), width) {
		m.Minimum += cm.Minimum
		m.Maximum += cm.Maximum
	}
	if t.Expand {
		m.Maximum = width
	}
	return m.Normalize().WithMaximum(width)
}

func (t *Table) availableWidth(maxWidth int) int {
	if t.Width > 0 {
		return min(t.Width, maxWidth)
	}
	return maxWidth
}

// ColumnWidths returns the width of each column, padding included, when
// rendered at maxWidth
func (t *Table) ColumnWidths(ctx *render.Context, maxWidth int) Allocation {
	return t.allocate(ctx, t.grid(ctx), t.availableWidth(maxWidth))
}

func (t *Table) allocate(ctx *render.Context, rows []tableRow, width int) Allocation {
	pad := 2 * t.PadX
	measures := t.columnMeasures(ctx, rows, width)
	specs := make([]ColumnSpec, len(t.Columns))
	content := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		spec := col.Spec
		if spec.Mode == ModeFixed {
			spec.Width += pad
		}
		if spec.MinWidth > 0 {
			spec.MinWidth += pad
		}
		if spec.MaxWidth > 0 {
			spec.MaxWidth += pad
		}
		specs[i] = spec
		content[i] = measures[i].Maximum
	}
	return Allocate(Request{
		Width:    width,
		Overhead: t.overhead(),
		Columns:  specs,
		Content:  content,
		Expand:   t.Expand || t.Width > 0,
	})
}

// Render implements render.Renderable
func (t *Table) Render(ctx *render.Context, maxWidth int) segment.Segments {
	width := t.availableWidth(maxWidth)
	if len(t.Columns) == 0 || width < 1 {
		return nil
	}
	rows := t.grid(ctx)
	alloc := t.allocate(ctx, rows, width)
	widths := alloc.Widths
	tableWidth := alloc.Total(t.overhead())
	logger := logging.WithFields(map[string]interface{}{
		"component": "layout",
		"rows":      len(rows),
		"width":     tableWidth,
	})
	logger.Debug().Ints("widths", widths).Msg("Table columns allocated")

	var b *box.Box
	if t.bordered() {
		b = ctx.Box(t.Box)
	}
	borderStyle := t.BorderStyle
	if borderStyle.IsNull() {
		borderStyle = ctx.Style("table.border")
	}

	var lines []segment.Line
	if t.Title != nil {
		lines = append(lines, t.caption(ctx, t.Title, "table.title", tableWidth)...)
	}
	if b != nil && t.ShowEdge && !b.NoOuterRules {
		lines = append(lines, segment.Line{segment.New(b.Line(box.PositionTop, widths, true), borderStyle)})
	}
	for n, row := range rows {
		if n > 0 && b != nil {
			prev := rows[n-1].kind
			switch {
			case prev == rowHeader:
				lines = append(lines, t.rule(b, box.PositionHeader, widths, borderStyle))
			case row.kind == rowFooter:
				lines = append(lines, t.rule(b, box.PositionFooter, widths, borderStyle))
			case t.ShowLines:
				lines = append(lines, t.rule(b, box.PositionRow, widths, borderStyle))
			}
		}
		lines = append(lines, t.renderRow(ctx, row, widths, b, borderStyle)...)
	}
	if b != nil && t.ShowEdge && !b.NoOuterRules {
		lines = append(lines, segment.Line{segment.New(b.Line(box.PositionBottom, widths, true), borderStyle)})
	}
	if t.Caption != nil {
		lines = append(lines, t.caption(ctx, t.Caption, "table.caption", tableWidth)...)
	}

	if !t.Style.IsNull() {
		for i, line := range lines {
			lines[i] = segment.Line(segment.ApplyStyle(segment.Segments(line), t.Style))
		}
	}
	return segment.JoinLines(lines)
}

func (t *Table) rule(b *box.Box, pos box.Position, widths []int, s style.Style) segment.Line {
	return segment.Line{segment.New(b.Line(pos, widths, t.ShowEdge), s)}
}

// renderRow draws one row, as tall as its tallest cell
func (t *Table) renderRow(ctx *render.Context, row tableRow, widths []int, b *box.Box, borderStyle style.Style) []segment.Line {
	cellLines := make([][]segment.Line, len(widths))
	height := 1
	for i, w := range widths {
		inner := w - 2*t.PadX
		if inner < 1 {
			continue
		}
		cellLines[i] = render.RenderLines(ctx, row.cells[i], inner, true)
		height = max(height, len(cellLines[i]))
	}

	var divider, left, right segment.Segment
	if b != nil {
		left = segment.New(b.Left, borderStyle)
		divider = segment.New(b.Divider, borderStyle)
		right = segment.New(b.Right, borderStyle)
	} else {
		divider = segment.Plain(strings.Repeat(" ", t.Gutter))
	}
	edges := b != nil && t.ShowEdge

	out := make([]segment.Line, height)
	for y := 0; y < height; y++ {
		var line segment.Line
		if edges {
			line = append(line, left)
		}
		for i, w := range widths {
			if i > 0 && divider.Text != "" {
				line = append(line, divider)
			}
			inner := w - 2*t.PadX
			if inner < 1 {
				if w > 0 {
					line = append(line, segment.New(strings.Repeat(" ", w), row.style))
				}
				continue
			}
			pad := segment.New(strings.Repeat(" ", t.PadX), row.style)
			if t.PadX > 0 {
				line = append(line, pad)
			}
			if y < len(cellLines[i]) {
				line = append(line, cellLines[i][y]...)
			} else {
				line = append(line, segment.New(strings.Repeat(" ", inner), row.style))
			}
			if t.PadX > 0 {
				line = append(line, pad)
			}
		}
		if edges {
			line = append(line, right)
		}
		out[y] = line
	}
	return out
}

// caption renders a title or caption centered over the table width
func (t *Table) caption(ctx *render.Context, txt *render.Text, styleName string, width int) []segment.Line {
	txt = txt.WithStyle(ctx.Style(styleName)).WithJustify(render.JustifyCenter)
	return txt.Wrap(ctx, max(width, 1))
}
