// pkg/layout/table_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test table and grid rendering on top of the width allocator

package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inkwell/pkg/cells"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/layout"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
	"github.com/arthur-debert/inkwell/pkg/theme"
)

func plainLines(ctx *render.Context, r render.Renderable, width int) []string {
	text := strings.TrimSuffix(segment.PlainText(r.Render(ctx, width)), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func newTable(t *testing.T, headers ...string) *layout.Table {
	t.Helper()
	tbl, err := layout.NewTable(nil, headers...)
	require.NoError(t, err)
	return tbl
}

func addRows(t *testing.T, tbl *layout.Table, rows ...[]interface{}) *layout.Table {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, tbl.AddRow(row...))
	}
	return tbl
}

func fruitTable(t *testing.T) *layout.Table {
	t.Helper()
	return addRows(t, newTable(t, "Name", "Qty"),
		[]interface{}{"apple", "3"},
		[]interface{}{"kiwi", "12"},
	)
}

func TestTable_FitsContent(t *testing.T) {
	ctx := render.NewContext(80)
	assert.Equal(t, []string{
		"┌───────┬─────┐",
		"│ Name  │ Qty │",
		"├───────┼─────┤",
		"│ apple │ 3   │",
		"│ kiwi  │ 12  │",
		"└───────┴─────┘",
	}, plainLines(ctx, fruitTable(t), 80))

	assert.Equal(t, render.Measurement{Minimum: 15, Maximum: 15}, fruitTable(t).Measure(ctx, 80))
}

func TestTable_Expand(t *testing.T) {
	ctx := render.NewContext(80)
	tbl := fruitTable(t)
	tbl.Expand = true

	lines := plainLines(ctx, tbl, 20)
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Equal(t, 20, cells.Len(line, nil), line)
	}
	assert.Equal(t, "│ Name     │ Qty   │", lines[1])
	assert.Equal(t, []int{10, 7}, tbl.ColumnWidths(ctx, 20).Widths)
}

func TestTable_Options(t *testing.T) {
	ctx := render.NewContext(80)

	t.Run("row lines and footer", func(t *testing.T) {
		tbl := fruitTable(t)
		tbl.ShowLines = true
		tbl.ShowFooter = true
		tbl.Columns[0].Footer = render.NewText("Total", style.Null)
		tbl.Columns[1].Footer = render.NewText("15", style.Null)
		assert.Equal(t, []string{
			"┌───────┬─────┐",
			"│ Name  │ Qty │",
			"├───────┼─────┤",
			"│ apple │ 3   │",
			"├───────┼─────┤",
			"│ kiwi  │ 12  │",
			"├───────┼─────┤",
			"│ Total │ 15  │",
			"└───────┴─────┘",
		}, plainLines(ctx, tbl, 80))
	})

	t.Run("no edge", func(t *testing.T) {
		tbl := fruitTable(t)
		tbl.ShowEdge = false
		assert.Equal(t, []string{
			" Name  │ Qty ",
			"───────┼─────",
			" apple │ 3   ",
			" kiwi  │ 12  ",
		}, plainLines(ctx, tbl, 80))
	})

	t.Run("title and caption", func(t *testing.T) {
		tbl := fruitTable(t)
		require.NoError(t, tbl.SetTitle("Fruits"))
		require.NoError(t, tbl.SetCaption("[i]fresh[/]"))
		lines := plainLines(ctx, tbl, 80)
		assert.Equal(t, "    Fruits     ", lines[0])
		assert.Equal(t, "     fresh     ", lines[len(lines)-1])
	})

	t.Run("right justified column", func(t *testing.T) {
		tbl := fruitTable(t)
		tbl.Columns[1].Justify = render.JustifyRight
		assert.Equal(t, "│ kiwi  │  12 │", plainLines(ctx, tbl, 80)[4])
	})

	t.Run("ascii fallback", func(t *testing.T) {
		asciiCtx := render.NewContext(80)
		asciiCtx.Unicode = false
		assert.Equal(t, "+-------+-----+", plainLines(asciiCtx, fruitTable(t), 80)[0])
	})

	t.Run("wrapping cells grow the row", func(t *testing.T) {
		tbl := newTable(t, "Word")
		tbl.Columns[0].Spec = layout.Fixed(5)
		require.NoError(t, tbl.AddRow("one two three"))
		assert.Equal(t, []string{
			"┌───────┐",
			"│ Word  │",
			"├───────┤",
			"│ one   │",
			"│ two   │",
			"│ three │",
			"└───────┘",
		}, plainLines(ctx, tbl, 80))
	})

	t.Run("header style from theme", func(t *testing.T) {
		th, err := theme.FromSpecs(map[string]string{"table.header": "bold"})
		require.NoError(t, err)
		segs := fruitTable(t).Render(ctx.WithResolver(th), 80)
		var found bool
		for _, seg := range segs {
			if seg.Text == "Name" {
				found = true
				assert.Equal(t, style.MustParse("bold"), seg.Style)
			}
		}
		assert.True(t, found)
	})

	t.Run("cell names resolve through the theme", func(t *testing.T) {
		tbl, err := layout.NewTable(theme.Default(), "A")
		require.NoError(t, err)
		require.NoError(t, tbl.AddRow("[success]ok[/]"))
		var found bool
		for _, seg := range tbl.Render(ctx, 80) {
			if seg.Text == "ok" {
				found = true
				assert.Equal(t, theme.Default().Get("success"), seg.Style)
			}
		}
		assert.True(t, found)
	})

	t.Run("renderable cells and missing cells", func(t *testing.T) {
		tbl := newTable(t, "A", "B")
		require.NoError(t, tbl.AddRow(render.NewText("x", style.Null)))
		assert.Equal(t, "│ x │   │", plainLines(ctx, tbl, 80)[3])
		assert.Equal(t, 1, tbl.RowCount())
	})

	t.Run("unsupported cell panics", func(t *testing.T) {
		tbl := newTable(t, "A")
		assert.Panics(t, func() { _ = tbl.AddRow(42) })
	})

	t.Run("proportional columns keep content width when it fits", func(t *testing.T) {
		tbl := newTable(t, "A", "B")
		tbl.Columns[0].Spec = layout.Proportional(1)
		tbl.Columns[1].Spec = layout.Proportional(1)
		require.NoError(t, tbl.AddRow("the quick brown fox jumps", "x"))
		lines := plainLines(ctx, tbl, 80)
		require.Len(t, lines, 5)
		assert.Equal(t, "│ the quick brown fox jumps │ x │", lines[3])
	})
}

func TestTable_InvalidMarkup(t *testing.T) {
	tests := []struct {
		name    string
		apply   func(tbl *layout.Table) error
		code    errors.ErrorCode
		rows    int
		details map[string]interface{}
	}{
		{
			name:  "unterminated tag in a cell",
			apply: func(tbl *layout.Table) error { return tbl.AddRow("[oops") },
			code:  errors.ErrMarkupUnterminatedTag,
			details: map[string]interface{}{
				"row": 0, "column": 0,
			},
		},
		{
			name: "bad cell after a good row",
			apply: func(tbl *layout.Table) error {
				if err := tbl.AddRow("fine", "fine"); err != nil {
					return err
				}
				return tbl.AddRow("fine", "[/]")
			},
			code: errors.ErrMarkupUnmatchedClose,
			rows: 1,
			details: map[string]interface{}{
				"row": 1, "column": 1,
			},
		},
		{
			name:  "unknown style in the title",
			apply: func(tbl *layout.Table) error { return tbl.SetTitle("[bogus_colour]Fruits[/]") },
			code:  errors.ErrStyleUnknownToken,
		},
		{
			name:  "unclosed tag in the caption",
			apply: func(tbl *layout.Table) error { return tbl.SetCaption("[i]fresh") },
			code:  errors.ErrMarkupUnclosedTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newTable(t, "A", "B")
			err := tt.apply(tbl)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.rows, tbl.RowCount())
			assert.Nil(t, tbl.Title)
			assert.Nil(t, tbl.Caption)
			got := errors.GetErrorDetails(err)
			for k, v := range tt.details {
				assert.Equal(t, v, got[k], k)
			}
		})
	}

	_, err := layout.NewTable(nil, "ok", "[/]")
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkupUnmatchedClose))
}

func TestGrid(t *testing.T) {
	ctx := render.NewContext(80)
	g := layout.NewGrid(2, layout.SizeToContent(), layout.SizeToContent())
	require.NoError(t, g.AddRow("a", "bb"))
	require.NoError(t, g.AddRow("ccc", "d"))

	assert.Equal(t, []string{"a    bb", "ccc  d "}, plainLines(ctx, g, 80))

	g.Expand = true
	for _, line := range plainLines(ctx, g, 20) {
		assert.Equal(t, 20, cells.Len(line, nil))
	}
}

func TestTable_Traits(t *testing.T) {
	tbl := fruitTable(t)
	assert.Equal(t, 3, tbl.BorderWidth())
	assert.Equal(t, 4, tbl.PaddingWidth())
	assert.Equal(t, 7, render.Overhead(tbl))
}
