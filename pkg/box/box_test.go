// pkg/box/box_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test border glyph tables, rules and safe substitution

package box_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inkwell/pkg/box"
)

func TestLine(t *testing.T) {
	widths := []int{3, 2}

	assert.Equal(t, "╭───┬──╮", box.Rounded.Line(box.PositionTop, widths, true))
	assert.Equal(t, "├───┼──┤", box.Rounded.Line(box.PositionRow, widths, true))
	assert.Equal(t, "╰───┴──╯", box.Rounded.Line(box.PositionBottom, widths, true))
	assert.Equal(t, "───┼──", box.Rounded.Line(box.PositionHeader, widths, false))
	assert.Equal(t, "+---+--+", box.ASCII.Line(box.PositionTop, widths, true))
	assert.Equal(t, "+===+==+", box.ASCIIDouble.Line(box.PositionRow, widths, true))
}

func TestASCIIFlag(t *testing.T) {
	assert.True(t, box.ASCII.ASCII)
	assert.True(t, box.Markdown.ASCII)
	assert.True(t, box.Hidden.ASCII)
	assert.False(t, box.Rounded.ASCII)
	assert.False(t, box.Double.ASCII)
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		box     *box.Box
		unicode bool
		legacy  bool
		want    *box.Box
	}{
		{"unicode keeps box", box.Rounded, true, false, box.Rounded},
		{"rounded to ascii", box.Rounded, false, false, box.ASCII},
		{"double to ascii double", box.Double, false, false, box.ASCIIDouble},
		{"ascii box kept", box.Markdown, false, false, box.Markdown},
		{"legacy rounded to square", box.Rounded, true, true, box.Square},
		{"legacy without unicode", box.Heavy, false, true, box.ASCII},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, tt.box.Substitute(tt.unicode, tt.legacy))
		})
	}

	var nilBox *box.Box
	assert.Nil(t, nilBox.Substitute(false, false))
}

func TestGet(t *testing.T) {
	for _, name := range box.Names() {
		b, ok := box.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, b.Name)
	}
	_, ok := box.Get("nope")
	assert.False(t, ok)
}
