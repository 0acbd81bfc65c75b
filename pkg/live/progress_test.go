// pkg/live/progress_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test progress bar glyphs, percentages and clamping

package live_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/inkwell/pkg/live"
	"github.com/arthur-debert/inkwell/pkg/render"
)

func TestProgressBarGlyphs(t *testing.T) {
	tests := []struct {
		name      string
		completed float64
		total     float64
		unicode   bool
		want      string
	}{
		{"empty", 0, 10, true, "━━━━━━━━━━"},
		{"half", 5, 10, true, "━━━━━╺━━━━"},
		{"half cell", 3, 4, true, "━━━━━━━╸━━"},
		{"done", 10, 10, true, "━━━━━━━━━━"},
		{"over", 15, 10, true, "━━━━━━━━━━"},
		{"ascii half", 5, 10, false, "----- ----"},
		{"ascii empty", 0, 10, false, "----------"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := live.NewProgressBar(tt.total)
			bar.Completed = tt.completed
			bar.ShowPercentage = false

			ctx := plainContext(10, tt.unicode)
			assert.Equal(t, []string{tt.want}, renderPlain(ctx, bar, 10))
		})
	}
}

func TestProgressBarPercentage(t *testing.T) {
	bar := live.NewProgressBar(100)
	bar.Completed = 50
	ctx := plainContext(15, true)

	assert.Equal(t, []string{"━━━━━╺━━━━  50%"}, renderPlain(ctx, bar, 15))

	// too narrow for the suffix
	assert.Equal(t, []string{"━━╸━━"}, renderPlain(ctx, bar, 5))
}

func TestProgressBarFixedWidth(t *testing.T) {
	bar := live.NewProgressBar(4)
	bar.Completed = 4
	bar.Width = 4
	ctx := plainContext(40, true)

	assert.Equal(t, []string{"━━━━ 100%"}, renderPlain(ctx, bar, 40))
	assert.Equal(t, render.Measurement{Minimum: 9, Maximum: 9}, bar.Measure(ctx, 40))
	assert.Equal(t, render.Measurement{Minimum: 6, Maximum: 6}, bar.Measure(ctx, 6))
}

func TestProgressBarFraction(t *testing.T) {
	tests := []struct {
		name      string
		completed float64
		total     float64
		fraction  float64
		finished  bool
	}{
		{"zero total", 5, 0, 0, false},
		{"negative", -1, 10, 0, false},
		{"partial", 2.5, 10, 0.25, false},
		{"complete", 10, 10, 1, true},
		{"over", 12, 10, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := &live.ProgressBar{Total: tt.total, Completed: tt.completed}
			assert.InDelta(t, tt.fraction, bar.Fraction(), 1e-9)
			assert.Equal(t, tt.finished, bar.Finished())
		})
	}
}
