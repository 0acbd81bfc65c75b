package live

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// ProgressBar draws completion as a bar with half-cell resolution
type ProgressBar struct {
	Total     float64
	Completed float64
	// Width fixes the bar width; 0 fills the available width
	Width int
	// ShowPercentage appends the completed percentage
	ShowPercentage bool

	CompleteStyle  style.Style
	FinishedStyle  style.Style
	RemainingStyle style.Style
}

// NewProgressBar creates a bar for total units of work
func NewProgressBar(total float64) *ProgressBar {
	return &ProgressBar{Total: total, ShowPercentage: true}
}

// Fraction is the completed share clamped to [0, 1]
func (p *ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := p.Completed / p.Total
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Finished reports whether all work is done
func (p *ProgressBar) Finished() bool {
	return p.Total > 0 && p.Completed >= p.Total
}

func (p *ProgressBar) percentage() string {
	return fmt.Sprintf("%3.0f%%", p.Fraction()*100)
}

func (p *ProgressBar) Measure(ctx *render.Context, maxWidth int) render.Measurement {
	extra := 0
	if p.ShowPercentage {
		extra = len(p.percentage()) + 1
	}
	if p.Width > 0 {
		n := min(p.Width+extra, maxWidth)
		return render.Measurement{Minimum: n, Maximum: n}
	}
	return render.Measurement{Minimum: 4 + extra, Maximum: maxWidth}
}

func (p *ProgressBar) Render(ctx *render.Context, maxWidth int) segment.Segments {
	if maxWidth < 1 {
		return nil
	}
	width := maxWidth
	var suffix segment.Line
	if p.ShowPercentage {
		pct := p.percentage()
		if maxWidth > len(pct)+1 {
			suffix = segment.Line{segment.Plain(" "), segment.New(pct, ctx.Style("progress.percentage"))}
			width -= len(pct) + 1
		}
	}
	if p.Width > 0 {
		width = min(width, p.Width)
	}

	out := segment.Segments(p.bar(ctx, width))
	out = append(out, suffix...)
	return append(out, segment.NewLine())
}

func (p *ProgressBar) bar(ctx *render.Context, width int) segment.Line {
	full, halfRight, halfLeft := "━", "╸", "╺"
	if !ctx.Unicode || ctx.Legacy {
		full, halfRight, halfLeft = "-", " ", " "
	}

	completeStyle := p.CompleteStyle
	if completeStyle.IsNull() {
		completeStyle = ctx.Style("progress.complete")
	}
	if p.Finished() {
		completeStyle = p.FinishedStyle
		if completeStyle.IsNull() {
			completeStyle = ctx.Style("progress.finished")
		}
	}
	remainingStyle := p.RemainingStyle
	if remainingStyle.IsNull() {
		remainingStyle = ctx.Style("progress.remaining")
	}

	halves := int(float64(width*2) * p.Fraction())
	bars, half := halves/2, halves%2

	var line segment.Line
	if bars > 0 {
		line = append(line, segment.New(strings.Repeat(full, bars), completeStyle))
	}
	if half > 0 {
		line = append(line, segment.New(halfRight, completeStyle))
	}
	remaining := width - bars - half
	if remaining > 0 && half == 0 && bars > 0 {
		line = append(line, segment.New(halfLeft, remainingStyle))
		remaining--
	}
	if remaining > 0 {
		line = append(line, segment.New(strings.Repeat(full, remaining), remainingStyle))
	}
	return line
}
