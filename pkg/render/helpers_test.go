package render_test

import (
	"strings"

	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
)

// plainLines renders r and returns its lines as plain strings
func plainLines(ctx *render.Context, r render.Renderable, width int) []string {
	text := segment.PlainText(r.Render(ctx, width))
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func asciiContext(width int) *render.Context {
	ctx := render.NewContext(width)
	ctx.Unicode = false
	return ctx
}
