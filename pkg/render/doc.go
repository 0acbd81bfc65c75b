/*
Package render defines the Measure/Render contract and the basic renderables.

A Renderable reports how narrow and how wide it can be drawn (Measure) and
turns itself into segments for a given width (Render). Both take a *Context,
an immutable bundle of terminal facts built once per top-level call:

	ctx := render.NewContext(80)
	segs := render.NewText("hello", style.Null).Render(ctx, ctx.Width)

Composite renderables measure their children first, add their own overhead
(see the Bordered and Padded traits) and render children at the resolved
width. Render returns a complete slice; calling it again starts over.

Renderables in this package: Text, Group, Styled, Padding, Panel, Align,
Rule and Markdown. Tables and grids live in package layout, spinners and
progress bars in package live.
*/
package render
