// Package layout divides a fixed width between columns and draws tables
// and grids with the result.
package layout

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/inkwell/pkg/logging"
)

// SizeMode says how a column's width is chosen
type SizeMode int

const (
	// ModeContent sizes the column to its widest cell
	ModeContent SizeMode = iota
	// ModeFixed gives the column a set width
	ModeFixed
	// ModeProportional shares the leftover width by weight
	ModeProportional
)

// ColumnSpec describes how one column is sized. MinWidth and MaxWidth are
// ignored when zero.
type ColumnSpec struct {
	Mode     SizeMode
	Width    int
	Weight   int
	MinWidth int
	MaxWidth int
}

// SizeToContent sizes a column to its content
func SizeToContent() ColumnSpec {
	return ColumnSpec{Mode: ModeContent}
}

// Fixed gives a column exactly n cells
func Fixed(n int) ColumnSpec {
	if n < 0 {
		panic(fmt.Sprintf("layout: negative fixed width %d", n))
	}
	return ColumnSpec{Mode: ModeFixed, Width: n}
}

// Proportional shares leftover width in proportion to weight
func Proportional(weight int) ColumnSpec {
	if weight < 0 {
		panic(fmt.Sprintf("layout: negative weight %d", weight))
	}
	return ColumnSpec{Mode: ModeProportional, Weight: weight}
}

// WithMin returns a copy with a minimum width
func (c ColumnSpec) WithMin(n int) ColumnSpec {
	c.MinWidth = n
	return c
}

// WithMax returns a copy with a maximum width
func (c ColumnSpec) WithMax(n int) ColumnSpec {
	c.MaxWidth = n
	return c
}

func (c ColumnSpec) clamp(w int) int {
	if c.MaxWidth > 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	return w
}

func (c ColumnSpec) validate() {
	if c.Width < 0 || c.Weight < 0 || c.MinWidth < 0 || c.MaxWidth < 0 {
		panic(fmt.Sprintf("layout: negative size in column spec %+v", c))
	}
}

// Request is the input to Allocate
type Request struct {
	// Width is the total available width, overhead included
	Width int
	// Overhead is the cells taken by borders, dividers and padding
	// outside the columns
	Overhead int
	Columns  []ColumnSpec
	// Content is each column's natural width, the widest cell it holds
	Content []int
	// Expand fills Width; otherwise the layout is no wider than its
	// natural width
	Expand bool
}

// Allocation is the result of Allocate
type Allocation struct {
	Widths []int
	// Degenerate is set when the columns could not fit and content columns
	// were shrunk, possibly still overflowing Width
	Degenerate bool
}

// Total is the allocated width including overhead
func (a Allocation) Total(overhead int) int {
	n := overhead
	for _, w := range a.Widths {
		n += w
	}
	return n
}

// Allocate divides req.Width between the columns. Unless the result is
// degenerate, the widths plus overhead add up to exactly the effective
// width: req.Width when expanding, otherwise the smaller of req.Width and
// the natural width.
func Allocate(req Request) Allocation {
	n := len(req.Columns)
	if len(req.Content) != n {
		panic(fmt.Sprintf("layout: %d columns but %d content widths", n, len(req.Content)))
	}
	widths := make([]int, n)
	var proportional []int
	for i, col := range req.Columns {
		col.validate()
		switch col.Mode {
		case ModeFixed:
			widths[i] = col.Width
		case ModeContent:
			widths[i] = col.clamp(req.Content[i])
		case ModeProportional:
			proportional = append(proportional, i)
		}
	}

	target := req.Width
	if !req.Expand {
		natural := req.Overhead
		for i, col := range req.Columns {
			if col.Mode == ModeProportional {
				natural += col.clamp(req.Content[i])
			} else {
				natural += widths[i]
			}
		}
		if natural <= target {
			// everything fits, so proportional columns keep their content
			for _, i := range proportional {
				widths[i] = req.Columns[i].clamp(req.Content[i])
			}
			return Allocation{Widths: widths}
		}
	}

	remaining := target - req.Overhead
	for _, w := range widths {
		remaining -= w
	}

	alloc := Allocation{Widths: widths}
	switch {
	case remaining < 0:
		fits := shrink(req, widths, -remaining)
		alloc.Degenerate = true
		logger := logging.GetLogger("layout")
		logger.Warn().
			Int("width", req.Width).
			Int("overflow", -remaining).
			Bool("fits", fits).
			Msg("Columns do not fit, shrinking content columns")
	case remaining > 0 && len(proportional) > 0:
		distributeProportional(req.Columns, proportional, widths, remaining)
	case remaining > 0 && req.Expand:
		spread(widths, remaining)
	}

	if !alloc.Degenerate {
		if total := alloc.Total(req.Overhead); total != target {
			panic(fmt.Sprintf("layout: allocated %d cells for width %d", total, target))
		}
	}
	return alloc
}

// shrink takes excess cells from content columns, smallest content first,
// never going below one cell. It reports whether the excess was absorbed.
func shrink(req Request, widths []int, excess int) bool {
	var order []int
	for i, col := range req.Columns {
		if col.Mode == ModeContent {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return req.Content[order[a]] < req.Content[order[b]]
	})
	for _, i := range order {
		if excess == 0 {
			break
		}
		take := min(excess, max(widths[i]-1, 0))
		widths[i] -= take
		excess -= take
	}
	return excess == 0
}

// distributeProportional shares remaining between the proportional columns.
// Columns pushed past their caps are pinned and the rest re-shared; cells
// left over once every column is pinned are spread over all columns.
func distributeProportional(cols []ColumnSpec, idx []int, widths []int, remaining int) {
	active := append([]int(nil), idx...)
	for len(active) > 0 {
		weights := make([]int, len(active))
		for k, i := range active {
			weights[k] = cols[i].Weight
		}
		shares := Distribute(remaining, weights)

		var pinned []int
		for k, i := range active {
			if cols[i].clamp(shares[k]) != shares[k] {
				pinned = append(pinned, k)
			}
		}
		if len(pinned) == 0 {
			for k, i := range active {
				widths[i] = shares[k]
			}
			return
		}
		var next []int
		pin := make(map[int]bool, len(pinned))
		for _, k := range pinned {
			pin[k] = true
		}
		for k, i := range active {
			if pin[k] {
				widths[i] = min(cols[i].clamp(shares[k]), remaining)
				remaining -= widths[i]
			} else {
				next = append(next, i)
			}
		}
		active = next
	}
	if remaining > 0 {
		spread(widths, remaining)
	}
}

// spread shares extra cells over all columns weighted by their current
// widths; if every width is zero the last column takes them all
func spread(widths []int, extra int) {
	shares := Distribute(extra, widths)
	for i := range widths {
		widths[i] += shares[i]
	}
}

// Distribute splits total in proportion to weights using integer
// arithmetic. Each share is floor(total*w/sum); the cells left over go one
// each to the largest fractional remainders, ties to the lower index. If
// all weights are zero the last entry receives total.
func Distribute(total int, weights []int) []int {
	shares := make([]int, len(weights))
	if len(weights) == 0 || total <= 0 {
		return shares
	}
	sum := 0
	for _, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("layout: negative weight %d", w))
		}
		sum += w
	}
	if sum == 0 {
		shares[len(shares)-1] = total
		return shares
	}

	remainders := make([]int, len(weights))
	given := 0
	for i, w := range weights {
		shares[i] = total * w / sum
		remainders[i] = total * w % sum
		given += shares[i]
	}
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for k := 0; k < total-given; k++ {
		shares[order[k]]++
	}
	return shares
}
