package layout

// NewGrid returns a borderless, headerless table whose columns are
// separated by gutter spaces. With no specs, columns are added as rows
// need them. Set Resolver before adding rows whose markup uses theme names.
func NewGrid(gutter int, specs ...ColumnSpec) *Table {
	t := &Table{Gutter: gutter}
	for _, spec := range specs {
		t.AddColumn(&Column{Spec: spec})
	}
	return t
}
