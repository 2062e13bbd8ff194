package sweep

import (
	"cmp"
	"fmt"
	"slices"
)

// Cell identifies one board square by its zero-based coordinates.
// It is a plain value type: cells compare and hash by value.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func cellCompare(a, b Cell) int {
	if r := cmp.Compare(a.Row, b.Row); r != 0 {
		return r
	}
	return cmp.Compare(a.Col, b.Col)
}

func sortCells(cells []Cell) []Cell {
	slices.SortFunc(cells, cellCompare)
	return cells
}
