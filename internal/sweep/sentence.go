package sweep

import (
	"fmt"
	"strings"
)

type void = struct{}

/*
A Sentence is a logical statement about the board: exactly `count` of
the cells in its set are mines. Every sentence owns its cell set
exclusively; resolving a cell in one sentence never touches another.

Invariant: 0 <= count <= len(cells). A violation means the calling
sequence has gone wrong (e.g. a cell marked both mine and safe), at
which point no further deduction can be trusted, so mutations panic
[AssertionError] instead of limping on.
*/
type Sentence struct {
	cells map[Cell]void
	count int
}

// panics [AssertionError]
func NewSentence(cells []Cell, count int) *Sentence {
	s := &Sentence{
		cells: make(map[Cell]void, len(cells)),
		count: count,
	}
	for _, c := range cells {
		s.cells[c] = void{}
	}
	s.assertConsistent()
	return s
}

func (s Sentence) assertConsistent() {
	if s.count < 0 || s.count > len(s.cells) {
		panic(AssertionError{fmt.Sprintf(
			"inconsistent sentence: %d mines in %d cells", s.count, len(s.cells),
		)})
	}
}

func (s Sentence) Size() int {
	return len(s.cells)
}

func (s Sentence) Count() int {
	return s.count
}

func (s Sentence) Has(cell Cell) bool {
	_, ok := s.cells[cell]
	return ok
}

// Cells returns a copy of the sentence's cell set. Callers may hold
// onto it across mutations.
func (s Sentence) Cells() []Cell {
	cells := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		cells = append(cells, c)
	}
	return sortCells(cells)
}

/*
KnownMines returns every cell of the sentence if all of them are
provably mines, i.e. the mine count equals the set size. The count != 0
guard keeps an already-emptied sentence (0 mines in 0 cells) from
reporting "all mines".
*/
func (s Sentence) KnownMines() []Cell {
	if s.count != 0 && s.count == len(s.cells) {
		return s.Cells()
	}
	return nil
}

// KnownSafes returns every cell of the sentence if none of them can be
// a mine, i.e. the mine count is zero.
func (s Sentence) KnownSafes() []Cell {
	if s.count == 0 {
		return s.Cells()
	}
	return nil
}

// ResolveMine records that cell is a mine: it leaves the set and takes
// one mine with it. No-op when cell is not in the set.
//
// panics [AssertionError]
func (s *Sentence) ResolveMine(cell Cell) {
	if _, ok := s.cells[cell]; ok {
		delete(s.cells, cell)
		s.count--
		s.assertConsistent()
	}
}

// ResolveSafe records that cell is not a mine: it leaves the set and
// the count stays. No-op when cell is not in the set.
//
// panics [AssertionError]
func (s *Sentence) ResolveSafe(cell Cell) {
	if _, ok := s.cells[cell]; ok {
		delete(s.cells, cell)
		s.assertConsistent()
	}
}

// Equal reports structural equality: same cell set (order-independent)
// and same count.
func (s Sentence) Equal(other *Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// ProperSubsetOf reports whether the sentence's cells form a strict
// subset of other's cells.
func (s Sentence) ProperSubsetOf(other *Sentence) bool {
	if len(s.cells) >= len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

/*
Minus derives the set difference of two sentences. When other is a
strict subset of s, the result states that the cells unique to s hold
exactly the leftover mines: the subset inference rule.

panics [AssertionError]
*/
func (s Sentence) Minus(other *Sentence) *Sentence {
	diff := &Sentence{
		cells: make(map[Cell]void, len(s.cells)-len(other.cells)),
		count: s.count - other.count,
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			diff.cells[c] = void{}
		}
	}
	diff.assertConsistent()
	return diff
}

func (s Sentence) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Cells() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "} = %d", s.count)
	return b.String()
}
