package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cells []Cell
		count int
		want  []Cell
	}{
		{
			name:  "all mines",
			cells: []Cell{{0, 0}, {0, 1}, {1, 1}},
			count: 3,
			want:  []Cell{{0, 0}, {0, 1}, {1, 1}},
		},
		{
			name:  "undetermined",
			cells: []Cell{{0, 0}, {0, 1}, {1, 1}},
			count: 2,
			want:  nil,
		},
		{
			name:  "emptied sentence is not all mines",
			cells: nil,
			count: 0,
			want:  nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			s := NewSentence(test.cells, test.count)
			assert.Equal(t, test.want, s.KnownMines())
		})
	}
}

func TestKnownSafes(t *testing.T) {
	t.Parallel()

	s := NewSentence([]Cell{{2, 0}, {0, 1}}, 0)
	assert.Equal(t, []Cell{{0, 1}, {2, 0}}, s.KnownSafes())

	s = NewSentence([]Cell{{2, 0}, {0, 1}}, 1)
	assert.Nil(t, s.KnownSafes())
}

func TestResolveMine(t *testing.T) {
	t.Parallel()

	s := NewSentence([]Cell{{0, 0}, {0, 1}, {0, 2}}, 2)

	s.ResolveMine(Cell{0, 1})
	assert.Equal(t, []Cell{{0, 0}, {0, 2}}, s.Cells())
	assert.Equal(t, 1, s.Count())

	// not a member, no-op
	s.ResolveMine(Cell{5, 5})
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, 1, s.Count())
}

func TestResolveSafe(t *testing.T) {
	t.Parallel()

	s := NewSentence([]Cell{{0, 0}, {0, 1}, {0, 2}}, 2)

	s.ResolveSafe(Cell{0, 0})
	assert.Equal(t, []Cell{{0, 1}, {0, 2}}, s.Cells())
	assert.Equal(t, 2, s.Count())

	s.ResolveSafe(Cell{5, 5})
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, 2, s.Count())
}

func TestSentenceEqual(t *testing.T) {
	t.Parallel()

	a := NewSentence([]Cell{{0, 0}, {1, 1}}, 1)
	b := NewSentence([]Cell{{1, 1}, {0, 0}}, 1)
	c := NewSentence([]Cell{{0, 0}, {1, 1}}, 2)
	d := NewSentence([]Cell{{0, 0}, {1, 0}}, 1)

	assert.True(t, a.Equal(b), "equality must not depend on cell order")
	assert.False(t, a.Equal(c), "same cells, different count")
	assert.False(t, a.Equal(d), "same count, different cells")
}

func TestProperSubsetOf(t *testing.T) {
	t.Parallel()

	small := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
	big := NewSentence([]Cell{{0, 0}, {0, 1}, {0, 2}}, 2)
	other := NewSentence([]Cell{{0, 0}, {5, 5}}, 1)

	assert.True(t, small.ProperSubsetOf(big))
	assert.False(t, big.ProperSubsetOf(small))
	assert.False(t, small.ProperSubsetOf(small), "a set is not a strict subset of itself")
	assert.False(t, other.ProperSubsetOf(big))
}

func TestMinus(t *testing.T) {
	t.Parallel()

	small := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
	big := NewSentence([]Cell{{0, 0}, {0, 1}, {0, 2}}, 2)

	diff := big.Minus(small)
	assert.Equal(t, []Cell{{0, 2}}, diff.Cells())
	assert.Equal(t, 1, diff.Count())
}

func TestInconsistentSentencePanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "inconsistent sentence: 1 mines in 0 cells", func() {
		NewSentence(nil, 1)
	})
	assert.Panics(t, func() {
		NewSentence([]Cell{{0, 0}}, -1)
	})
	assert.Panics(t, func() {
		// resolving the only cell of a zero-count sentence as a mine
		s := NewSentence([]Cell{{0, 0}}, 0)
		s.ResolveMine(Cell{0, 0})
	})
}

func TestSentenceOwnsItsCells(t *testing.T) {
	t.Parallel()

	cells := []Cell{{0, 0}, {0, 1}}
	a := NewSentence(cells, 1)
	b := NewSentence(cells, 1)

	a.ResolveSafe(Cell{0, 0})
	assert.Equal(t, 1, a.Size())
	assert.Equal(t, 2, b.Size(), "sentences must not alias each other's cell sets")

	snapshot := b.Cells()
	b.ResolveSafe(Cell{0, 1})
	assert.Len(t, snapshot, 2, "Cells must return a copy")
}

func TestSentenceString(t *testing.T) {
	t.Parallel()

	s := NewSentence([]Cell{{1, 0}, {0, 2}}, 1)
	assert.Equal(t, "{(0, 2), (1, 0)} = 1", s.String())
}
