package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/sweep"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "9x9(10)", params: Params{Width: 9, Height: 9, MineCount: 10}},
		{name: "30x16(99)", params: Params{Width: 30, Height: 16, MineCount: 99}},
		{name: "zero mines", params: Params{Width: 3, Height: 3, MineCount: 0}},
		{
			name:    "no safe cell left",
			params:  Params{Width: 2, Height: 2, MineCount: 4},
			wantErr: ErrTooManyMines,
		},
		{
			name:    "zero width",
			params:  Params{Width: 0, Height: 5, MineCount: 1},
			wantErr: ErrBadDimensions,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			b, err := New(test.params, r)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)

			placed := 0
			for _, mine := range b.Grid {
				if mine {
					placed++
				}
			}
			assert.Equal(t, test.params.MineCount, placed)
			assert.Len(t, b.MineCells(), test.params.MineCount)
		})
	}
}

func TestNeighborMineCount(t *testing.T) {
	t.Parallel()

	// X . .
	// . . .
	// . X X
	b := &Board{
		Params: Params{Width: 3, Height: 3, MineCount: 3},
		Grid: []bool{
			true, false, false,
			false, false, false,
			false, true, true,
		},
	}

	tests := []struct {
		cell sweep.Cell
		want int
	}{
		{sweep.Cell{Row: 0, Col: 1}, 1},
		{sweep.Cell{Row: 1, Col: 1}, 3},
		{sweep.Cell{Row: 0, Col: 0}, 0}, // the cell itself never counts
		{sweep.Cell{Row: 2, Col: 0}, 1},
		{sweep.Cell{Row: 1, Col: 2}, 2},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, b.NeighborMineCount(test.cell), "cell %s", test.cell)
	}
}

func TestBoardRoundtrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	b, err := New(Params{Width: 9, Height: 9, MineCount: 10}, r)
	require.NoError(t, err)

	buf, err := b.Bytes()
	require.NoError(t, err)

	decoded, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
}

func TestRender(t *testing.T) {
	t.Parallel()

	b := &Board{
		Params: Params{Width: 2, Height: 1, MineCount: 1},
		Grid:   []bool{true, false},
	}
	assert.Equal(t, "-----\n|X| |\n-----\n", b.Render())
}
