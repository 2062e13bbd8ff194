package sweep

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeMove(t *testing.T) {
	t.Parallel()

	k := NewKnowledge(3, 3)

	_, ok := k.SafeMove()
	assert.False(t, ok, "no safe cells known yet")

	require.NoError(t, k.AddObservation(Cell{2, 2}, 0))

	cell, ok := k.SafeMove()
	require.True(t, ok)
	assert.True(t, k.IsSafe(cell))
	assert.False(t, k.Played(cell))

	// exhaust the known safes
	for {
		cell, ok := k.SafeMove()
		if !ok {
			break
		}
		k.moves[cell] = void{}
	}
	_, ok = k.SafeMove()
	assert.False(t, ok)
}

func TestSafeMoveDoesNotMutate(t *testing.T) {
	t.Parallel()

	k := NewKnowledge(3, 3)
	require.NoError(t, k.AddObservation(Cell{2, 2}, 0))

	moves, mines, safes := len(k.moves), len(k.mines), len(k.safes)
	k.SafeMove()
	assert.Equal(t, moves, len(k.moves))
	assert.Equal(t, mines, len(k.mines))
	assert.Equal(t, safes, len(k.safes))
}

func TestRandomMoveExclusion(t *testing.T) {
	t.Parallel()

	k := NewKnowledge(3, 3)
	require.NoError(t, k.AddObservation(Cell{1, 1}, 3))
	k.MarkMine(Cell{0, 0})

	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		cell, ok := k.RandomMove(r)
		require.True(t, ok)
		assert.False(t, k.Played(cell), "random move returned a played cell")
		assert.False(t, k.IsMine(cell), "random move returned a known mine")
	}
}

func TestRandomMoveExhausted(t *testing.T) {
	t.Parallel()

	k := NewKnowledge(2, 1)
	k.MarkMine(Cell{0, 0})
	require.NoError(t, k.AddObservation(Cell{0, 1}, 1))

	r := rand.New(rand.NewPCG(1, 2))
	_, ok := k.RandomMove(r)
	assert.False(t, ok)
}
