package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/sweep"
)

func singleMineGame(t *testing.T) *Game {
	t.Helper()
	b := &board.Board{
		Params: board.Params{Width: 3, Height: 3, MineCount: 1},
		Grid: []bool{
			true, false, false,
			false, false, false,
			false, false, false,
		},
	}
	return &Game{Board: b, Knowledge: sweep.NewKnowledge(3, 3)}
}

func TestPlaySingleMine(t *testing.T) {
	t.Parallel()

	for seed := range uint64(20) {
		r := rand.New(rand.NewPCG(seed, seed+1))
		g := singleMineGame(t)

		status, err := g.Play(r)
		require.NoError(t, err)
		require.NotEqual(t, Playing, status)

		switch status {
		case Won:
			assert.Len(t, g.Moves, 8, "a won game opens every safe cell")
			assert.True(t, g.AllMinesDeduced())
		case Lost:
			last := g.Moves[len(g.Moves)-1]
			assert.True(t, last.Mine)
			assert.True(t, last.Guessed, "a deduced move can never hit a mine")
		}

		for _, c := range g.Knowledge.KnownMines() {
			assert.True(t, g.Board.IsMine(c))
		}
		for _, c := range g.Knowledge.KnownSafes() {
			assert.False(t, g.Board.IsMine(c))
		}
	}
}

func TestPlayMinelessBoard(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	g, err := New(board.Params{Width: 4, Height: 4, MineCount: 0}, r)
	require.NoError(t, err)

	status, err := g.Play(r)
	require.NoError(t, err)
	assert.Equal(t, Won, status)
	assert.Equal(t, 1, g.GuessCount(), "only the opening move is a guess")
}

func TestStepAfterFinish(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	g, err := New(board.Params{Width: 2, Height: 2, MineCount: 0}, r)
	require.NoError(t, err)

	_, err = g.Play(r)
	require.NoError(t, err)

	_, err = g.Step(r)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestStateRoundtrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	g := singleMineGame(t)
	for range 3 {
		if g.Status != Playing {
			break
		}
		_, err := g.Step(r)
		require.NoError(t, err)
	}

	buf, err := g.Bytes()
	require.NoError(t, err)

	decoded, err := Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, g.Board, decoded.Board)
	assert.Equal(t, g.Moves, decoded.Moves)
	assert.Equal(t, g.Status, decoded.Status)
	assert.Equal(t, g.Knowledge.KnownMines(), decoded.Knowledge.KnownMines())
	assert.Equal(t, g.Knowledge.KnownSafes(), decoded.Knowledge.KnownSafes())
	assert.Equal(t, g.Knowledge.Moves(), decoded.Knowledge.Moves())
}

func TestRenderShowsDeductions(t *testing.T) {
	t.Parallel()

	g := singleMineGame(t)
	require.NoError(t, g.Knowledge.AddObservation(sweep.Cell{Row: 2, Col: 2}, 0))
	g.Moves = append(g.Moves, Move{Cell: sweep.Cell{Row: 2, Col: 2}, Count: 0, Guessed: true})

	view := g.Render()
	assert.Contains(t, view, "|0|")
}
