package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/sweep"
)

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "invalid"
	}
}

// Move is one turn of the agent: the cell it opened, whether it had to
// guess, and what the board answered.
type Move struct {
	Cell    sweep.Cell `json:"cell"`
	Guessed bool       `json:"guessed"`
	Count   int        `json:"count"`
	Mine    bool       `json:"mine"`
}

var (
	ErrFinished = errors.New("game is already finished")
	ErrNoMoves  = errors.New("no cells left to play")
)

/*
Game is one self-playing session: a board oracle, the knowledge the
agent accumulates about it, and the move log. The agent only ever
learns about the board through neighbor mine counts; IsMine is
consulted once per move, to settle what the opened cell turned out
to be.
*/
type Game struct {
	Board     *board.Board
	Knowledge *sweep.Knowledge
	Moves     []Move
	Status    Status
}

func New(params board.Params, r *rand.Rand) (*Game, error) {
	b, err := board.New(params, r)
	if err != nil {
		return nil, err
	}
	return &Game{
		Board:     b,
		Knowledge: sweep.NewKnowledge(params.Width, params.Height),
	}, nil
}

/*
Step plays one turn: a cell proven safe when there is one, otherwise a
uniformly random cell that is not a proven mine. Opening a mine loses
the game; opening the last safe cell wins it.
*/
func (g *Game) Step(r *rand.Rand) (Move, error) {
	if g.Status != Playing {
		return Move{}, ErrFinished
	}

	cell, ok := g.Knowledge.SafeMove()
	guessed := false
	if !ok {
		if cell, ok = g.Knowledge.RandomMove(r); !ok {
			return Move{}, ErrNoMoves
		}
		guessed = true
	}

	move := Move{Cell: cell, Guessed: guessed}
	if g.Board.IsMine(cell) {
		move.Mine = true
		g.Status = Lost
		g.Moves = append(g.Moves, move)
		return move, nil
	}

	move.Count = g.Board.NeighborMineCount(cell)
	if err := g.Knowledge.AddObservation(cell, move.Count); err != nil {
		return move, fmt.Errorf("unable to record observation: %w", err)
	}
	g.Moves = append(g.Moves, move)

	if g.opened() == g.Board.CellCount()-g.Board.MineCount {
		g.Status = Won
	}
	return move, nil
}

// Play runs the session to completion.
func (g *Game) Play(r *rand.Rand) (Status, error) {
	for g.Status == Playing {
		if _, err := g.Step(r); err != nil {
			return g.Status, err
		}
	}
	return g.Status, nil
}

func (g Game) opened() (count int) {
	for _, m := range g.Moves {
		if !m.Mine {
			count++
		}
	}
	return count
}

// GuessCount reports how many moves were random rather than deduced.
func (g Game) GuessCount() (count int) {
	for _, m := range g.Moves {
		if m.Guessed {
			count++
		}
	}
	return count
}

// AllMinesDeduced reports whether the agent has pinned every real mine.
func (g Game) AllMinesDeduced() bool {
	return slices.Equal(g.Knowledge.KnownMines(), g.Board.MineCells())
}

/*
Render draws the agent's view of the board: opened cells show their
neighbor mine count, deduced mines show a flag, the exploded cell (if
any) shows a bang.
*/
func (g Game) Render() string {
	counts := make(map[sweep.Cell]int, len(g.Moves))
	var exploded *sweep.Cell
	for _, m := range g.Moves {
		if m.Mine {
			c := m.Cell
			exploded = &c
		} else {
			counts[m.Cell] = m.Count
		}
	}

	var sb strings.Builder
	rule := strings.Repeat("--", g.Board.Width) + "-\n"
	for row := range g.Board.Height {
		sb.WriteString(rule)
		for col := range g.Board.Width {
			cell := sweep.Cell{Row: row, Col: col}
			sb.WriteByte('|')
			switch {
			case exploded != nil && cell == *exploded:
				sb.WriteByte('!')
			case g.Knowledge.IsMine(cell):
				sb.WriteByte('*')
			default:
				if count, ok := counts[cell]; ok {
					sb.WriteString(strconv.Itoa(count))
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}
