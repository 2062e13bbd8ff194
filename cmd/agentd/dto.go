package main

import (
	"net/url"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func decodeBoardParams(query url.Values) (board.Params, error) {
	var params board.Params
	if err := decoder.Decode(&params, query); err != nil {
		return params, err
	}
	return params, params.Validate()
}

type SolveRunDTO struct {
	SolveRunId int64        `json:"solve_run_id"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	MineCount  int          `json:"mine_count"`
	Status     string       `json:"status"`
	MoveCount  int          `json:"move_count"`
	GuessCount int          `json:"guess_count"`
	Moves      []game.Move  `json:"moves"`
	StartedAt  time.Time    `json:"started_at"`
	EndedAt    *time.Time   `json:"ended_at,omitempty"`
}

func NewSolveRunDTO(run repository.SolveRun) (*SolveRunDTO, error) {
	g, err := game.Decode(run.State)
	if err != nil {
		return nil, err
	}
	dto := &SolveRunDTO{
		SolveRunId: run.SolveRunId,
		Width:      run.Width,
		Height:     run.Height,
		MineCount:  run.MineCount,
		Status:     run.Status,
		MoveCount:  run.MoveCount,
		GuessCount: run.GuessCount,
		Moves:      g.Moves,
		StartedAt:  run.StartedAt.Time,
	}
	if run.EndedAt.Valid {
		endedAt := run.EndedAt.Time
		dto.EndedAt = &endedAt
	}
	return dto, nil
}

// MoveFrame is one websocket message: the move just played and where
// it left the game.
type MoveFrame struct {
	Move       game.Move `json:"move"`
	Status     string    `json:"status"`
	MoveCount  int       `json:"move_count"`
	GuessCount int       `json:"guess_count"`
}

func NewMoveFrame(g *game.Game, move game.Move) MoveFrame {
	return MoveFrame{
		Move:       move,
		Status:     g.Status.String(),
		MoveCount:  len(g.Moves),
		GuessCount: g.GuessCount(),
	}
}
