package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/minesweeper-agent/internal/game"
)

type SolveRun struct {
	SolveRunId int64
	PlayerId   *int64
	Width      int
	Height     int
	MineCount  int
	Status     string
	MoveCount  int
	GuessCount int
	State      []byte
	StartedAt  pgtype.Timestamptz
	EndedAt    pgtype.Timestamptz
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type CreateSolveRunParams struct {
	PlayerId *int64
}

func (q Queries) CreateSolveRun(
	ctx context.Context, g *game.Game, params CreateSolveRunParams,
) (*SolveRun, error) {
	state, err := g.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"player_id":   params.PlayerId, // nil inserts NULL
		"width":       g.Board.Width,
		"height":      g.Board.Height,
		"mine_count":  g.Board.MineCount,
		"status":      g.Status.String(),
		"move_count":  len(g.Moves),
		"guess_count": g.GuessCount(),
		"state":       state,
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_run (
			player_id, width, height, mine_count, status,
			move_count, guess_count, state
		)
		VALUES (
			@player_id, @width, @height, @mine_count, @status,
			@move_count, @guess_count, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRun])
}

func (q Queries) FetchSolveRun(ctx context.Context, solveRunId int64) (*SolveRun, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM solve_run WHERE solve_run_id = $1", solveRunId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRun])
}

type UpdateSolveRunParams struct {
	Status     *string
	MoveCount  *int
	GuessCount *int
	State      *[]byte
	EndedAt    *time.Time
}

func (p UpdateSolveRunParams) SetClause() (string, pgx.NamedArgs) {
	parts := make([]string, 0)
	args := pgx.NamedArgs{}

	if p.Status != nil {
		parts = append(parts, "status = @status")
		args["status"] = *p.Status
	}
	if p.MoveCount != nil {
		parts = append(parts, "move_count = @move_count")
		args["move_count"] = *p.MoveCount
	}
	if p.GuessCount != nil {
		parts = append(parts, "guess_count = @guess_count")
		args["guess_count"] = *p.GuessCount
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	parts = append(parts, "updated_at = now()")

	return strings.Join(parts, ", "), args
}

func (q Queries) UpdateSolveRun(
	ctx context.Context, solveRunId int64, params UpdateSolveRunParams,
) (*SolveRun, error) {
	setClause, args := params.SetClause()
	args["solve_run_id"] = solveRunId

	rows, _ := q.db.Query(
		ctx,
		"UPDATE solve_run SET "+setClause+
			" WHERE solve_run_id = @solve_run_id RETURNING *;",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRun])
}

// SaveProgress persists the current state of a run after the agent has
// made moves.
func (q Queries) SaveProgress(
	ctx context.Context, run *SolveRun, g *game.Game,
) (*SolveRun, error) {
	state, err := g.Bytes()
	if err != nil {
		return nil, err
	}
	status := g.Status.String()
	moveCount := len(g.Moves)
	guessCount := g.GuessCount()

	params := UpdateSolveRunParams{
		Status:     &status,
		MoveCount:  &moveCount,
		GuessCount: &guessCount,
		State:      &state,
	}
	if g.Status != game.Playing {
		now := time.Now().UTC()
		params.EndedAt = &now
	}
	return q.UpdateSolveRun(ctx, run.SolveRunId, params)
}
