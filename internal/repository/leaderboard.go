package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type LeaderboardRow struct {
	Username     string  `json:"username"`
	Runs         int64   `json:"runs"`
	Wins         int64   `json:"wins"`
	WinRate      float64 `json:"win_rate"`
	BestGuesses  *int64  `json:"best_guesses"`
	AvgMoveCount float64 `json:"avg_move_count"`
}

// GetLeaderboard ranks players by the win rate of their finished runs.
// BestGuesses is the fewest random moves any winning run needed: 1
// means a game solved by pure deduction after the opening guess.
func (q Queries) GetLeaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	rows, err := q.db.Query(
		ctx,
		`SELECT
			username,
			count(*) runs,
			count(*) FILTER (WHERE status = 'won') wins,
			count(*) FILTER (WHERE status = 'won')::float / count(*) win_rate,
			min(guess_count) FILTER (WHERE status = 'won') best_guesses,
			avg(move_count) avg_move_count
		FROM solve_run
			JOIN player USING (player_id)
		WHERE status <> 'playing'
		GROUP BY username
		ORDER BY win_rate DESC, wins DESC;`,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[LeaderboardRow])
}
