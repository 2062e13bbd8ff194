package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

// fetchGame loads a solve run and revives its game state, writing the
// appropriate error response on failure.
func (app application) fetchGame(
	w http.ResponseWriter, r *http.Request,
) (*repository.SolveRun, *game.Game, bool) {
	solveRunId, err := app.getSolveRunId(r)
	if err != nil {
		app.badRequest(w, "invalid run id")
		return nil, nil, false
	}

	run, err := app.repo.FetchSolveRun(r.Context(), solveRunId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			app.notFound(w)
		} else {
			app.internalError(w, "could not fetch solve run", slog.Any("error", err))
		}
		return nil, nil, false
	}

	g, err := game.Decode(run.State)
	if err != nil {
		app.internalError(w, "solve run state invalid", slog.Any("error", err))
		return nil, nil, false
	}
	return run, g, true
}

func (app application) handleStep(w http.ResponseWriter, r *http.Request) {
	run, g, ok := app.fetchGame(w, r)
	if !ok {
		return
	}
	if g.Status != game.Playing {
		app.conflict(w, "run is already finished")
		return
	}

	move, err := g.Step(app.rnd)
	if err != nil {
		app.internalError(w, "agent step failed", slog.Any("error", err))
		return
	}

	if _, err := app.repo.SaveProgress(r.Context(), run, g); err != nil {
		app.internalError(w, "unable to update solve run", slog.Any("error", err))
		return
	}

	app.replyWith(w, NewMoveFrame(g, move))
}
