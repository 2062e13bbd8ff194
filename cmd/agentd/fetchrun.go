package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5"
)

func (app application) handleFetchRun(w http.ResponseWriter, r *http.Request) {
	solveRunId, err := app.getSolveRunId(r)
	if err != nil {
		app.badRequest(w, "invalid run id")
		return
	}

	run, err := app.repo.FetchSolveRun(r.Context(), solveRunId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			app.notFound(w)
		} else {
			app.internalError(w, "could not fetch solve run", slog.Any("error", err))
		}
		return
	}

	dto, err := NewSolveRunDTO(*run)
	if err != nil {
		app.internalError(w, "solve run state invalid", slog.Any("error", err))
		return
	}
	app.replyWith(w, dto)
}
