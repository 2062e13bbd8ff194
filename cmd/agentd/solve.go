package main

import (
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-agent/internal/game"
)

func (app application) handleSolve(w http.ResponseWriter, r *http.Request) {
	run, g, ok := app.fetchGame(w, r)
	if !ok {
		return
	}
	if g.Status != game.Playing {
		app.conflict(w, "run is already finished")
		return
	}

	if _, err := g.Play(app.rnd); err != nil {
		app.internalError(w, "agent play failed", slog.Any("error", err))
		return
	}

	updated, err := app.repo.SaveProgress(r.Context(), run, g)
	if err != nil {
		app.internalError(w, "unable to update solve run", slog.Any("error", err))
		return
	}

	dto, err := NewSolveRunDTO(*updated)
	if err != nil {
		app.internalError(w, "failed to create solve run dto", slog.Any("error", err))
		return
	}
	app.replyWith(w, dto)
}
