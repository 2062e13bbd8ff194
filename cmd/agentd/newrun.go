package main

import (
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

func (app application) handleNewRun(w http.ResponseWriter, r *http.Request) {
	params, err := decodeBoardParams(r.URL.Query())
	if err != nil {
		app.badRequest(w, err.Error())
		return
	}

	g, err := game.New(params, app.rnd)
	if err != nil {
		app.internalError(w, "unable to create a new game", slog.Any("error", err))
		return
	}

	run, err := app.repo.CreateSolveRun(r.Context(), g, repository.CreateSolveRunParams{
		PlayerId: app.getAuthenticatedPlayerId(r),
	})
	if err != nil {
		app.internalError(w, "failed to create solve run", slog.Any("error", err))
		return
	}

	dto, err := NewSolveRunDTO(*run)
	if err != nil {
		app.internalError(w, "failed to create solve run dto", slog.Any("error", err))
		return
	}
	app.replyWith(w, dto)
}
