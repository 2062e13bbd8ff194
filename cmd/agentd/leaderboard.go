package main

import (
	"log/slog"
	"net/http"
)

func (app application) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	leaderboard, err := app.repo.GetLeaderboard(r.Context())
	if err != nil {
		app.internalError(w, "unable to fetch leaderboard", slog.Any("error", err))
		return
	}
	app.replyWith(w, leaderboard)
}
