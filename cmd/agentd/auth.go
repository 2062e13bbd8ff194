package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

func credentials(r *http.Request) (username, password string, ok bool) {
	if err := r.ParseForm(); err != nil {
		return "", "", false
	}
	username = r.FormValue("username")
	password = r.FormValue("password")
	if username == "" || password == "" || len(password) > 72 {
		return "", "", false
	}
	return username, password, true
}

func (app application) handleRegister(w http.ResponseWriter, r *http.Request) {
	username, password, ok := credentials(r)
	if !ok {
		app.badRequest(w, "username and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		app.internalError(w, "unable to hash password", slog.Any("error", err))
		return
	}

	player, err := app.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			app.conflict(w, "username taken")
			return
		}
		app.internalError(w, "unable to insert player", slog.Any("error", err))
		return
	}

	app.refreshAuth(w, player)
}

func (app application) handleLogin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := credentials(r)
	if !ok {
		app.badRequest(w, "username and password are required")
		return
	}

	player, err := app.repo.FetchPlayer(r.Context(), username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			app.unauthorized(w)
			return
		}
		app.internalError(w, "unable to fetch player", slog.Any("error", err))
		return
	}

	err = bcrypt.CompareHashAndPassword(player.PasswordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			app.unauthorized(w)
			return
		}
		app.internalError(w, "bcrypt compare error", slog.Any("error", err))
		return
	}

	app.refreshAuth(w, player)
}

func (app application) handleLogout(w http.ResponseWriter, r *http.Request) {
	app.cookies.Clear(w)
	app.replyWith(w, "ok")
}

func (app application) refreshAuth(w http.ResponseWriter, player *repository.Player) {
	token, err := app.jwt.Sign(
		config.NewPlayerClaims(player.PlayerId, player.Username),
	)
	if err != nil {
		app.internalError(w, "unable to create a jwt token", slog.Any("error", err))
		return
	}
	if err := app.cookies.Refresh(w, token); err != nil {
		app.internalError(w, "failed to set auth cookies", slog.Any("error", err))
		return
	}
	app.replyWith(w, "ok")
}
