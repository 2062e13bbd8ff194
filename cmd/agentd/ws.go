package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

type wsCommand string

const (
	wsNoop wsCommand = "g"
	wsStep wsCommand = "s"
	wsAuto wsCommand = "a"
	wsQuit wsCommand = "q"
)

type runExecutor struct {
	*application
	game *game.Game
	run  *repository.SolveRun
}

func (e runExecutor) step(ctx context.Context, conn *websocket.Conn) error {
	move, err := e.game.Step(e.rnd)
	if err != nil {
		return err
	}
	return conn.WriteJSON(NewMoveFrame(e.game, move))
}

func (e runExecutor) execute(
	ctx context.Context, conn *websocket.Conn, query string,
) (done bool, err error) {
	switch wsCommand(query) {
	case wsNoop:
		return false, nil
	case wsStep:
		if e.game.Status != game.Playing {
			return true, nil
		}
		return false, e.step(ctx, conn)
	case wsAuto:
		for e.game.Status == game.Playing {
			if err := e.step(ctx, conn); err != nil {
				return false, err
			}
		}
		return false, nil
	case wsQuit:
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", query)
	}
}

func (e runExecutor) runLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		done, err := e.execute(ctx, conn, strings.TrimSpace(string(buf)))
		if err != nil {
			return err
		}

		if _, err := e.repo.SaveProgress(ctx, e.run, e.game); err != nil {
			return fmt.Errorf("unable to update solve run: %w", err)
		}

		if done || e.game.Status != game.Playing {
			return conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
		}
	}
}

func (app application) wsWatch(w http.ResponseWriter, r *http.Request) {
	run, g, ok := app.fetchGame(w, r)
	if !ok {
		return
	}

	conn, err := app.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		app.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	app.logger.Debug("established WS connection")

	executor := runExecutor{application: &app, game: g, run: run}
	if err := executor.runLoop(r.Context(), conn); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			app.logger.Warn("error in ws loop", slog.Any("error", err))
		}
	}
}
