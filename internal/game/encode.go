package game

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/sweep"
)

/*
Only the board and the move log are serialized. Inference is
deterministic, so the knowledge base is rebuilt on decode by replaying
every recorded observation.
*/
type snapshot struct {
	Board  *board.Board
	Moves  []Move
	Status Status
}

func (g Game) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(snapshot{
		Board:  g.Board,
		Moves:  g.Moves,
		Status: g.Status,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Decode(buf []byte) (*Game, error) {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&snap); err != nil {
		return nil, err
	}

	g := &Game{
		Board:     snap.Board,
		Knowledge: sweep.NewKnowledge(snap.Board.Width, snap.Board.Height),
		Moves:     snap.Moves,
		Status:    snap.Status,
	}
	for _, m := range snap.Moves {
		if m.Mine {
			continue
		}
		if err := g.Knowledge.AddObservation(m.Cell, m.Count); err != nil {
			return nil, fmt.Errorf("unable to replay move log: %w", err)
		}
	}
	return g, nil
}
