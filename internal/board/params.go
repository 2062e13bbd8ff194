package board

import (
	"errors"
	"fmt"
)

type Params struct {
	Width     int `json:"width"      schema:"width,required"`
	Height    int `json:"height"     schema:"height,required"`
	MineCount int `json:"mine_count" schema:"mine_count,required"`
}

var (
	ErrBadDimensions = errors.New("board dimensions must be positive")
	ErrTooManyMines  = errors.New("mine count must leave at least one safe cell")
)

func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.CellCount() {
		return fmt.Errorf("%w: %d mines on %dx%d", ErrTooManyMines,
			p.MineCount, p.Width, p.Height)
	}
	return nil
}

func (p Params) CellCount() int {
	return p.Width * p.Height
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}
