package board

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/sweep"
)

/*
Board is the ground truth of one game: the fixed mine layout. It
answers the two oracle queries the agent is allowed — bounds and
neighbor mine counts — plus IsMine, which is reserved for scoring and
tests and never consulted by the inference engine.
*/
type Board struct {
	Params
	Grid []bool /* real mine points, row-major */
}

// New places MineCount mines uniformly at random.
func New(params Params, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		Params: params,
		Grid:   make([]bool, params.CellCount()),
	}
	placed := 0
	for placed != params.MineCount {
		i := r.IntN(len(b.Grid))
		if !b.Grid[i] {
			b.Grid[i] = true
			placed++
		}
	}
	return b, nil
}

func Decode(buf []byte) (*Board, error) {
	var b Board
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (b Board) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(b)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b Board) InBounds(c sweep.Cell) bool {
	return 0 <= c.Row && c.Row < b.Height && 0 <= c.Col && c.Col < b.Width
}

func (b Board) IsMine(c sweep.Cell) bool {
	return b.Grid[c.Row*b.Width+c.Col]
}

// NeighborMineCount counts mines within one row and column of c, not
// including c itself. Out-of-bounds neighbors are skipped.
func (b Board) NeighborMineCount(c sweep.Cell) (count int) {
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := sweep.Cell{Row: row, Col: col}
			if n == c || !b.InBounds(n) {
				continue
			}
			if b.IsMine(n) {
				count++
			}
		}
	}
	return count
}

func (b Board) MineCells() []sweep.Cell {
	cells := make([]sweep.Cell, 0, b.MineCount)
	for i, mine := range b.Grid {
		if mine {
			cells = append(cells, sweep.Cell{Row: i / b.Width, Col: i % b.Width})
		}
	}
	return cells
}

// Render draws the mine layout as text, one X per mine.
func (b Board) Render() string {
	var sb strings.Builder
	rule := strings.Repeat("--", b.Width) + "-\n"
	for row := range b.Height {
		sb.WriteString(rule)
		for col := range b.Width {
			if b.Grid[row*b.Width+col] {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}
