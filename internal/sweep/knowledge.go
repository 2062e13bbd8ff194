package sweep

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gammazero/deque"
)

var Log *slog.Logger = slog.Default()

var (
	ErrOutOfBounds = errors.New("cell is out of bounds")
	ErrCellPlayed  = errors.New("cell has already been played")
	ErrMineCell    = errors.New("cell is a known mine")
	ErrBadCount    = errors.New("count must be between 0 and 8")
)

/*
Knowledge is everything the agent has learned about one board: the
sentences still in play, plus the cells proven to be mines, proven to
be safe, and already played. It is owned by a single game session and
is never shared between goroutines.

Sentences are held with no structural duplicates, and a cell marked as
mine or safe is immediately resolved out of every sentence, so no
sentence ever mentions a settled cell.
*/
type Knowledge struct {
	width, height int
	sentences     []*Sentence
	mines         map[Cell]void
	safes         map[Cell]void
	moves         map[Cell]void
}

func NewKnowledge(width, height int) *Knowledge {
	return &Knowledge{
		width:  width,
		height: height,
		mines:  make(map[Cell]void),
		safes:  make(map[Cell]void),
		moves:  make(map[Cell]void),
	}
}

func (k Knowledge) Width() int  { return k.width }
func (k Knowledge) Height() int { return k.height }

func (k Knowledge) inBounds(c Cell) bool {
	return 0 <= c.Row && c.Row < k.height && 0 <= c.Col && c.Col < k.width
}

// Neighbors returns the grid-adjacent cells of c that lie in bounds,
// excluding c itself. Out-of-bounds coordinates are filtered silently.
func (k Knowledge) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{Row: row, Col: col}
			if n != c && k.inBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

/*
MarkMine records that cell is a mine and resolves it out of every
sentence. Idempotent; reports whether the cell was newly marked.

panics [AssertionError] when cell is already proven safe
*/
func (k *Knowledge) MarkMine(cell Cell) bool {
	if _, ok := k.mines[cell]; ok {
		return false
	}
	if _, ok := k.safes[cell]; ok {
		panic(AssertionError{fmt.Sprintf(
			"cell %s marked as mine but already proven safe", cell,
		)})
	}
	k.mines[cell] = void{}
	for _, s := range k.sentences {
		s.ResolveMine(cell)
	}
	return true
}

/*
MarkSafe records that cell is not a mine and resolves it out of every
sentence. Idempotent; reports whether the cell was newly marked.

panics [AssertionError] when cell is already proven a mine
*/
func (k *Knowledge) MarkSafe(cell Cell) bool {
	if _, ok := k.safes[cell]; ok {
		return false
	}
	if _, ok := k.mines[cell]; ok {
		panic(AssertionError{fmt.Sprintf(
			"cell %s marked as safe but already proven a mine", cell,
		)})
	}
	k.safes[cell] = void{}
	for _, s := range k.sentences {
		s.ResolveSafe(cell)
	}
	return true
}

/*
AddObservation feeds the agent one board reveal: cell was opened and
has count mines among its in-bounds neighbors. It records the move,
builds a sentence from the still-unresolved neighbors and runs
deduction to fixpoint.

Malformed input is rejected with a wrapped sentinel error before any
state changes. An internal consistency fault surfaces as
[AssertionError].
*/
func (k *Knowledge) AddObservation(cell Cell, count int) (err error) {
	if !k.inBounds(cell) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, cell)
	}
	if count < 0 || count > 8 {
		return fmt.Errorf("%w, got %d", ErrBadCount, count)
	}
	if _, ok := k.moves[cell]; ok {
		return fmt.Errorf("%w: %s", ErrCellPlayed, cell)
	}
	if _, ok := k.mines[cell]; ok {
		return fmt.Errorf("%w: %s", ErrMineCell, cell)
	}

	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				err = ae
				return
			}
			panic(r)
		}
	}()

	k.moves[cell] = void{}
	k.MarkSafe(cell)

	/*
	 * Neighbors already settled contribute certain information, not
	 * probabilistic: a known mine lowers the count and leaves the
	 * set, a known safe just leaves the set.
	 */
	neighbors := make([]Cell, 0, 8)
	for _, n := range k.Neighbors(cell) {
		if _, ok := k.mines[n]; ok {
			count--
			continue
		}
		if _, ok := k.safes[n]; ok {
			continue
		}
		neighbors = append(neighbors, n)
	}

	if added := k.addSentence(NewSentence(neighbors, count)); added {
		Log.Debug("observation recorded",
			slog.String("cell", cell.String()),
			slog.Int("count", count),
		)
	}

	k.infer()
	return nil
}

// addSentence appends s unless it is empty or a structurally equal
// sentence is already held.
func (k *Knowledge) addSentence(s *Sentence) bool {
	if s.Size() == 0 {
		return false
	}
	for _, held := range k.sentences {
		if held.Equal(s) {
			return false
		}
	}
	k.sentences = append(k.sentences, s)
	return true
}

/*
infer runs extraction, pruning and subset derivation until a full
round changes neither the mine/safe sets nor the sentence collection.
This is the fixpoint variant of the procedure: one round per
observation would be sound but can leave conclusions for a later turn.
*/
func (k *Knowledge) infer() {
	for {
		changed := k.propagate()
		k.prune()
		if k.deriveSubsets() {
			changed = true
		}
		if !changed {
			return
		}
	}
}

type conclusion struct {
	cell Cell
	mine bool
}

/*
propagate extracts every certain conclusion the current sentences
support and feeds each one back through MarkMine/MarkSafe.

Marking mutates the very sentences being inspected, so each round
first collects conclusions from snapshots of all sentences into a
queue and only then applies them. Rounds repeat until one of them
marks nothing new: a single pass can miss conclusions unlocked by
marks made later in the same pass.
*/
func (k *Knowledge) propagate() (changed bool) {
	var pending deque.Deque[conclusion]
	for {
		for _, s := range k.sentences {
			for _, c := range s.KnownMines() {
				pending.PushBack(conclusion{cell: c, mine: true})
			}
			for _, c := range s.KnownSafes() {
				pending.PushBack(conclusion{cell: c, mine: false})
			}
		}

		progress := false
		for pending.Len() > 0 {
			c := pending.PopFront()
			if c.mine {
				if k.MarkMine(c.cell) {
					progress = true
				}
			} else if k.MarkSafe(c.cell) {
				progress = true
			}
		}
		if !progress {
			return changed
		}
		changed = true
	}
}

// prune drops every sentence whose cell set has been emptied by
// resolution, along with sentences that resolution has made
// structurally equal to an earlier one. An emptied sentence still
// claiming mines means the bookkeeping is broken.
//
// panics [AssertionError]
func (k *Knowledge) prune() {
	kept := k.sentences[:0]
	for _, s := range k.sentences {
		if s.Size() == 0 {
			if s.Count() != 0 {
				panic(AssertionError{fmt.Sprintf(
					"empty sentence claims %d mines", s.Count(),
				)})
			}
			continue
		}
		duplicate := false
		for _, h := range kept {
			if h.Equal(s) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, s)
		}
	}
	clear(k.sentences[len(kept):])
	k.sentences = kept
}

/*
deriveSubsets applies the subset rule to every ordered pair of held
sentences: when A's cells are a strict subset of B's, B−A with count
B.count−A.count is itself a valid sentence. Derived sentences are
collected first and appended after the scan, skipping structural
duplicates.
*/
func (k *Knowledge) deriveSubsets() (added bool) {
	var derived []*Sentence
	for _, a := range k.sentences {
		for _, b := range k.sentences {
			if a == b || !a.ProperSubsetOf(b) {
				continue
			}
			derived = append(derived, b.Minus(a))
		}
	}
	for _, s := range derived {
		if k.addSentence(s) {
			added = true
		}
	}
	return added
}

// KnownMines returns a copy of the set of cells proven to be mines.
func (k Knowledge) KnownMines() []Cell {
	return sortCells(copyCells(k.mines))
}

// KnownSafes returns a copy of the set of cells proven safe.
func (k Knowledge) KnownSafes() []Cell {
	return sortCells(copyCells(k.safes))
}

// Moves returns a copy of the set of cells already played.
func (k Knowledge) Moves() []Cell {
	return sortCells(copyCells(k.moves))
}

func (k Knowledge) IsMine(c Cell) bool {
	_, ok := k.mines[c]
	return ok
}

func (k Knowledge) IsSafe(c Cell) bool {
	_, ok := k.safes[c]
	return ok
}

func (k Knowledge) Played(c Cell) bool {
	_, ok := k.moves[c]
	return ok
}

// SentenceCount reports how many sentences are currently held.
func (k Knowledge) SentenceCount() int {
	return len(k.sentences)
}

func copyCells(set map[Cell]void) []Cell {
	cells := make([]Cell, 0, len(set))
	for c := range set {
		cells = append(cells, c)
	}
	return cells
}
