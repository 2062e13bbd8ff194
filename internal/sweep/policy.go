package sweep

import "math/rand/v2"

/*
SafeMove returns a cell proven safe that has not been played yet.
Which one is unspecified: any safe cell is as good as another.
Reads knowledge only, never mutates it.
*/
func (k Knowledge) SafeMove() (Cell, bool) {
	for c := range k.safes {
		if _, ok := k.moves[c]; !ok {
			return c, true
		}
	}
	return Cell{}, false
}

/*
RandomMove returns a uniformly chosen cell among those not yet played
and not proven to be mines, or false when no such cell remains.
Reads knowledge only, never mutates it.
*/
func (k Knowledge) RandomMove(r *rand.Rand) (Cell, bool) {
	candidates := make([]Cell, 0, k.width*k.height)
	for row := range k.height {
		for col := range k.width {
			c := Cell{Row: row, Col: col}
			if _, ok := k.moves[c]; ok {
				continue
			}
			if _, ok := k.mines[c]; ok {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[r.IntN(len(candidates))], true
}
