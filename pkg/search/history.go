package search

import "github.com/zarya-chess/zarya/pkg/board"

// History is a 64x64 butterfly table of quiet-move scores with a saturating
// gravity update: repeated bonuses converge toward the gravity constant
// instead of growing without bound. Declared for move ordering but not
// consulted by the current search.
type History struct {
	table   [board.NumSquares][board.NumSquares]int32
	gravity int32
}

func NewHistory(gravity int32) *History {
	return &History{gravity: gravity}
}

// Get returns the history score of the from/to square pair.
func (h *History) Get(from, to board.Square) int32 {
	return h.table[from][to]
}

// Update rewards the move that caused a cutoff at the given depth and
// penalizes the quiet moves searched before it.
func (h *History) Update(from, to board.Square, depth int, badQuiets []board.Move) {
	bonus := int32(depth * depth)

	h.bump(from, to, bonus)
	for _, m := range badQuiets {
		h.bump(m.From(), m.To(), -bonus)
	}
}

// Clear resets all scores.
func (h *History) Clear() {
	h.table = [board.NumSquares][board.NumSquares]int32{}
}

func (h *History) bump(from, to board.Square, bonus int32) {
	score := h.table[from][to]
	h.table[from][to] = score + bonus - score*abs32(bonus)/h.gravity
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
