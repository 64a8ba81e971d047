package board

import "fmt"

// MaxMoves is the documented worst-case bound on the number of moves in any
// legal chess position. The true maximum is 218.
const MaxMoves = 256

// MoveList is a bounded move sequence backed by a fixed array, so that move
// generation performs no allocation.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Push appends the move to the end of the list.
func (l *MoveList) Push(m Move) {
	l.moves[l.n] = m
	l.n++
}

func (l *MoveList) Len() int {
	return l.n
}

// At returns the i'th move.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Moves returns the populated prefix of the backing array. The slice aliases
// the list and is invalidated by further Push calls.
func (l *MoveList) Moves() []Move {
	return l.moves[:l.n]
}

// Swap exchanges the moves at i and j.
func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
}

func (l *MoveList) String() string {
	return fmt.Sprintf("[%v]", PrintMoves(l.Moves()))
}
