package board

import "fmt"

// Score is a signed two-phase evaluation pair in centipawns, positive favoring
// White. The opening and endgame components are accumulated together and
// blended by game phase only at the very end of evaluation.
type Score struct {
	MG, EG int32
}

// S is shorthand for constructing a two-phase score.
func S(mg, eg int32) Score {
	return Score{MG: mg, EG: eg}
}

func (s Score) Add(o Score) Score {
	return Score{MG: s.MG + o.MG, EG: s.EG + o.EG}
}

func (s Score) Sub(o Score) Score {
	return Score{MG: s.MG - o.MG, EG: s.EG - o.EG}
}

func (s Score) Neg() Score {
	return Score{MG: -s.MG, EG: -s.EG}
}

func (s Score) String() string {
	return fmt.Sprintf("(%v, %v)", s.MG, s.EG)
}
