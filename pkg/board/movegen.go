package board

// Pseudo-legal move generation. Moves are geometrically legal for the moving
// piece and land on an empty square or an enemy piece; leaving one's own king
// in check is not filtered here but by MakeMove returning false.

// PseudoLegalMoves appends every pseudo-legal move for the side to move to the
// list. If capturesOnly, only moves that change material are emitted: captures,
// en passant and capture-promotions. Quiet promotions are not.
//
// Ordering within the list is unspecified; callers sort as needed.
func (p *Position) PseudoLegalMoves(l *MoveList, capturesOnly bool) {
	us := p.turn
	own := p.occupied[us]
	enemy := p.occupied[us.Opponent()]
	all := own | enemy

	p.pawnMoves(l, capturesOnly)

	for pt := Knight; pt <= King; pt++ {
		pc := NewPiece(us, pt)
		pieces := p.pieces[us][pt]
		for pieces != 0 {
			var from Square
			from, pieces = pieces.PopLSB()

			attacks := attacksFrom(pt, from, all) &^ own
			if capturesOnly {
				attacks &= enemy
			}
			for attacks != 0 {
				var to Square
				to, attacks = attacks.PopLSB()

				flag := Normal
				if enemy.IsSet(to) {
					flag = Capture
				}
				l.Push(NewMove(from, to, pc, flag, Queen))
			}
		}
	}

	if !capturesOnly {
		p.castlingMoves(l)
	}
}

func attacksFrom(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttackboard(sq)
	case Bishop:
		return BishopAttackboard(sq, occ)
	case Rook:
		return RookAttackboard(sq, occ)
	case Queen:
		return QueenAttackboard(sq, occ)
	case King:
		return KingAttackboard(sq)
	default:
		panic("invalid piece type")
	}
}

// pawnMoves generates pawn moves bitboard-parallel: all pawns of a kind are
// shifted at once and targets popped off the result.
func (p *Position) pawnMoves(l *MoveList, capturesOnly bool) {
	us := p.turn
	them := us.Opponent()
	pawns := p.pieces[us][Pawn]
	enemy := p.occupied[them]
	all := p.Occupancy()
	pc := NewPiece(us, Pawn)

	// push advances one rank; dA and dH capture toward the a- and h-side,
	// with the wrap guarded by the file masks on the source squares.
	var push, dA, dH int
	var jumpRank, promoRank Bitboard
	if us == White {
		push, dA, dH = 8, 7, 9
		jumpRank, promoRank = BitRank(Rank3), BitRank(Rank7)
	} else {
		push, dA, dH = -8, -9, -7
		jumpRank, promoRank = BitRank(Rank6), BitRank(Rank2)
	}
	notPromo := pawns &^ promoRank

	if !capturesOnly {
		push1 := notPromo.Shift(push) &^ all
		push2 := (push1 & jumpRank).Shift(push) &^ all

		for bb := push1; bb != 0; {
			var to Square
			to, bb = bb.PopLSB()
			l.Push(NewMove(offset(to, -push), to, pc, Normal, Queen))
		}
		for bb := push2; bb != 0; {
			var to Square
			to, bb = bb.PopLSB()
			l.Push(NewMove(offset(to, -2*push), to, pc, DoublePawnPush, Queen))
		}
	}

	capA := (notPromo & NotFileA).Shift(dA) & enemy
	capH := (notPromo & NotFileH).Shift(dH) & enemy
	for bb := capA; bb != 0; {
		var to Square
		to, bb = bb.PopLSB()
		l.Push(NewMove(offset(to, -dA), to, pc, Capture, Queen))
	}
	for bb := capH; bb != 0; {
		var to Square
		to, bb = bb.PopLSB()
		l.Push(NewMove(offset(to, -dH), to, pc, Capture, Queen))
	}

	if ep, ok := p.EnPassant(); ok {
		attackers := PawnAttackboard(them, ep) & pawns
		for bb := attackers; bb != 0; {
			var from Square
			from, bb = bb.PopLSB()
			l.Push(NewMove(from, ep, pc, EnPassant, Queen))
		}
	}

	promos := pawns & promoRank
	if promos == 0 {
		return
	}

	if !capturesOnly {
		for bb := promos.Shift(push) &^ all; bb != 0; {
			var to Square
			to, bb = bb.PopLSB()
			pushPromotions(l, offset(to, -push), to, pc, Promotion)
		}
	}
	for bb := (promos & NotFileA).Shift(dA) & enemy; bb != 0; {
		var to Square
		to, bb = bb.PopLSB()
		pushPromotions(l, offset(to, -dA), to, pc, CapturePromotion)
	}
	for bb := (promos & NotFileH).Shift(dH) & enemy; bb != 0; {
		var to Square
		to, bb = bb.PopLSB()
		pushPromotions(l, offset(to, -dH), to, pc, CapturePromotion)
	}
}

func pushPromotions(l *MoveList, from, to Square, pc Piece, flag MoveFlag) {
	l.Push(NewMove(from, to, pc, flag, Queen))
	l.Push(NewMove(from, to, pc, flag, Rook))
	l.Push(NewMove(from, to, pc, flag, Bishop))
	l.Push(NewMove(from, to, pc, flag, Knight))
}

// castlingMoves emits up to two castles for the side to move. A castle
// requires the right to be present, the squares the king traverses to be
// empty, and the king square and the square it crosses to not be attacked.
func (p *Position) castlingMoves(l *MoveList) {
	us := p.turn
	them := us.Opponent()
	all := p.Occupancy()

	if us == White {
		if p.castling.IsAllowed(WhiteKingSideCastle) &&
			all&(BitMask(F1)|BitMask(G1)) == 0 &&
			!p.IsAttacked(E1, them) && !p.IsAttacked(F1, them) {
			l.Push(NewMove(E1, G1, WhiteKing, Castling, Queen))
		}
		if p.castling.IsAllowed(WhiteQueenSideCastle) &&
			all&(BitMask(B1)|BitMask(C1)|BitMask(D1)) == 0 &&
			!p.IsAttacked(E1, them) && !p.IsAttacked(D1, them) {
			l.Push(NewMove(E1, C1, WhiteKing, Castling, Queen))
		}
		return
	}

	if p.castling.IsAllowed(BlackKingSideCastle) &&
		all&(BitMask(F8)|BitMask(G8)) == 0 &&
		!p.IsAttacked(E8, them) && !p.IsAttacked(F8, them) {
		l.Push(NewMove(E8, G8, BlackKing, Castling, Queen))
	}
	if p.castling.IsAllowed(BlackQueenSideCastle) &&
		all&(BitMask(B8)|BitMask(C8)|BitMask(D8)) == 0 &&
		!p.IsAttacked(E8, them) && !p.IsAttacked(D8, them) {
		l.Push(NewMove(E8, C8, BlackKing, Castling, Queen))
	}
}

func offset(sq Square, delta int) Square {
	return Square(int(sq) + delta)
}
