package model

func pawnDirection(color Color) int {
	if color == White {
		return 1
	}
	return -1
}

func promotionRow(color Color) int {
	if color == White {
		return 8
	}
	return 1
}

func doubleStepRow(color Color) int {
	if color == White {
		return 2
	}
	return 7
}

// canAdvance reports whether a pawn may step onto (row, col): it must be on
// the board and empty.
func canAdvance(board *Board, row, col int) bool {
	return inBounds(row, col) && board.at(row, col).IsEmpty()
}

// canCapture reports whether a pawn of color may capture on (row, col).
func canCapture(board *Board, color Color, row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	occupant := board.at(row, col)
	return !occupant.IsEmpty() && occupant.Color != color
}

func pawnMoves(board *Board, from Square, color Color) MoveSet {
	moves := NewMoveSet()
	fwd := pawnDirection(color)

	one := from.Offset(fwd, 0)
	if canAdvance(board, one.Row, one.Col) {
		addPawnMove(moves, from, one, color)

		two := from.Offset(2*fwd, 0)
		if from.Row == doubleStepRow(color) && canAdvance(board, two.Row, two.Col) {
			moves.Add(Move{From: from, To: two})
		}
	}

	for _, dCol := range [2]int{-1, 1} {
		to := from.Offset(fwd, dCol)
		if canCapture(board, color, to.Row, to.Col) {
			addPawnMove(moves, from, to, color)
		}
	}
	return moves
}

// addPawnMove adds one plain move, or one move per promotion type when to is
// on the last rank.
func addPawnMove(moves MoveSet, from, to Square, color Color) {
	if to.Row != promotionRow(color) {
		moves.Add(Move{From: from, To: to})
		return
	}
	for _, t := range PromotionTypes {
		moves.Add(Move{From: from, To: to, Promotion: t})
	}
}
