package model

// slidingMoves casts one ray per direction. A ray includes an enemy-occupied
// square and stops there; it stops before a friendly piece or the edge.
func slidingMoves(board *Board, from Square, color Color, dirs []direction) MoveSet {
	moves := NewMoveSet()
	for _, dir := range dirs {
		to := from.Offset(dir.dRow, dir.dCol)
		for admissible(board, color, to.Row, to.Col) {
			moves.Add(Move{From: from, To: to})
			if !board.at(to.Row, to.Col).IsEmpty() {
				break
			}
			to = to.Offset(dir.dRow, dir.dCol)
		}
	}
	return moves
}

func queenMoves(board *Board, from Square, color Color) MoveSet {
	return slidingMoves(board, from, color, rookDirs).Union(slidingMoves(board, from, color, bishopDirs))
}
