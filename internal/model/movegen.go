package model

import "fmt"

type direction struct {
	dRow, dCol int
}

var (
	rookDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	kingDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// MovesFrom returns the pseudo-legal moves of the piece on sq. Moves that
// leave the mover's own king attacked are not filtered out.
func MovesFrom(board *Board, sq Square) (MoveSet, error) {
	piece, err := board.OccupantAt(sq)
	if err != nil {
		return nil, err
	}
	if piece.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptySquare, sq)
	}

	switch piece.Type {
	case King:
		return stepMoves(board, sq, piece.Color, kingDirs), nil
	case Knight:
		return stepMoves(board, sq, piece.Color, knightDirs), nil
	case Rook:
		return slidingMoves(board, sq, piece.Color, rookDirs), nil
	case Bishop:
		return slidingMoves(board, sq, piece.Color, bishopDirs), nil
	case Queen:
		return queenMoves(board, sq, piece.Color), nil
	case Pawn:
		return pawnMoves(board, sq, piece.Color), nil
	default:
		return nil, fmt.Errorf("%w: %s at %s", ErrInvalidPiece, piece.Type, sq)
	}
}

// MovesForColor returns the union of MovesFrom over every piece of color.
func MovesForColor(board *Board, color Color) MoveSet {
	all := NewMoveSet()
	for _, pl := range board.Occupied() {
		if pl.Piece.Color != color {
			continue
		}
		moves, err := MovesFrom(board, pl.Square)
		if err != nil {
			continue
		}
		all.Union(moves)
	}
	return all
}

// admissible reports whether a piece of color may land on (row, col): the
// square is on the board and either empty or held by the opponent.
func admissible(board *Board, color Color, row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	occupant := board.at(row, col)
	return occupant.IsEmpty() || occupant.Color != color
}

// stepMoves handles the fixed-offset pieces. Each target is independent.
func stepMoves(board *Board, from Square, color Color, dirs []direction) MoveSet {
	moves := NewMoveSet()
	for _, dir := range dirs {
		to := from.Offset(dir.dRow, dir.dCol)
		if admissible(board, color, to.Row, to.Col) {
			moves.Add(Move{From: from, To: to})
		}
	}
	return moves
}
