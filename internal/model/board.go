package model

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid of pieces indexed [row-1][col-1]. The zero Board is
// empty and ready to use. Board has no internal locking.
type Board struct {
	squares [8][8]Piece
}

func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard returns a board in the standard starting arrangement.
func NewStandardBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Place overwrites the occupant of sq. Placing the zero Piece clears it.
func (b *Board) Place(sq Square, piece Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("%w: place at (%d,%d)", ErrOutOfRange, sq.Row, sq.Col)
	}
	if !piece.IsEmpty() && !piece.Valid() {
		return fmt.Errorf("%w: %s %s", ErrInvalidPiece, piece.Color, piece.Type)
	}
	b.squares[sq.Row-1][sq.Col-1] = piece
	return nil
}

// Clear empties sq.
func (b *Board) Clear(sq Square) error {
	return b.Place(sq, Piece{})
}

// OccupantAt returns the piece at sq, or the zero Piece if sq is empty.
func (b *Board) OccupantAt(sq Square) (Piece, error) {
	if !sq.Valid() {
		return Piece{}, fmt.Errorf("%w: read at (%d,%d)", ErrOutOfRange, sq.Row, sq.Col)
	}
	return b.at(sq.Row, sq.Col), nil
}

// at reads without bounds checking; callers validate first.
func (b *Board) at(row, col int) Piece {
	return b.squares[row-1][col-1]
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Reset clears the board and sets up both armies in the starting position.
func (b *Board) Reset() {
	b.squares = [8][8]Piece{}
	for col := 0; col < 8; col++ {
		b.squares[0][col] = Piece{Color: White, Type: backRank[col]}
		b.squares[1][col] = Piece{Color: White, Type: Pawn}
		b.squares[6][col] = Piece{Color: Black, Type: Pawn}
		b.squares[7][col] = Piece{Color: Black, Type: backRank[col]}
	}
}

// Equal reports whether both boards hold the same piece on every square.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.squares == other.squares
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Occupied returns every occupied square with its piece, rank 1 first.
func (b *Board) Occupied() []Placement {
	var out []Placement
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			if p := b.at(row, col); !p.IsEmpty() {
				out = append(out, Placement{Square: Square{Row: row, Col: col}, Piece: p})
			}
		}
	}
	return out
}

// Count returns the number of pieces of the given color.
func (b *Board) Count(color Color) int {
	n := 0
	for _, pl := range b.Occupied() {
		if pl.Piece.Color == color {
			n++
		}
	}
	return n
}

// Placement pairs a square with its occupant.
type Placement struct {
	Square Square `json:"square"`
	Piece  Piece  `json:"piece"`
}

// String draws the board with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 8; row >= 1; row-- {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 1; col <= 8; col++ {
			sb.WriteString(b.at(row, col).String())
			if col < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
