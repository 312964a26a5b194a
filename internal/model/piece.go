package model

import "fmt"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// PromotionTypes lists the piece types a pawn may promote to.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// letter returns the lowercase FEN letter for the type.
func (p PieceType) letter() byte {
	switch p {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Pawn:
		return 'p'
	}
	return 0
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Valid() bool {
	return c == White || c == Black
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece is an immutable description of what occupies a square. The zero
// Piece means the square is empty.
type Piece struct {
	Color Color     `json:"color"`
	Type  PieceType `json:"type"`
}

func NewPiece(color Color, pieceType PieceType) (Piece, error) {
	p := Piece{Color: color, Type: pieceType}
	if !p.Valid() {
		return Piece{}, fmt.Errorf("%w: %s %s", ErrInvalidPiece, color, pieceType)
	}
	return p, nil
}

func (p Piece) IsEmpty() bool {
	return p == Piece{}
}

func (p Piece) Valid() bool {
	return p.Color.Valid() && p.Type.Valid()
}

// String returns the FEN letter, uppercase for white. Empty renders as ".".
func (p Piece) String() string {
	if !p.Valid() {
		return "."
	}
	c := p.Type.letter()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// ParsePiece converts a FEN letter to a Piece.
func ParsePiece(letter byte) (Piece, error) {
	c := letter
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	var t PieceType
	switch c {
	case 'K':
		t = King
	case 'Q':
		t = Queen
	case 'R':
		t = Rook
	case 'B':
		t = Bishop
	case 'N':
		t = Knight
	case 'P':
		t = Pawn
	default:
		return Piece{}, fmt.Errorf("%w: piece letter %q", ErrInvalidNotation, letter)
	}
	return Piece{Color: color, Type: t}, nil
}
