package model

import "fmt"

// Square identifies a board cell. Row and Col are 1-based; row 1 is white's
// back rank and col 1 is the a-file. Squares outside [1,8] are representable
// but are never stored in a Board.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewSquare returns the square at row, col or ErrOutOfRange.
func NewSquare(row, col int) (Square, error) {
	sq := Square{Row: row, Col: col}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return sq, nil
}

func (s Square) Valid() bool {
	return inBounds(s.Row, s.Col)
}

// Offset returns the square dRow rows and dCol columns away. The result may
// be off the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%s%d", s.fileNotation(), s.Row)
}

func (s Square) fileNotation() string {
	return fmt.Sprintf("%c", 'a'+s.Col-1)
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: square %q", ErrInvalidNotation, s)
	}
	col := int(s[0]-'a') + 1
	row := int(s[1]-'1') + 1
	if !inBounds(row, col) {
		return Square{}, fmt.Errorf("%w: square %q", ErrInvalidNotation, s)
	}
	return Square{Row: row, Col: col}, nil
}

func inBounds(row, col int) bool {
	return row >= 1 && row <= 8 && col >= 1 && col <= 8
}
