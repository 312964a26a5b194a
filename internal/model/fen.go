package model

import (
	"fmt"
	"strings"
)

// StartPlacement is the FEN piece-placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from a FEN piece-placement field. Only the
// first field is read; side to move, castling and the rest are ignored.
func ParsePlacement(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty placement", ErrInvalidNotation)
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidNotation, len(ranks))
	}

	b := &Board{}
	for i, rank := range ranks {
		row := 8 - i
		col := 1
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			if col > 8 {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrInvalidNotation, row)
			}
			p, err := ParsePiece(c)
			if err != nil {
				return nil, err
			}
			b.squares[row-1][col-1] = p
			col++
		}
		if col != 9 {
			return nil, fmt.Errorf("%w: rank %d has %d columns", ErrInvalidNotation, row, col-1)
		}
	}
	return b, nil
}

// Placement renders the board as a FEN piece-placement field.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 8; row >= 1; row-- {
		empty := 0
		for col := 1; col <= 8; col++ {
			p := b.at(row, col)
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
