package model

import "errors"

var (
	ErrOutOfRange      = errors.New("square out of range")
	ErrEmptySquare     = errors.New("no piece at square")
	ErrInvalidPiece    = errors.New("invalid piece")
	ErrInvalidNotation = errors.New("invalid notation")
)
