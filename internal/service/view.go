package service

import "github.com/benbeisheim/chessrules/internal/model"

// BoardView is the JSON shape of a board sent to clients.
type BoardView struct {
	ID        string      `json:"id"`
	Owner     string      `json:"owner"`
	Placement string      `json:"placement"`
	Pieces    []PieceView `json:"pieces"`
	Version   uint64      `json:"version"`
}

type PieceView struct {
	Square string      `json:"square"`
	Piece  model.Piece `json:"piece"`
	Letter string      `json:"letter"`
}

// MovesView lists the candidate moves of one piece.
type MovesView struct {
	BoardID string      `json:"boardId"`
	Square  string      `json:"square"`
	Piece   model.Piece `json:"piece"`
	Moves   []MoveView  `json:"moves"`
	Targets []string    `json:"targets"`
}

type MoveView struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Promotion model.PieceType `json:"promotion,omitempty"`
	Notation  string          `json:"notation"`
}

func newBoardView(id, owner string, version uint64, b *model.Board) BoardView {
	view := BoardView{
		ID:        id,
		Owner:     owner,
		Placement: b.Placement(),
		Pieces:    make([]PieceView, 0, 32),
		Version:   version,
	}
	for _, pl := range b.Occupied() {
		view.Pieces = append(view.Pieces, PieceView{
			Square: pl.Square.String(),
			Piece:  pl.Piece,
			Letter: pl.Piece.String(),
		})
	}
	return view
}

func newMovesView(id string, sq model.Square, piece model.Piece, moves model.MoveSet) MovesView {
	view := MovesView{
		BoardID: id,
		Square:  sq.String(),
		Piece:   piece,
		Moves:   make([]MoveView, 0, moves.Len()),
		Targets: make([]string, 0, moves.Len()),
	}
	for _, m := range moves.Sorted() {
		view.Moves = append(view.Moves, MoveView{
			From:      m.From.String(),
			To:        m.To.String(),
			Promotion: m.Promotion,
			Notation:  m.String(),
		})
	}
	for _, to := range moves.Destinations() {
		view.Targets = append(view.Targets, to.String())
	}
	return view
}
