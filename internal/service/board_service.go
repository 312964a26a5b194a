package service

import (
	"fmt"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/ws"
)

// BoardService translates notation from clients into board operations.
type BoardService struct {
	boardManager *BoardManager
}

func NewBoardService(boardManager *BoardManager) *BoardService {
	return &BoardService{
		boardManager: boardManager,
	}
}

// CreateBoard makes a board from a FEN placement, an empty board, or the
// standard setup when placement is blank and empty is false.
func (bs *BoardService) CreateBoard(ownerID string, placement string, empty bool) (BoardView, error) {
	var board *model.Board
	switch {
	case placement != "":
		b, err := model.ParsePlacement(placement)
		if err != nil {
			return BoardView{}, fmt.Errorf("failed to create board: %w", err)
		}
		board = b
	case empty:
		board = model.NewBoard()
	default:
		board = model.NewStandardBoard()
	}
	return bs.boardManager.CreateBoard(ownerID, board).View(), nil
}

func (bs *BoardService) GetBoard(boardID string) (BoardView, error) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return BoardView{}, err
	}
	return session.View(), nil
}

// PlacePiece puts the piece named by a FEN letter on square. An empty letter
// clears the square.
func (bs *BoardService) PlacePiece(boardID, clientID, square, letter string) (BoardView, error) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return BoardView{}, err
	}
	sq, err := model.ParseSquare(square)
	if err != nil {
		return BoardView{}, err
	}
	var piece model.Piece
	switch len(letter) {
	case 0:
	case 1:
		if piece, err = model.ParsePiece(letter[0]); err != nil {
			return BoardView{}, err
		}
	default:
		return BoardView{}, fmt.Errorf("%w: piece %q", model.ErrInvalidNotation, letter)
	}
	return session.Place(clientID, sq, piece)
}

func (bs *BoardService) ResetBoard(boardID, clientID string, empty bool) (BoardView, error) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return BoardView{}, err
	}
	return session.Reset(clientID, empty)
}

func (bs *BoardService) Moves(boardID, square string) (MovesView, error) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return MovesView{}, err
	}
	sq, err := model.ParseSquare(square)
	if err != nil {
		return MovesView{}, err
	}
	return session.Moves(sq)
}

func (bs *BoardService) DeleteBoard(boardID, clientID string) error {
	return bs.boardManager.DeleteBoard(boardID, clientID)
}

func (bs *BoardService) RegisterConnection(boardID string, clientID string, conn Conn) error {
	return bs.boardManager.RegisterConnection(boardID, clientID, conn)
}

func (bs *BoardService) UnregisterConnection(boardID string, clientID string) {
	bs.boardManager.UnregisterConnection(boardID, clientID)
}

// Send writes msg to a client subscribed to boardID.
func (bs *BoardService) Send(boardID, clientID string, msg ws.Message) error {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return err
	}
	return session.Send(clientID, msg)
}
