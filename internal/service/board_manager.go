// service/board_manager.go
package service

import (
	"log"
	"sync"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/google/uuid"
)

type BoardManager struct {
	boards map[string]*Session
	mu     sync.RWMutex
}

func NewBoardManager() *BoardManager {
	return &BoardManager{
		boards: make(map[string]*Session),
	}
}

// CreateBoard stores board under a fresh id owned by ownerID. A nil board
// starts from the standard setup.
func (bm *BoardManager) CreateBoard(ownerID string, board *model.Board) *Session {
	session := NewSession(uuid.New().String(), ownerID, board)

	bm.mu.Lock()
	defer bm.mu.Unlock()
	bm.boards[session.ID] = session
	log.Printf("created board %s for client %s", session.ID, ownerID)
	return session
}

func (bm *BoardManager) GetBoard(boardID string) (*Session, error) {
	bm.mu.RLock()
	defer bm.mu.RUnlock()

	session, exists := bm.boards[boardID]
	if !exists {
		return nil, ErrBoardNotFound
	}
	return session, nil
}

// DeleteBoard removes the board and closes its subscribers.
func (bm *BoardManager) DeleteBoard(boardID string, clientID string) error {
	bm.mu.Lock()
	session, exists := bm.boards[boardID]
	if !exists {
		bm.mu.Unlock()
		return ErrBoardNotFound
	}
	if session.Owner != clientID {
		bm.mu.Unlock()
		return ErrNotOwner
	}
	delete(bm.boards, boardID)
	bm.mu.Unlock()

	session.CloseConnections()
	log.Printf("deleted board %s", boardID)
	return nil
}

func (bm *BoardManager) Count() int {
	bm.mu.RLock()
	defer bm.mu.RUnlock()
	return len(bm.boards)
}

func (bm *BoardManager) RegisterConnection(boardID string, clientID string, conn Conn) error {
	session, err := bm.GetBoard(boardID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(clientID, conn)
}

func (bm *BoardManager) UnregisterConnection(boardID string, clientID string) {
	session, err := bm.GetBoard(boardID)
	if err != nil {
		return
	}
	session.UnregisterConnection(clientID)
}
