package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/ws"
	"github.com/gofiber/websocket/v2"
)

var (
	ErrBoardNotFound    = errors.New("board not found")
	ErrNotOwner         = errors.New("only the board owner may change it")
	ErrConnectionExists = errors.New("connection already exists")
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// subscriber serialises writes to one connection.
type subscriber struct {
	conn Conn
	mu   sync.Mutex
}

func (s *subscriber) send(msg ws.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(msg)
}

// BoardConnections are the websocket subscribers of one board
type BoardConnections struct {
	connections map[string]*subscriber // clientID -> subscriber
	mu          sync.RWMutex
}

func NewBoardConnections() *BoardConnections {
	return &BoardConnections{
		connections: make(map[string]*subscriber),
	}
}

// Session owns one board. The model package does no locking, so every read
// and write of the board goes through mu; queries and broadcasts work on a
// clone taken under the read lock. broadcastMu is taken before mu is
// released, so subscribers see versions in increasing order.
type Session struct {
	ID          string
	Owner       string
	mu          sync.RWMutex
	broadcastMu sync.Mutex
	board       *model.Board
	version     uint64
	connections *BoardConnections
}

func NewSession(id, owner string, board *model.Board) *Session {
	if board == nil {
		board = model.NewStandardBoard()
	}
	return &Session{
		ID:          id,
		Owner:       owner,
		board:       board,
		connections: NewBoardConnections(),
	}
}

// Snapshot returns a copy of the board and its version.
func (s *Session) Snapshot() (*model.Board, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone(), s.version
}

func (s *Session) View() BoardView {
	b, version := s.Snapshot()
	return newBoardView(s.ID, s.Owner, version, b)
}

// Place puts piece on sq. Only the owner may mutate the board.
func (s *Session) Place(clientID string, sq model.Square, piece model.Piece) (BoardView, error) {
	return s.mutate(clientID, func(b *model.Board) error {
		return b.Place(sq, piece)
	})
}

// Reset restores the starting position, or clears the board when empty is set.
func (s *Session) Reset(clientID string, empty bool) (BoardView, error) {
	return s.mutate(clientID, func(b *model.Board) error {
		if empty {
			*b = model.Board{}
			return nil
		}
		b.Reset()
		return nil
	})
}

func (s *Session) mutate(clientID string, fn func(b *model.Board) error) (BoardView, error) {
	if clientID != s.Owner {
		return BoardView{}, ErrNotOwner
	}

	s.mu.Lock()
	if err := fn(s.board); err != nil {
		s.mu.Unlock()
		return BoardView{}, err
	}
	s.version++
	view := newBoardView(s.ID, s.Owner, s.version, s.board)
	s.broadcastMu.Lock()
	s.mu.Unlock()

	s.broadcast(view)
	s.broadcastMu.Unlock()
	return view, nil
}

// Moves returns the candidate moves of the piece on sq.
func (s *Session) Moves(sq model.Square) (MovesView, error) {
	b, _ := s.Snapshot()
	moves, err := model.MovesFrom(b, sq)
	if err != nil {
		return MovesView{}, err
	}
	piece, _ := b.OccupantAt(sq)
	return newMovesView(s.ID, sq, piece, moves), nil
}

func (s *Session) RegisterConnection(clientID string, conn Conn) error {
	// The initial state and the insert happen under broadcastMu so no newer
	// broadcast can reach conn before it.
	s.mu.RLock()
	view := newBoardView(s.ID, s.Owner, s.version, s.board)
	s.broadcastMu.Lock()
	s.mu.RUnlock()
	defer s.broadcastMu.Unlock()

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[clientID]; exists {
		// Keep the existing connection and turn the new one away.
		s.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return ErrConnectionExists
	}
	sub := &subscriber{conn: conn}
	s.connections.connections[clientID] = sub
	s.connections.mu.Unlock()
	log.Printf("board %s: registered connection for client %s", s.ID, clientID)

	msg, err := ws.NewMessage(ws.MessageTypeBoardState, view)
	if err != nil {
		s.UnregisterConnection(clientID)
		return err
	}
	if err := sub.send(msg); err != nil {
		s.UnregisterConnection(clientID)
		return fmt.Errorf("send initial state: %w", err)
	}
	return nil
}

func (s *Session) UnregisterConnection(clientID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if _, exists := s.connections.connections[clientID]; exists {
		log.Printf("board %s: unregistering connection for client %s", s.ID, clientID)
		delete(s.connections.connections, clientID)
	}
}

// Send writes msg to one subscriber.
func (s *Session) Send(clientID string, msg ws.Message) error {
	s.connections.mu.RLock()
	sub, ok := s.connections.connections[clientID]
	s.connections.mu.RUnlock()
	if !ok {
		return fmt.Errorf("client %s not connected to board %s", clientID, s.ID)
	}
	return sub.send(msg)
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.connections)
}

// CloseConnections closes every subscriber, used when the board is deleted.
func (s *Session) CloseConnections() {
	s.connections.mu.Lock()
	subs := s.connections.connections
	s.connections.connections = make(map[string]*subscriber)
	s.connections.mu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		sub.conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Board deleted"),
		)
		sub.conn.Close()
		sub.mu.Unlock()
	}
}

// broadcast sends view to every subscriber. Failed connections are dropped.
func (s *Session) broadcast(view BoardView) {
	msg, err := ws.NewMessage(ws.MessageTypeBoardState, view)
	if err != nil {
		log.Printf("board %s: failed to marshal state: %v", s.ID, err)
		return
	}

	// Copy the subscribers so no lock is held while writing.
	s.connections.mu.RLock()
	active := make(map[string]*subscriber, len(s.connections.connections))
	for clientID, sub := range s.connections.connections {
		active[clientID] = sub
	}
	s.connections.mu.RUnlock()

	for clientID, sub := range active {
		if err := sub.send(msg); err != nil {
			log.Printf("board %s: failed to send state to client %s: %v", s.ID, clientID, err)
			s.UnregisterConnection(clientID)
		}
	}
}
