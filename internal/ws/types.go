package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypePlace      MessageType = "place"
	MessageTypeReset      MessageType = "reset"
	MessageTypeMoves      MessageType = "moves"
	MessageTypeBoardState MessageType = "boardState"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// PlacePayload puts a piece, given as a FEN letter, on a square. An empty
// piece clears the square.
type PlacePayload struct {
	Square string `json:"square"`
	Piece  string `json:"piece"`
}

// ResetPayload chooses between the standard setup and an empty board.
type ResetPayload struct {
	Empty bool `json:"empty"`
}

type MovesPayload struct {
	Square string `json:"square"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
