package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/benbeisheim/chessrules/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	boardService *service.BoardService
}

func NewWebSocketController(boardService *service.BoardService) *WebSocketController {
	return &WebSocketController{
		boardService: boardService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	boardID := c.Params("boardId")
	clientID := c.Locals("clientID").(string)

	if err := wsc.boardService.RegisterConnection(boardID, clientID, c); err != nil {
		log.Printf("Failed to register connection: %v", err)
		c.Close()
		return
	}
	defer wsc.boardService.UnregisterConnection(boardID, clientID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			wsc.sendError(boardID, clientID, fmt.Errorf("invalid message: %w", err))
			continue
		}

		reply, err := wsc.handleMessage(boardID, clientID, msg)
		if err != nil {
			wsc.sendError(boardID, clientID, err)
			continue
		}
		if reply != nil {
			if err := wsc.boardService.Send(boardID, clientID, *reply); err != nil {
				log.Printf("write error: %v", err)
				break
			}
		}
	}
}

// handleMessage applies one client message. Mutations are broadcast by the
// session, so only queries produce a direct reply.
func (wsc *WebSocketController) handleMessage(boardID, clientID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypePlace:
		var p ws.PlacePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil, err
		}
		_, err := wsc.boardService.PlacePiece(boardID, clientID, p.Square, p.Piece)
		return nil, err

	case ws.MessageTypeReset:
		var p ws.ResetPayload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				return nil, err
			}
		}
		_, err := wsc.boardService.ResetBoard(boardID, clientID, p.Empty)
		return nil, err

	case ws.MessageTypeMoves:
		var p ws.MovesPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil, err
		}
		moves, err := wsc.boardService.Moves(boardID, p.Square)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeMoves, moves)
		if err != nil {
			return nil, err
		}
		return &reply, nil

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(boardID, clientID string, err error) {
	msg, merr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if merr != nil {
		log.Printf("marshal error reply: %v", merr)
		return
	}
	if err := wsc.boardService.Send(boardID, clientID, msg); err != nil {
		log.Printf("failed to send error to client %s: %v", clientID, err)
	}
}
