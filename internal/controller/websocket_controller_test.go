package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/benbeisheim/chessrules/internal/ws"
)

func mustMessage(t *testing.T, mt ws.MessageType, payload interface{}) ws.Message {
	t.Helper()
	msg, err := ws.NewMessage(mt, payload)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	return msg
}

func TestHandleMessage(t *testing.T) {
	bs := service.NewBoardService(service.NewBoardManager())
	wsc := NewWebSocketController(bs)
	view, err := bs.CreateBoard("alice", "", true)
	if err != nil {
		t.Fatal(err)
	}

	reply, err := wsc.handleMessage(view.ID, "alice", mustMessage(t, ws.MessageTypePlace, ws.PlacePayload{Square: "e7", Piece: "P"}))
	if err != nil || reply != nil {
		t.Fatalf("place: reply %v, err %v", reply, err)
	}

	reply, err = wsc.handleMessage(view.ID, "bob", mustMessage(t, ws.MessageTypeMoves, ws.MovesPayload{Square: "e7"}))
	if err != nil {
		t.Fatalf("moves: %v", err)
	}
	if reply == nil || reply.Type != ws.MessageTypeMoves {
		t.Fatalf("moves reply = %+v", reply)
	}
	var moves service.MovesView
	if err := json.Unmarshal(reply.Payload, &moves); err != nil {
		t.Fatal(err)
	}
	if len(moves.Moves) != 4 || len(moves.Targets) != 1 || moves.Targets[0] != "e8" {
		t.Errorf("promotion moves = %+v", moves)
	}

	if _, err := wsc.handleMessage(view.ID, "bob", mustMessage(t, ws.MessageTypePlace, ws.PlacePayload{Square: "e7", Piece: ""})); !errors.Is(err, service.ErrNotOwner) {
		t.Errorf("place by bob err = %v, want ErrNotOwner", err)
	}

	if _, err := wsc.handleMessage(view.ID, "alice", ws.Message{Type: ws.MessageTypeReset}); err != nil {
		t.Errorf("reset: %v", err)
	}
	after, _ := bs.GetBoard(view.ID)
	if after.Placement != model.StartPlacement {
		t.Errorf("placement after reset = %q", after.Placement)
	}

	if _, err := wsc.handleMessage(view.ID, "alice", ws.Message{Type: "castle"}); err == nil {
		t.Error("unknown message type accepted")
	}
}
