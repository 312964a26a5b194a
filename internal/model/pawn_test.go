package model

import "testing"

func TestPawnPromotesOnPush(t *testing.T) {
	b := boardFrom(t, "8/4P3/8/8/8/8/8/8")
	moves := movesFrom(t, b, "e7")
	if moves.Len() != 4 {
		t.Fatalf("got %d moves, want 4: %v", moves.Len(), moves.Sorted())
	}
	for _, pt := range PromotionTypes {
		m := Move{From: Square{7, 5}, To: Square{8, 5}, Promotion: pt}
		if !moves.Contains(m) {
			t.Errorf("missing %v", m)
		}
	}
}

func TestPawnForwardAndCapture(t *testing.T) {
	b := boardFrom(t, "8/8/5p2/4P3/8/8/8/8")
	moves := movesFrom(t, b, "e5")
	want := NewMoveSet(
		Move{From: Square{5, 5}, To: Square{6, 5}},
		Move{From: Square{5, 5}, To: Square{6, 6}},
	)
	if moves.Len() != want.Len() {
		t.Fatalf("got %v, want %v", moves.Sorted(), want.Sorted())
	}
	for m := range want {
		if !moves.Contains(m) {
			t.Errorf("missing %v", m)
		}
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		from      string
		want      []string
	}{
		{"white double step", "8/8/8/8/8/8/4P3/8", "e2", []string{"e3", "e4"}},
		{"black double step", "8/4p3/8/8/8/8/8/8", "e7", []string{"e6", "e5"}},
		{"double step blocked far", "8/8/8/8/4n3/8/4P3/8", "e2", []string{"e3"}},
		{"double step blocked near", "8/8/8/8/8/4n3/4P3/8", "e2", nil},
		{"no double step off start rank", "8/8/8/8/8/4P3/8/8", "e3", []string{"e4"}},
		{"blocked by enemy straight ahead", "8/8/8/8/4p3/4P3/8/8", "e3", nil},
		{"no capture of own piece", "8/8/8/8/3P1P2/4P3/8/8", "e3", []string{"e4"}},
		{"both captures", "8/8/8/3p1p2/4P3/8/8/8", "e4", []string{"e5", "d5", "f5"}},
		{"capture on edge file", "8/8/8/8/1p6/P7/8/8", "a3", []string{"a4", "b4"}},
		{"black captures downward", "8/8/8/3p4/2P1P3/8/8/8", "d5", []string{"d4", "c4", "e4"}},
		{"white on last rank is stuck", "4P3/8/8/8/8/8/8/8", "e8", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, tc.placement)
			moves := movesFrom(t, b, tc.from)
			assertDestinations(t, moves, tc.want...)
			if moves.Len() != len(tc.want) {
				t.Errorf("got %d moves, want %d", moves.Len(), len(tc.want))
			}
		})
	}
}

func TestPawnCapturePromotion(t *testing.T) {
	// Black pawn on b2 can push to b1 or take the rooks on a1 and c1.
	b := boardFrom(t, "8/8/8/8/8/8/1p6/R1R5")
	moves := movesFrom(t, b, "b2")
	if moves.Len() != 12 {
		t.Fatalf("got %d moves, want 12: %v", moves.Len(), moves.Sorted())
	}
	for m := range moves {
		if m.To.Row != 1 {
			t.Errorf("move %v does not reach rank 1", m)
		}
		if m.Promotion == "" {
			t.Errorf("move %v lacks promotion", m)
		}
	}
	byDest := make(map[Square]int)
	for m := range moves {
		byDest[m.To]++
	}
	for _, sq := range []Square{{1, 1}, {1, 2}, {1, 3}} {
		if byDest[sq] != 4 {
			t.Errorf("%s: %d promotion moves, want 4", sq, byDest[sq])
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{Move{From: Square{2, 5}, To: Square{4, 5}}, "e2e4"},
		{Move{From: Square{7, 1}, To: Square{8, 1}, Promotion: Queen}, "a7a8q"},
		{Move{From: Square{2, 8}, To: Square{1, 7}, Promotion: Knight}, "h2g1n"},
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
