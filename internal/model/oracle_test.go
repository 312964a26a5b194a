package model

import (
	"sort"
	"strings"
	"testing"

	"github.com/notnil/chess"
)

// In these positions no king is in check, nothing is pinned and no king can
// step onto an attacked square, so the pseudo-legal moves equal the legal
// moves reported by notnil/chess.
func TestMovesMatchReferenceLibrary(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color Color
		want  int
	}{
		{"start", StartPlacement + " w - - 0 1", White, 20},
		{"minor pieces white", "7k/6pp/8/3r4/2N1B3/8/PP6/K7 w - - 0 1", White, 22},
		{"minor pieces black", "7k/6pp/8/3r4/2N1B3/8/PP6/K7 b - - 0 1", Black, 19},
		{"promotion", "8/1P4k1/8/8/8/8/6p1/K7 w - - 0 1", White, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, tc.fen)
			var got []string
			for m := range MovesForColor(b, tc.color) {
				got = append(got, m.String())
			}

			opt, err := chess.FEN(tc.fen)
			if err != nil {
				t.Fatalf("chess.FEN: %v", err)
			}
			var want []string
			for _, m := range chess.NewGame(opt).ValidMoves() {
				want = append(want, m.String())
			}

			sort.Strings(got)
			sort.Strings(want)
			if len(got) != tc.want {
				t.Errorf("generated %d moves, want %d", len(got), tc.want)
			}
			if strings.Join(got, " ") != strings.Join(want, " ") {
				t.Errorf("moves differ\n got: %v\nwant: %v", got, want)
			}
		})
	}
}
