package model

import "sort"

// Move is a candidate from one square to another. Promotion is empty unless
// a pawn reaches its last rank.
type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

// String returns coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != "" {
		s += string(m.Promotion.letter())
	}
	return s
}

// MoveSet is an unordered set of moves.
type MoveSet map[Move]struct{}

func NewMoveSet(moves ...Move) MoveSet {
	ms := make(MoveSet, len(moves))
	for _, m := range moves {
		ms.Add(m)
	}
	return ms
}

func (ms MoveSet) Add(m Move) {
	ms[m] = struct{}{}
}

func (ms MoveSet) Contains(m Move) bool {
	_, ok := ms[m]
	return ok
}

func (ms MoveSet) Len() int {
	return len(ms)
}

// Union adds every move of other to ms.
func (ms MoveSet) Union(other MoveSet) MoveSet {
	for m := range other {
		ms.Add(m)
	}
	return ms
}

// Destinations returns the distinct target squares of the set.
func (ms MoveSet) Destinations() []Square {
	seen := make(map[Square]bool, len(ms))
	var out []Square
	for _, m := range ms.Sorted() {
		if !seen[m.To] {
			seen[m.To] = true
			out = append(out, m.To)
		}
	}
	return out
}

// Sorted returns the moves ordered by source, destination, then
// promotion type.
func (ms MoveSet) Sorted() []Move {
	out := make([]Move, 0, len(ms))
	for m := range ms {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.From != b.From {
			return squareLess(a.From, b.From)
		}
		if a.To != b.To {
			return squareLess(a.To, b.To)
		}
		return a.Promotion < b.Promotion
	})
	return out
}

func squareLess(a, b Square) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
