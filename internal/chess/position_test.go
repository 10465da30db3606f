package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPositionOnBoard(t *testing.T) {
	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{7, 7}, true},
		{Position{3, 4}, true},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
		{Position{8, 0}, false},
		{Position{0, 8}, false},
		{Position{100, -100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			if got := tt.pos.OnBoard(); got != tt.want {
				t.Errorf("OnBoard() = %v; want %v", got, tt.want)
			}
			if got := tt.pos.OffBoard(); got == tt.want {
				t.Errorf("OffBoard() = %v; want %v", got, !tt.want)
			}
		})
	}
}

func TestPositionRelations(t *testing.T) {
	origin := NewPosition(3, 3)

	tests := []struct {
		name       string
		other      Position
		diagonal   bool
		orthogonal bool
		adjacent   bool
		knight     bool
	}{
		{"self", Position{3, 3}, true, true, false, false},
		{"up one", Position{4, 3}, false, true, true, false},
		{"left one", Position{3, 2}, false, true, true, false},
		{"up two", Position{5, 3}, false, true, false, false},
		{"ne one", Position{4, 4}, true, false, true, false},
		{"sw one", Position{2, 2}, true, false, true, false},
		{"ne three", Position{6, 6}, true, false, false, false},
		{"knight", Position{5, 4}, false, false, false, true},
		{"knight flat", Position{2, 1}, false, false, false, true},
		{"unrelated", Position{7, 4}, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := origin.IsDiagonalTo(tt.other); got != tt.diagonal {
				t.Errorf("IsDiagonalTo(%v) = %v; want %v", tt.other, got, tt.diagonal)
			}
			if got := origin.IsOrthogonalTo(tt.other); got != tt.orthogonal {
				t.Errorf("IsOrthogonalTo(%v) = %v; want %v", tt.other, got, tt.orthogonal)
			}
			if got := origin.IsAdjacentTo(tt.other); got != tt.adjacent {
				t.Errorf("IsAdjacentTo(%v) = %v; want %v", tt.other, got, tt.adjacent)
			}
			if got := origin.IsKnightMoveFrom(tt.other); got != tt.knight {
				t.Errorf("IsKnightMoveFrom(%v) = %v; want %v", tt.other, got, tt.knight)
			}
		})
	}
}

func TestPositionStepsAreUnclamped(t *testing.T) {
	corner := NewPosition(0, 0)

	if got := corner.NextBelow(); got != (Position{-1, 0}) {
		t.Errorf("NextBelow() = %v; want (-1,0)", got)
	}
	if got := corner.NextLeft(); got != (Position{0, -1}) {
		t.Errorf("NextLeft() = %v; want (0,-1)", got)
	}
	if got := corner.NextAbove(); got != (Position{1, 0}) {
		t.Errorf("NextAbove() = %v; want (1,0)", got)
	}
	if got := corner.NextRight(); got != (Position{0, 1}) {
		t.Errorf("NextRight() = %v; want (0,1)", got)
	}
	if got := NewPosition(7, 7).Step(NE); got != (Position{8, 8}) {
		t.Errorf("Step(NE) = %v; want (8,8)", got)
	}
}

func TestPawnDirection(t *testing.T) {
	p := NewPosition(4, 4)

	if got := p.PawnUp(White); got != (Position{3, 4}) {
		t.Errorf("PawnUp(White) = %v; want (3,4)", got)
	}
	if got := p.PawnUp(Black); got != (Position{5, 4}) {
		t.Errorf("PawnUp(Black) = %v; want (5,4)", got)
	}
	if got := p.PawnBack(White); got != p.PawnUp(Black) {
		t.Errorf("PawnBack(White) = %v; want %v", got, p.PawnUp(Black))
	}

	if !NewPosition(6, 0).IsStartingPawn(White) {
		t.Error("row 6 should be the White pawn start row")
	}
	if !NewPosition(1, 5).IsStartingPawn(Black) {
		t.Error("row 1 should be the Black pawn start row")
	}
	if NewPosition(1, 5).IsStartingPawn(White) {
		t.Error("row 1 should not be the White pawn start row")
	}
}

func TestDiagonalsTo(t *testing.T) {
	tests := []struct {
		name string
		from Position
		to   Position
		want []Position
	}{
		{"ne", Position{2, 2}, Position{5, 5}, []Position{{3, 3}, {4, 4}, {5, 5}}},
		{"sw", Position{3, 3}, Position{1, 1}, []Position{{2, 2}, {1, 1}}},
		{"nw", Position{0, 7}, Position{2, 5}, []Position{{1, 6}, {2, 5}}},
		{"se", Position{7, 0}, Position{6, 1}, []Position{{6, 1}}},
		{"self", Position{4, 4}, Position{4, 4}, nil},
		{"not diagonal", Position{0, 0}, Position{0, 3}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.DiagonalsTo(tt.to)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiagonalsTo mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrthogonalsTo(t *testing.T) {
	tests := []struct {
		name string
		from Position
		to   Position
		want []Position
	}{
		{"right", Position{0, 0}, Position{0, 3}, []Position{{0, 1}, {0, 2}, {0, 3}}},
		{"left", Position{5, 4}, Position{5, 2}, []Position{{5, 3}, {5, 2}}},
		{"up", Position{1, 6}, Position{3, 6}, []Position{{2, 6}, {3, 6}}},
		{"down", Position{7, 0}, Position{5, 0}, []Position{{6, 0}, {5, 0}}},
		{"self", Position{2, 2}, Position{2, 2}, nil},
		{"not orthogonal", Position{0, 0}, Position{1, 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.OrthogonalsTo(tt.to)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("OrthogonalsTo mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPositionLess(t *testing.T) {
	if !NewPosition(0, 7).Less(NewPosition(1, 0)) {
		t.Error("(0,7) should sort before (1,0)")
	}
	if !NewPosition(2, 1).Less(NewPosition(2, 2)) {
		t.Error("(2,1) should sort before (2,2)")
	}
	if NewPosition(2, 2).Less(NewPosition(2, 2)) {
		t.Error("a position should not sort before itself")
	}
}

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir      Direction
		dRow     int
		dCol     int
		diagonal bool
	}{
		{Up, 1, 0, false},
		{Down, -1, 0, false},
		{Left, 0, -1, false},
		{Right, 0, 1, false},
		{NE, 1, 1, true},
		{NW, 1, -1, true},
		{SE, -1, 1, true},
		{SW, -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dRow, dCol := tt.dir.Delta()
			if dRow != tt.dRow || dCol != tt.dCol {
				t.Errorf("Delta() = (%d,%d); want (%d,%d)", dRow, dCol, tt.dRow, tt.dCol)
			}
			if got := tt.dir.IsDiagonal(); got != tt.diagonal {
				t.Errorf("IsDiagonal() = %v; want %v", got, tt.diagonal)
			}
		})
	}
}
