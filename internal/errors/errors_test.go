package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrCapturedPieceAccess", ErrCapturedPieceAccess, ErrCapturedPieceAccess},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrWrongSide", ErrWrongSide, ErrWrongSide},
		{"ErrEmptySquare", ErrEmptySquare, ErrEmptySquare},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrWrongSide) {
		t.Error("ErrIllegalMove should not match ErrWrongSide")
	}
	if errors.Is(ErrCapturedPieceAccess, ErrIllegalMove) {
		t.Error("ErrCapturedPieceAccess should not match ErrIllegalMove")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				Piece:  "White Pawn",
				From:   "e2",
				To:     "e5",
				Reason: "not a legal destination",
			},
			contains: []string{"White Pawn", "e2 -> e5", "not a legal destination", "illegal move"},
		},
		{
			name:     "destination only",
			err:      &MoveError{Err: ErrIllegalMove, To: "a9"},
			contains: []string{"-> a9", "illegal move"},
		},
		{
			name:     "bare",
			err:      &MoveError{Err: ErrWrongSide},
			contains: []string{"other side"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Empty(t *testing.T) {
	if got := (&MoveError{}).Error(); got != "move rejected" {
		t.Errorf("Error() = %q, want %q", got, "move rejected")
	}
}

// TestMoveError_As verifies that errors.As works through further wrapping
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, From: "b1", To: "d2"}
	wrapped := fmt.Errorf("session: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.To != "d2" {
		t.Errorf("extracted.To = %q, want %q", extracted.To, "d2")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidFEN,
		Input:    "rnbqkbnr/ppp",
		Column:   9,
		Expected: "8 ranks",
		Got:      "2",
	}

	msg := err.Error()
	for _, s := range []string{"rnbqkbnr/ppp", ":9", "expected 8 ranks, got 2", "invalid FEN"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
}

func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidSquare, Input: "z9"}
	if !errors.Is(parseErr, ErrInvalidSquare) {
		t.Error("errors.Is(parseErr, ErrInvalidSquare) = false, want true")
	}
	if got := (&ParseError{}).Error(); got != "parse error" {
		t.Errorf("empty ParseError = %q, want %q", got, "parse error")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading start position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d", 15)

	if !Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
