package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCapturesInDirectionEmptyNeighbor(t *testing.T) {
	b, _ := NewBoard(4)
	b.Set(2, CellBlack)
	captured, err := CapturesInDirection(b, 0, CellBlack, East)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(captured) != 0 {
		t.Fatalf("an empty adjacent cell must capture nothing, got %v", captured)
	}
}

func TestCapturesInDirectionOffBoardNeighbor(t *testing.T) {
	b, _ := NewBoard(4)
	// Scanning west from the row start immediately leaves the row.
	captured, err := CapturesInDirection(b, 4, CellBlack, West)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(captured) != 0 {
		t.Fatalf("scanning off the board must capture nothing, got %v", captured)
	}
}

func TestCapturesInDirectionNeedsTerminator(t *testing.T) {
	b, _ := NewBoard(4)
	// An unbroken white run to the edge gives black no partial credit.
	b.Set(1, CellWhite)
	b.Set(2, CellWhite)
	b.Set(3, CellWhite)
	captured, err := CapturesInDirection(b, 0, CellBlack, East)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(captured) != 0 {
		t.Fatalf("a run without an own-color terminator must capture nothing, got %v", captured)
	}
}

func TestCapturesInDirectionExcludesTerminator(t *testing.T) {
	b, _ := NewBoard(4)
	b.Set(1, CellWhite)
	b.Set(2, CellBlack)
	captured, err := CapturesInDirection(b, 0, CellBlack, East)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := cmp.Diff([]int{1}, captured); diff != "" {
		t.Fatalf("captured run mismatch (-want +got):\n%s", diff)
	}
}

func TestCapturesInDirectionNoRowWraparound(t *testing.T) {
	b, _ := NewBoard(4)
	// White at 4 with black at 3: a westward scan from 5 must stop at the
	// row start rather than wrap to the previous row.
	b.Set(4, CellWhite)
	b.Set(3, CellBlack)
	captured, err := CapturesInDirection(b, 5, CellBlack, West)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(captured) != 0 {
		t.Fatalf("westward scan wrapped across the row boundary: %v", captured)
	}
}

func TestCapturesInDirectionRejectsBadLocation(t *testing.T) {
	b, _ := NewBoard(4)
	if _, err := CapturesInDirection(b, 16, CellBlack, North); err != ErrInvalidLocation {
		t.Fatalf("expected ErrInvalidLocation, got %v", err)
	}
}

func TestCapturesAtOccupiedSquare(t *testing.T) {
	b, _ := NewBoard(4)
	b.Set(5, CellWhite)
	captured, err := CapturesAt(b, 5, CellBlack)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(captured) != 0 {
		t.Fatalf("an occupied square is never a move, got %v", captured)
	}
}

func TestCapturesAtConcatenatesInCompassOrder(t *testing.T) {
	b, _ := NewBoard(4)
	// Playing black at 5 captures north (9 under 13) and east (6 under 7).
	b.Set(9, CellWhite)
	b.Set(13, CellBlack)
	b.Set(6, CellWhite)
	b.Set(7, CellBlack)
	captured, err := CapturesAt(b, 5, CellBlack)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := cmp.Diff([]int{9, 6}, captured); diff != "" {
		t.Fatalf("north must come before east (-want +got):\n%s", diff)
	}
}

func TestLegalMovesSkipsOccupiedAndBarrenSquares(t *testing.T) {
	settings := DefaultGameSettings()
	state := DefaultGameState(settings)
	table := LegalMoves(state.Board, CellBlack)
	for location, captured := range table {
		if !state.Board.IsEmpty(location) {
			t.Fatalf("occupied square %d appears in the move table", location)
		}
		if len(captured) == 0 {
			t.Fatalf("square %d is present with an empty capture list", location)
		}
	}
}

func TestLegalMovesInitialPosition(t *testing.T) {
	settings := DefaultGameSettings()
	state := DefaultGameState(settings)
	want := LegalMoveTable{
		19: {27},
		26: {27},
		37: {36},
		44: {36},
	}
	got := LegalMoves(state.Board, CellBlack)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("initial move table mismatch (-want +got):\n%s", diff)
	}
}
