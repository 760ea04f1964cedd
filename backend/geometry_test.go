package main

import (
	"errors"
	"testing"
)

func TestDirectionIncrements(t *testing.T) {
	expected := map[Direction]int{
		North:     8,
		NorthEast: 9,
		East:      1,
		SouthEast: -7,
		South:     -8,
		SouthWest: -9,
		West:      -1,
		NorthWest: 7,
	}
	for direction, want := range expected {
		got, err := DirectionIncrement(8, direction)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", direction, err)
		}
		if got != want {
			t.Fatalf("%s: expected increment %d, got %d", direction, want, got)
		}
	}
	if _, err := DirectionIncrement(8, Direction(42)); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestDirectionalBoundFromCorner(t *testing.T) {
	cases := []struct {
		direction Direction
		want      int
	}{
		{North, 63},
		{South, 0},
		{East, 7},
		{West, 0},
		{NorthEast, 63},
		{SouthEast, 0},
		{NorthWest, 0},
		{SouthWest, 0},
	}
	for _, tc := range cases {
		got, err := DirectionalBound(8, 0, tc.direction)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.direction, err)
		}
		if got != tc.want {
			t.Fatalf("%s from 0: expected bound %d, got %d", tc.direction, tc.want, got)
		}
	}
}

func TestDirectionalBoundClampsDiagonals(t *testing.T) {
	// Index 42 sits at (row 5, col 2); climbing northeast hits the top edge
	// before the right one.
	got, err := DirectionalBound(8, 42, NorthEast)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != 63 {
		t.Fatalf("expected northeast bound clamped to 63, got %d", got)
	}

	// From (row 1, col 1) southwest reaches the bottom after one step.
	got, err = DirectionalBound(8, 9, SouthWest)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != 0 {
		t.Fatalf("expected southwest bound 0, got %d", got)
	}
}

func TestDirectionalBoundStaysInRow(t *testing.T) {
	// East and west never leave the row of the starting square.
	got, _ := DirectionalBound(8, 42, East)
	if got != 47 {
		t.Fatalf("expected east bound 47, got %d", got)
	}
	got, _ = DirectionalBound(8, 42, West)
	if got != 40 {
		t.Fatalf("expected west bound 40, got %d", got)
	}
}

func TestDirectionalBoundRejectsBadInput(t *testing.T) {
	if _, err := DirectionalBound(8, -1, North); !errors.Is(err, ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation for -1, got %v", err)
	}
	if _, err := DirectionalBound(8, 64, North); !errors.Is(err, ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation for 64, got %v", err)
	}
	if _, err := DirectionalBound(8, 10, Direction(-1)); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}
