package main

// LegalMoveTable maps an empty-square index to the tiles captured by playing
// there. Squares with nothing to capture are absent, never present with an
// empty list.
type LegalMoveTable map[int][]int

// CapturesInDirection scans from location toward the directional bound and
// returns the run of opponent tiles that placing turn's tile at location
// would flip. The run only counts if it is unbroken and terminated by a tile
// of turn's own color before the board edge; otherwise nothing is captured.
// The terminating tile is never part of the result.
func CapturesInDirection(b Board, location int, turn Cell, direction Direction) ([]int, error) {
	if !b.InBounds(location) {
		return nil, ErrInvalidLocation
	}
	inc, err := DirectionIncrement(b.Size(), direction)
	if err != nil {
		return nil, err
	}
	bound, err := DirectionalBound(b.Size(), location, direction)
	if err != nil {
		return nil, err
	}

	var captured []int
	for loc := location + inc; withinBound(loc, bound, inc); loc += inc {
		switch b.At(loc) {
		case CellEmpty:
			return nil, nil
		case turn:
			return captured, nil
		default:
			captured = append(captured, loc)
		}
	}
	// Ran off the board without meeting an own-color terminator.
	return nil, nil
}

func withinBound(loc, bound, inc int) bool {
	if inc > 0 {
		return loc <= bound
	}
	return loc >= bound
}

// CapturesAt concatenates the capturable runs around location over all eight
// directions, in compass order. An occupied square captures nothing.
func CapturesAt(b Board, location int, turn Cell) ([]int, error) {
	if !b.InBounds(location) {
		return nil, ErrInvalidLocation
	}
	if b.At(location) != CellEmpty {
		return nil, nil
	}
	var captured []int
	for _, direction := range allDirections {
		inDirection, err := CapturesInDirection(b, location, turn, direction)
		if err != nil {
			return nil, err
		}
		captured = append(captured, inDirection...)
	}
	return captured, nil
}

// LegalMoves builds the full move table for turn by scanning every square in
// ascending index order.
func LegalMoves(b Board, turn Cell) LegalMoveTable {
	moves := make(LegalMoveTable)
	for location := 0; location < b.Squares(); location++ {
		captured, err := CapturesAt(b, location, turn)
		if err != nil {
			continue
		}
		if len(captured) > 0 {
			moves[location] = captured
		}
	}
	return moves
}
