package main

type Direction int

// Compass directions in the order capture scans are concatenated.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var allDirections = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case NorthEast:
		return "ne"
	case East:
		return "e"
	case SouthEast:
		return "se"
	case South:
		return "s"
	case SouthWest:
		return "sw"
	case West:
		return "w"
	case NorthWest:
		return "nw"
	default:
		return "invalid"
	}
}

// DirectionIncrement returns the signed index delta of a one-square step in
// the given direction on a board of side boardSize. Rows are stored in
// ascending index order, so north is +boardSize.
func DirectionIncrement(boardSize int, direction Direction) (int, error) {
	switch direction {
	case North:
		return boardSize, nil
	case South:
		return -boardSize, nil
	case East:
		return 1, nil
	case West:
		return -1, nil
	case NorthEast:
		return boardSize + 1, nil
	case NorthWest:
		return boardSize - 1, nil
	case SouthEast:
		return -(boardSize - 1), nil
	case SouthWest:
		return -(boardSize + 1), nil
	default:
		return 0, ErrInvalidDirection
	}
}

// DirectionalBound returns the furthest index a scan from location may reach
// in the given direction without leaving the board or wrapping a row.
// Diagonal scans are clamped to whichever edge, row or column, comes first.
func DirectionalBound(boardSize, location int, direction Direction) (int, error) {
	if location < 0 || location >= boardSize*boardSize {
		return 0, ErrInvalidLocation
	}

	row := location / boardSize
	col := location % boardSize
	rowStart := row * boardSize
	rowEnd := rowStart + boardSize - 1
	boardMax := boardSize*boardSize - 1

	switch direction {
	case North:
		return boardMax, nil
	case South:
		return 0, nil
	case East:
		return rowEnd, nil
	case West:
		return rowStart, nil
	case NorthEast:
		// Steps to the right edge also bound the climb upward.
		steps := boardSize - 1 - col
		bound := rowEnd + steps*boardSize
		if bound > boardMax {
			bound = boardMax
		}
		return bound, nil
	case SouthEast:
		steps := boardSize - 1 - col
		bound := rowEnd - steps*boardSize
		if bound < 0 {
			bound = 0
		}
		return bound, nil
	case NorthWest:
		bound := rowStart + col*boardSize
		if bound > boardMax {
			bound = boardMax
		}
		return bound, nil
	case SouthWest:
		bound := rowStart - col*boardSize
		if bound < 0 {
			bound = 0
		}
		return bound, nil
	default:
		return 0, ErrInvalidDirection
	}
}
