package main

import "errors"

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Errors raised by the rules engine. The first three are precondition
// violations; ErrIllegalMove is the only one expected during normal play.
var (
	ErrInvalidConfiguration = errors.New("board size must be an even integer >= 4")
	ErrInvalidLocation      = errors.New("location outside the board")
	ErrInvalidDirection     = errors.New("unknown direction")
	ErrIllegalMove          = errors.New("illegal move")
)

type Board struct {
	size  int
	cells []Cell
}

func NewBoard(boardSize int) (Board, error) {
	if boardSize < 4 || boardSize%2 != 0 {
		return Board{}, ErrInvalidConfiguration
	}
	b := Board{}
	b.Reset(boardSize)
	return b, nil
}

func (b *Board) Reset(boardSize int) {
	b.size = boardSize
	b.cells = make([]Cell, boardSize*boardSize)
}

func (b Board) At(location int) Cell {
	return b.cells[location]
}

func (b *Board) Set(location int, value Cell) {
	b.cells[location] = value
}

// Flip toggles the tile color at location. Empty cells stay empty.
func (b *Board) Flip(location int) {
	switch b.cells[location] {
	case CellBlack:
		b.cells[location] = CellWhite
	case CellWhite:
		b.cells[location] = CellBlack
	}
}

func (b Board) InBounds(location int) bool {
	return location >= 0 && location < len(b.cells)
}

func (b Board) IsEmpty(location int) bool {
	return b.InBounds(location) && b.cells[location] == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) IsFull() bool {
	return b.CountEmpty() == 0
}

func (b Board) Counts() (black, white int) {
	for _, cell := range b.cells {
		switch cell {
		case CellBlack:
			black++
		case CellWhite:
			white++
		}
	}
	return black, white
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Squares() int {
	return len(b.cells)
}

func (b Board) Row(location int) int {
	return location / b.size
}

func (b Board) Col(location int) int {
	return location % b.size
}

func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

func (c Cell) Opponent() Cell {
	switch c {
	case CellBlack:
		return CellWhite
	case CellWhite:
		return CellBlack
	default:
		return CellEmpty
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}
