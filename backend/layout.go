package main

// BoardLayout maps between board indices and pixel space. The board is
// centered on the origin, so the first square's corner sits at
// -boardSize*squareSize/2 on both axes, and row numbers grow upward.
type BoardLayout struct {
	boardSize  int
	squareSize int
	corner     int
}

func NewBoardLayout(boardSize, squareSize int) BoardLayout {
	return BoardLayout{
		boardSize:  boardSize,
		squareSize: squareSize,
		corner:     -boardSize * squareSize / 2,
	}
}

func (l BoardLayout) SquareSize() int {
	return l.squareSize
}

func (l BoardLayout) PixelSpan() int {
	return l.boardSize * l.squareSize
}

// SquareOrigin returns the lower-left pixel corner of a square.
func (l BoardLayout) SquareOrigin(location int) (x, y int) {
	col := location % l.boardSize
	row := location / l.boardSize
	return l.corner + col*l.squareSize, l.corner + row*l.squareSize
}

func (l BoardLayout) SquareCenter(location int) (x, y int) {
	x, y = l.SquareOrigin(location)
	half := l.squareSize / 2
	return x + half, y + half
}

// LocationAt resolves a pixel coordinate to the square whose closed-open box
// [x0, x0+size) x [y0, y0+size) contains it. Points on the far right or top
// boundary of the grid fall in no square.
func (l BoardLayout) LocationAt(px, py float64) (int, bool) {
	span := float64(l.PixelSpan())
	x := px - float64(l.corner)
	y := py - float64(l.corner)
	if x < 0 || x >= span || y < 0 || y >= span {
		return -1, false
	}
	col := int(x) / l.squareSize
	row := int(y) / l.squareSize
	return row*l.boardSize + col, true
}
