package main

type PlayerColor int

type GameStatus int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusFinished
)

type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Status      GameStatus
	BlackCount  int
	WhiteCount  int
	ValidMoves  LegalMoveTable
	HasLastMove bool
	LastMove    int
	LastMessage string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

// Reset assumes settings have been validated.
func (s *GameState) Reset(settings GameSettings) {
	s.Board = Board{}
	s.Board.Reset(settings.BoardSize)
	if settings.BlackStarts {
		s.ToMove = PlayerBlack
	} else {
		s.ToMove = PlayerWhite
	}
	s.Status = StatusNotStarted
	s.BlackCount = 0
	s.WhiteCount = 0
	s.HasLastMove = false
	s.LastMove = -1
	s.LastMessage = ""
	s.placeStartTiles()
	s.refreshValidMoves()
}

// placeStartTiles fills the four center squares, colors alternating so that
// each diagonal pair matches.
func (s *GameState) placeStartTiles() {
	ul, ur, lr, ll := centerSquares(s.Board.Size())
	color := CellFromPlayer(s.ToMove)
	for _, location := range [4]int{ul, ur, lr, ll} {
		s.Board.Set(location, color)
		if color == CellBlack {
			s.BlackCount++
		} else {
			s.WhiteCount++
		}
		color = color.Opponent()
	}
}

// centerSquares returns the four center indices of an even-sided board.
// The upper-right one sits at (n*n + n)/2; the rest are offsets from it.
func centerSquares(boardSize int) (ul, ur, lr, ll int) {
	ur = (boardSize*boardSize + boardSize) / 2
	ul = ur - 1
	lr = ur - boardSize
	ll = lr - 1
	return ul, ur, lr, ll
}

func (s *GameState) refreshValidMoves() {
	s.ValidMoves = LegalMoves(s.Board, CellFromPlayer(s.ToMove))
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.ValidMoves = make(LegalMoveTable, len(s.ValidMoves))
	for location, captured := range s.ValidMoves {
		clone.ValidMoves[location] = append([]int(nil), captured...)
	}
	return clone
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}
