package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	BoardSize   int        `json:"board_size"`
	BlackType   PlayerType `json:"-"`
	WhiteType   PlayerType `json:"-"`
	BlackStarts bool       `json:"black_starts"`
}

// DefaultGameSettings assigns the human the black tiles and the first move.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:   8,
		BlackType:   PlayerHuman,
		WhiteType:   PlayerAI,
		BlackStarts: true,
	}
}

func (s GameSettings) Validate() error {
	if s.BoardSize < 4 || s.BoardSize%2 != 0 {
		return ErrInvalidConfiguration
	}
	return nil
}
