package main

import "fmt"

type Game struct {
	settings    GameSettings
	state       GameState
	history     MoveHistory
	blackPlayer IPlayer
	whitePlayer IPlayer
}

type GameResult struct {
	Winner  int    `json:"winner"` // 1 black, 2 white, 0 tie
	Message string `json:"message"`
	Score   string `json:"score"`
}

func NewGame(settings GameSettings) (Game, error) {
	if err := settings.Validate(); err != nil {
		return Game{}, err
	}
	g := Game{}
	g.Reset(settings)
	return g, nil
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

// TryApplyMove plays the current turn at location. An illegal move is
// rejected with the state left untouched.
func (g *Game) TryApplyMove(location int) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	if !g.state.Board.InBounds(location) {
		g.state.LastMessage = "Illegal move: out of bounds"
		return false, g.state.LastMessage
	}
	toFlip, legal := g.state.ValidMoves[location]
	if !legal {
		g.state.LastMessage = "Illegal move: no tiles to capture"
		return false, g.state.LastMessage
	}

	g.state.LastMessage = ""
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	mover := g.state.ToMove
	cell := CellFromPlayer(mover)

	g.state.Board.Set(location, cell)
	if mover == PlayerBlack {
		g.state.BlackCount++
	} else {
		g.state.WhiteCount++
	}
	for _, captured := range toFlip {
		g.state.Board.Flip(captured)
		if mover == PlayerBlack {
			g.state.BlackCount++
			g.state.WhiteCount--
		} else {
			g.state.WhiteCount++
			g.state.BlackCount--
		}
	}
	g.state.LastMove = location
	g.state.HasLastMove = true

	g.history.Push(HistoryEntry{
		Location:   location,
		Player:     mover,
		Flipped:    append([]int(nil), toFlip...),
		IsAi:       isAiMove,
		BlackCount: g.state.BlackCount,
		WhiteCount: g.state.WhiteCount,
	})

	g.state.ToMove = otherPlayer(mover)
	g.state.refreshValidMoves()

	if g.state.Board.IsFull() {
		g.finish()
	}
	return true, ""
}

// Tick advances the game one step: it applies a pending human move, or runs
// the computer's turn (including repeated moves while the human is stuck).
// Returns true when at least one tile was placed.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			applied, _ := g.TryApplyMove(human.TakePendingMove())
			return applied
		}
		return false
	}
	return g.runComputerTurns()
}

// runComputerTurns plays computer moves until control can return to a human.
// A mover whose opponent has no reply keeps the turn; the game ends once the
// board fills or both sides in succession are out of moves. Each iteration
// places at most one tile, so the remaining empty squares bound the loop.
func (g *Game) runComputerTurns() bool {
	moved := false
	for limit := g.state.Board.CountEmpty(); limit > 0; limit-- {
		if g.state.Status != StatusRunning {
			break
		}
		player := g.currentPlayer()
		if player == nil || player.IsHuman() {
			break
		}
		location, ok := player.ChooseMove(g.state.ValidMoves)
		if !ok {
			// Mover is out of moves: pass. Both sides stuck ends the game.
			g.passTurn()
			if len(g.state.ValidMoves) == 0 {
				g.finish()
			}
			break
		}
		applied, _ := g.TryApplyMove(location)
		if !applied {
			break
		}
		moved = true
		if g.state.Status != StatusRunning {
			break
		}
		if len(g.state.ValidMoves) == 0 {
			// Opponent has no reply; the same side moves again.
			g.passTurn()
		}
	}
	return moved
}

func (g *Game) passTurn() {
	g.state.ToMove = otherPlayer(g.state.ToMove)
	g.state.refreshValidMoves()
}

func (g *Game) finish() {
	g.state.Status = StatusFinished
}

// Result compares tile counts. Valid at any point; meaningful once finished.
func (g *Game) Result() GameResult {
	result := GameResult{
		Score: fmt.Sprintf("black: %d, white: %d", g.state.BlackCount, g.state.WhiteCount),
	}
	switch {
	case g.state.WhiteCount > g.state.BlackCount:
		result.Winner = 2
		result.Message = "White wins!"
	case g.state.BlackCount > g.state.WhiteCount:
		result.Winner = 1
		result.Message = "Black wins!"
	default:
		result.Winner = 0
		result.Message = "You tied!"
	}
	return result
}

func (g *Game) SubmitHumanMove(location int) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(location)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = NewAIPlayer()
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = NewAIPlayer()
	}
}
