package main

import (
	"sync"

	"github.com/google/uuid"
)

// GameController serializes all access to the game. Moves must be applied
// one at a time, so every entry point takes the same lock.
type GameController struct {
	mu     sync.Mutex
	game   Game
	gameID string
}

func NewGameController(settings GameSettings) (*GameController, error) {
	game, err := NewGame(settings)
	if err != nil {
		return nil, err
	}
	return &GameController{game: game, gameID: uuid.NewString()}, nil
}

func (gc *GameController) GameID() string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.gameID
}

func (gc *GameController) ApplyHumanMove(location int) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if !gc.game.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	return gc.game.TryApplyMove(location)
}

// OnCellClicked resolves a pixel click against the board layout and queues
// the move for the current human player. Clicks outside every square, or on
// a boundary line, are dropped.
func (gc *GameController) OnCellClicked(px, py float64, layout BoardLayout) bool {
	location, ok := layout.LocationAt(px, py)
	if !ok {
		return false
	}
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.SubmitHumanMove(location)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) Result() GameResult {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Result()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	history := gc.game.History()
	if history.Size() == 0 {
		return HistoryEntry{}, false
	}
	entries := history.All()
	return entries[len(entries)-1], true
}

func (gc *GameController) Reset(settings GameSettings) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if err := settings.Validate(); err != nil {
		return err
	}
	gc.game.Reset(settings)
	gc.gameID = uuid.NewString()
	return nil
}

func (gc *GameController) StartGame(settings GameSettings) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if err := settings.Validate(); err != nil {
		return err
	}
	gc.game.Reset(settings)
	gc.game.Start()
	gc.gameID = uuid.NewString()
	return nil
}
