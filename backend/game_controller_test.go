package main

import "testing"

func TestControllerRejectsBadSettings(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BoardSize = 7
	if _, err := NewGameController(settings); err == nil {
		t.Fatalf("expected an error for an odd board size")
	}
}

func TestControllerRejectsMoveOnComputerTurn(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BlackType = PlayerAI
	gc, err := NewGameController(settings)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := gc.StartGame(settings); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	applied, reason := gc.ApplyHumanMove(26)
	if applied || reason != "not human turn" {
		t.Fatalf("expected \"not human turn\", got applied=%v reason=%q", applied, reason)
	}
}

func TestControllerClickQueuesMove(t *testing.T) {
	settings := DefaultGameSettings()
	gc, err := NewGameController(settings)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := gc.StartGame(settings); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	layout := NewBoardLayout(settings.BoardSize, 50)

	// (-75,-25) is the center of square 26, a legal opening move for black.
	if !gc.OnCellClicked(-75, -25, layout) {
		t.Fatalf("expected the click to queue a move")
	}
	if !gc.Tick() {
		t.Fatalf("expected the queued move to apply on the next tick")
	}
	state := gc.State()
	if !state.HasLastMove || state.LastMove != 26 {
		t.Fatalf("expected last move 26, got %d (has=%v)", state.LastMove, state.HasLastMove)
	}
	if state.ToMove != PlayerWhite {
		t.Fatalf("turn must pass to white after the click resolves")
	}
}

func TestControllerClickOutsideBoard(t *testing.T) {
	settings := DefaultGameSettings()
	gc, _ := NewGameController(settings)
	gc.StartGame(settings)
	layout := NewBoardLayout(settings.BoardSize, 50)

	if gc.OnCellClicked(500, 500, layout) {
		t.Fatalf("a click outside the grid must be dropped")
	}
	if gc.Tick() {
		t.Fatalf("no move should be pending after a dropped click")
	}
}

func TestControllerResetIssuesNewGameID(t *testing.T) {
	settings := DefaultGameSettings()
	gc, _ := NewGameController(settings)
	before := gc.GameID()
	if before == "" {
		t.Fatalf("expected a game id")
	}
	if err := gc.Reset(settings); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if gc.GameID() == before {
		t.Fatalf("reset must issue a fresh game id")
	}
	if _, ok := gc.LatestHistoryEntry(); ok {
		t.Fatalf("reset must clear the history")
	}
}
