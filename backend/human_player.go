package main

type HumanPlayer struct {
	pending     bool
	pendingMove int
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(LegalMoveTable) (int, bool) {
	return -1, false
}

func (h *HumanPlayer) SetPendingMove(location int) {
	h.pendingMove = location
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingMove() int {
	h.pending = false
	return h.pendingMove
}
