package main

import "sort"

type AIPlayer struct{}

func NewAIPlayer() *AIPlayer {
	return &AIPlayer{}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

// ChooseMove picks the square flipping the most tiles. Ties go to the lowest
// index, matching the ascending order the table is built in.
func (a *AIPlayer) ChooseMove(table LegalMoveTable) (int, bool) {
	if len(table) == 0 {
		return -1, false
	}
	keys := make([]int, 0, len(table))
	for location := range table {
		keys = append(keys, location)
	}
	sort.Ints(keys)

	best := -1
	bestLen := 0
	for _, location := range keys {
		if captures := len(table[location]); captures > bestLen {
			bestLen = captures
			best = location
		}
	}
	return best, best != -1
}
