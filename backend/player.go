package main

type IPlayer interface {
	IsHuman() bool
	ChooseMove(table LegalMoveTable) (int, bool)
}
