package entity

// Player - one of the two participants. Player0 always moves first.
type Player int

const (
	Player0 Player = iota
	Player1
)

// Mark - returns the cell state a move by this player leaves behind.
func (that Player) Mark() Cell {
	if that == Player1 {
		return MarkedByPlayer1
	}
	return MarkedByPlayer0
}

// Other - returns the opponent.
func (that Player) Other() Player {
	if that == Player0 {
		return Player1
	}
	return Player0
}

// Symbol - returns the character used for the player's mark on the board.
func (that Player) Symbol() string {
	return that.Mark().String()
}

func (that Player) String() string {
	if that == Player1 {
		return "Player 1"
	}
	return "Player 0"
}
