package entity

type Status int

const (
	StatusInProgress Status = iota
	StatusWin
	StatusDraw
)

// Outcome - classifies a board. Winner is only meaningful when Status is StatusWin.
type Outcome struct {
	Status Status
	Winner Player
}

var (
	InProgress = Outcome{Status: StatusInProgress}
	Draw       = Outcome{Status: StatusDraw}
)

// Win - the outcome where player completed a line.
func Win(player Player) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

// IsTerminal - checks whether the game is over.
func (that Outcome) IsTerminal() bool {
	return that.Status != StatusInProgress
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return that.Winner.String() + " wins"
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
