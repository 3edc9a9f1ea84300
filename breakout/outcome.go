package breakout

// Outcome is the result of a single simulation step.
type Outcome uint8

const (
	Continue Outcome = iota
	BrickDestroyed
	GameWon
	GameLost
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case BrickDestroyed:
		return "brick-destroyed"
	case GameWon:
		return "won"
	case GameLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the outcome ends the game.
func (o Outcome) Over() bool {
	return o == GameWon || o == GameLost
}
