package snakebreak

// Mode is the current screen of the game state machine.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
	ModeHighScores
	ModeLevelSelect
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main-menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game-over"
	case ModeHighScores:
		return "high-scores"
	case ModeLevelSelect:
		return "level-select"
	default:
		return "unknown"
	}
}

// Loss causes reported when a game ends.
const (
	CauseSelf     = "self collision"
	CauseWall     = "wall collision"
	CauseBallLost = "ball lost"
)
