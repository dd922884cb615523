package snakebreak

// MenuItem is a selectable entry of the main or pause menu.
type MenuItem int

const (
	ItemStart MenuItem = iota
	ItemHighScores
	ItemSelectLevel
	ItemQuit
	ItemResume
	ItemRestartLevel
	ItemMainMenu
)

func (i MenuItem) String() string {
	switch i {
	case ItemStart:
		return "Start Game"
	case ItemHighScores:
		return "High Scores"
	case ItemSelectLevel:
		return "Select Level"
	case ItemQuit:
		return "Quit"
	case ItemResume:
		return "Resume"
	case ItemRestartLevel:
		return "Restart Level"
	case ItemMainMenu:
		return "Main Menu"
	default:
		return "?"
	}
}

var (
	mainMenuItems  = []MenuItem{ItemStart, ItemHighScores, ItemSelectLevel, ItemQuit}
	pauseMenuItems = []MenuItem{ItemResume, ItemRestartLevel, ItemMainMenu}
)

// cursor is a wrapping selection index over n entries.
type cursor struct {
	pos int
	n   int
}

func (c *cursor) reset(n int) {
	c.pos = 0
	c.n = n
}

func (c *cursor) up() {
	if c.n == 0 {
		return
	}
	c.pos = (c.pos - 1 + c.n) % c.n
}

func (c *cursor) down() {
	if c.n == 0 {
		return
	}
	c.pos = (c.pos + 1) % c.n
}
