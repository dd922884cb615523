// Package snakebreak implements the SnakeBreak simulation: a snake-shaped
// paddle, a bouncing ball, a brick field with power-up drops, and the menu
// state machine around them. The package is pure logic with no terminal or
// rendering dependencies; one Step call advances exactly one fixed tick.
package snakebreak

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakebreak/internal/config"
	"github.com/vovakirdan/snakebreak/internal/core"
	"github.com/vovakirdan/snakebreak/internal/levels"
	"github.com/vovakirdan/snakebreak/internal/scores"
)

// velocityStash holds the ball velocity from before SlowBall halved it.
type velocityStash struct {
	vx, vy int
	set    bool
}

// Game is the complete game state. It exclusively owns every entity; all of
// them are rebuilt together whenever a level is loaded.
type Game struct {
	cfg    config.Config
	levels []levels.Level
	tiers  TierSet
	layout Layout
	store  scores.Store
	logger *log.Logger
	rng    *core.RNG
	seed   int64

	mode       Mode
	prevMode   Mode
	levelIndex int
	score      int
	moveTicks  int
	tick       uint64

	paddle   *Paddle
	ball     *Ball
	field    *BrickField
	powerUps []*PowerUp
	effects  *EffectTimers
	stash    velocityStash

	board     *scores.Board
	menu      cursor
	levelMenu cursor
	lastCause string
	lastRank  int
	quit      bool
}

// New creates a game from validated configuration. An empty level source
// falls back to the built-in levels; a nil store keeps scores in memory; a
// nil logger discards output. The stored board is loaded once here, and a
// load failure starts an empty board.
func New(cfg config.Config, src levels.Source, store scores.Store, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store == nil {
		store = &scores.MemoryStore{}
	}

	var lvls []levels.Level
	if src != nil {
		lvls = src.Levels()
	}
	if len(lvls) == 0 {
		logger.Warn("no levels available, using built-in levels")
		lvls = levels.Builtin()
	}

	entries, err := store.Load()
	if err != nil {
		logger.Warn("could not load high scores, starting empty", "error", err)
		entries = nil
	}

	g := &Game{
		cfg:     cfg,
		levels:  lvls,
		tiers:   NewTierSet(cfg.Tiers, logger),
		layout:  LayoutFromConfig(cfg.Bricks),
		store:   store,
		logger:  logger,
		effects: NewEffectTimers(),
		board:   scores.NewBoard(cfg.Scores.MaxEntries, entries),
	}
	g.Reset(core.RuntimeConfig{TickRate: cfg.Play.TickRate})
	return g
}

// ID returns the game identifier used for logs and storage.
func (g *Game) ID() string { return "snakebreak" }

// Title returns the display name.
func (g *Game) Title() string { return "SnakeBreak" }

// Reset returns to the main menu with level 0 preloaded. The seed drives
// power-up placement, so equal seeds and inputs replay identically.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.Seed
	g.rng = core.NewRNG(rc.Seed)
	g.tick = 0
	g.score = 0
	g.quit = false
	g.lastCause = ""
	g.lastRank = -1
	g.mode = ModeMainMenu
	g.prevMode = ModeMainMenu
	g.menu.reset(len(mainMenuItems))
	g.levelMenu.reset(len(g.levels))
	g.loadLevel(0)
}

// Step advances the game by one tick. Input is applied before any simulation
// runs in the same tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	switch g.mode {
	case ModeMainMenu:
		g.stepMainMenu(in)
	case ModeHighScores:
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
			g.mode = ModeMainMenu
		}
	case ModeLevelSelect:
		g.stepLevelSelect(in)
	case ModePlaying:
		g.stepPlaying(in)
	case ModePaused:
		g.stepPaused(in)
	case ModeGameOver:
		g.stepGameOver(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepMainMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.menu.up()
	case in.Has(core.ActionDown):
		g.menu.down()
	case in.Has(core.ActionConfirm):
		switch mainMenuItems[g.menu.pos] {
		case ItemStart:
			g.startGame(0)
		case ItemHighScores:
			g.mode = ModeHighScores
		case ItemSelectLevel:
			g.mode = ModeLevelSelect
		case ItemQuit:
			g.quit = true
		}
	}
}

func (g *Game) stepLevelSelect(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.mode = ModeMainMenu
	case in.Has(core.ActionUp), in.Has(core.ActionLeft):
		g.levelMenu.up()
	case in.Has(core.ActionDown), in.Has(core.ActionRight):
		g.levelMenu.down()
	case in.Has(core.ActionConfirm):
		g.startGame(g.levelMenu.pos)
	}
}

func (g *Game) stepPaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause), in.Has(core.ActionBack):
		g.resume()
	case in.Has(core.ActionUp):
		g.menu.up()
	case in.Has(core.ActionDown):
		g.menu.down()
	case in.Has(core.ActionConfirm):
		switch pauseMenuItems[g.menu.pos] {
		case ItemResume:
			g.resume()
		case ItemRestartLevel:
			score := g.score
			g.loadLevel(g.levelIndex)
			g.score = score
			g.mode = ModePlaying
		case ItemMainMenu:
			g.toMainMenu()
		}
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
		g.startGame(0)
	case in.Has(core.ActionBack):
		g.toMainMenu()
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
		g.prevMode = g.mode
		g.mode = ModePaused
		g.menu.reset(len(pauseMenuItems))
		return
	}
	if d, ok := directionFromInput(in); ok {
		g.paddle.HandleDirectionInput(d)
	}
	g.update()
}

// update runs one simulation tick. The order is fixed: paddle, power-ups,
// effect timers, ball, score, level clear, loss.
func (g *Game) update() {
	width, height := g.cfg.Play.Width, g.cfg.Play.Height

	g.moveTicks++
	if g.moveTicks >= g.cfg.Paddle.MoveEveryTicks {
		g.paddle.Move()
		g.moveTicks = 0
	}

	g.stepPowerUps()
	g.effects.Tick(g.deactivate)

	points, spawned := g.ball.Step(width, height, g.paddle.body, g.field)
	g.powerUps = append(g.powerUps, spawned...)
	g.score += points

	if g.field.Cleared() {
		next := (g.levelIndex + 1) % len(g.levels)
		g.logger.Info("level cleared", "level", g.levelIndex+1, "next", next+1, "score", g.score)
		g.loadLevel(next)
		return
	}

	if cause := g.lossCause(); cause != "" {
		g.endGame(cause)
	}
}

// stepPowerUps moves every pickup, drops the ones that left the field, and
// collects the ones touching the paddle head.
func (g *Game) stepPowerUps() {
	field := g.Bounds()
	head := g.paddle.Head()

	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		pu.Step(field)
		if !pu.Alive {
			continue
		}
		if head.Intersects(pu.Rect) {
			pu.Alive = false
			g.activate(pu.Type)
			continue
		}
		kept = append(kept, pu)
	}
	clear(g.powerUps[len(kept):])
	g.powerUps = kept
}

// activate applies a collected power-up.
func (g *Game) activate(t PowerUpType) {
	switch t {
	case WiderPaddle:
		g.paddle.Grow(g.cfg.PowerUps.WiderPaddleGrowth)
	case SlowBall:
		if !g.effects.Active(SlowBall) {
			vx, vy := g.ball.Velocity()
			if !g.stash.set {
				g.stash = velocityStash{vx: vx, vy: vy, set: true}
			}
			g.ball.SetVelocity(halve(vx), halve(vy))
		}
		g.effects.Arm(SlowBall, g.cfg.PowerUps.SlowBallDuration)
	}
	g.logger.Debug("power-up collected", "type", t)
}

// deactivate undoes an expired timed effect.
func (g *Game) deactivate(t PowerUpType) {
	if t == SlowBall && g.stash.set {
		g.ball.SetVelocity(g.stash.vx, g.stash.vy)
		g.stash = velocityStash{}
	}
}

// halve divides a velocity component by two, rounding toward negative
// infinity, and keeps a moving axis moving.
func halve(v int) int {
	h := v / 2
	if v < 0 && v%2 != 0 {
		h--
	}
	if h == 0 && v != 0 {
		return core.Sign(v)
	}
	return h
}

// lossCause returns why the game is lost, or "" if play continues.
func (g *Game) lossCause() string {
	width, height := g.cfg.Play.Width, g.cfg.Play.Height
	switch {
	case g.paddle.CheckSelfCollision():
		return CauseSelf
	case g.paddle.CheckWallCollision(width, height):
		return CauseWall
	case g.ball.Bounds().Y > height:
		return CauseBallLost
	default:
		return ""
	}
}

// endGame records the score and switches to the game-over screen. Storage
// failures are logged and never block the transition.
func (g *Game) endGame(cause string) {
	g.mode = ModeGameOver
	g.lastCause = cause
	name := g.cfg.Scores.PlayerName
	g.lastRank = g.board.Add(name, g.score)

	g.logger.Info("game over", "cause", cause, "score", g.score, "level", g.levelIndex+1, "rank", g.lastRank+1)

	if err := g.store.Save(g.board.Entries()); err != nil {
		g.logger.Error("failed to save high scores", "error", err)
	}
	if rec, ok := g.store.(scores.Recorder); ok {
		r := scores.Result{Name: name, Score: g.score, Level: g.levelIndex, Cause: cause}
		if err := rec.Record(r); err != nil {
			g.logger.Warn("failed to record game", "error", err)
		}
	}
}

func (g *Game) resume() {
	g.mode = g.prevMode
}

func (g *Game) toMainMenu() {
	g.mode = ModeMainMenu
	g.menu.reset(len(mainMenuItems))
	g.loadLevel(0)
}

// startGame begins a fresh session at the given level with score 0.
func (g *Game) startGame(level int) {
	g.score = 0
	g.lastCause = ""
	g.lastRank = -1
	g.loadLevel(level)
	g.mode = ModePlaying
}

// loadLevel replaces every entity with a fresh set for level i.
func (g *Game) loadLevel(i int) {
	if i < 0 || i >= len(g.levels) {
		i = 0
	}
	g.levelIndex = i
	width, height := g.cfg.Play.Width, g.cfg.Play.Height

	g.field = NewBrickField(g.levels[i], width, g.layout, g.tiers, g.cfg.PowerUps, g.rng, g.logger)

	pc := g.cfg.Paddle
	g.paddle = NewPaddle(width/2, height-pc.OffsetBottom, pc.SegmentSize, pc.Length)

	bc := g.cfg.Ball
	head := g.paddle.Head()
	g.ball = NewBall(width/2, head.Y-bc.Radius-bc.Gap, bc.Radius, bc.SpeedX, bc.SpeedY)

	g.powerUps = nil
	g.effects.Clear()
	g.stash = velocityStash{}
	g.moveTicks = 0
}

// State returns the status summary used by the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.mode == ModeGameOver,
		Paused:   g.mode == ModePaused,
		Quit:     g.quit,
	}
}

// Bounds returns the play field in world units.
func (g *Game) Bounds() core.Rect {
	return core.NewRect(0, 0, g.cfg.Play.Width, g.cfg.Play.Height)
}

// TickRate returns the configured ticks per second.
func (g *Game) TickRate() int { return g.cfg.Play.TickRate }

// Mode returns the current mode.
func (g *Game) Mode() Mode { return g.mode }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Tick returns the number of Step calls since Reset.
func (g *Game) Tick() uint64 { return g.tick }

// LevelIndex returns the zero-based index of the loaded level.
func (g *Game) LevelIndex() int { return g.levelIndex }

// Levels returns the playable levels in order.
func (g *Game) Levels() []levels.Level { return g.levels }

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Ball returns the ball.
func (g *Game) Ball() *Ball { return g.ball }

// Field returns the brick field.
func (g *Game) Field() *BrickField { return g.field }

// PowerUps returns the falling pickups.
func (g *Game) PowerUps() []*PowerUp { return g.powerUps }

// Effects returns the running effect timers.
func (g *Game) Effects() *EffectTimers { return g.effects }

// HighScores returns the ranked board.
func (g *Game) HighScores() []scores.Entry { return g.board.Entries() }

// LastRank returns the board rank of the last finished game, or -1.
func (g *Game) LastRank() int { return g.lastRank }

// LastCause returns why the last game ended.
func (g *Game) LastCause() string { return g.lastCause }

// MenuItems returns the entries of the active menu, if any.
func (g *Game) MenuItems() []MenuItem {
	switch g.mode {
	case ModeMainMenu:
		return mainMenuItems
	case ModePaused:
		return pauseMenuItems
	default:
		return nil
	}
}

// MenuCursor returns the highlighted entry of the active menu.
func (g *Game) MenuCursor() int { return g.menu.pos }

// LevelCursor returns the highlighted level on the level-select screen.
func (g *Game) LevelCursor() int { return g.levelMenu.pos }
