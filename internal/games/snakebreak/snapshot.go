package snakebreak

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Mode       int
	LevelIndex int
	Score      int
	MoveTicks  int

	// Paddle: direction, pending growth, then 2 ints per segment (X, Y)
	Direction   int
	GrowPending int
	PaddleData  []int

	// Ball: X, Y, VX, VY
	BallData []int

	// Bricks in build order, 1 if active
	BrickData []int

	// Each pickup is 3 ints: Type, X, Y
	PickupData []int

	// Each effect is 2 ints: Type, Remaining
	EffectData []int

	// Slow-ball stash: set flag, VX, VY
	StashData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	paddleData := make([]int, 0, g.paddle.Len()*2)
	for _, seg := range g.paddle.body {
		paddleData = append(paddleData, seg.X, seg.Y)
	}

	b := g.ball.Bounds()
	ballData := []int{b.X, b.Y, g.ball.VX, g.ball.VY}

	brickData := make([]int, g.field.Len())
	for i, brick := range g.field.bricks {
		if brick.Active {
			brickData[i] = 1
		}
	}

	pickupData := make([]int, 0, len(g.powerUps)*3)
	for _, pu := range g.powerUps {
		pickupData = append(pickupData, int(pu.Type), pu.Rect.X, pu.Rect.Y)
	}

	var effectData []int
	for _, t := range g.effects.Types() {
		effectData = append(effectData, int(t), g.effects.Remaining(t))
	}

	stash := 0
	if g.stash.set {
		stash = 1
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        int(g.mode),
		LevelIndex:  g.levelIndex,
		Score:       g.score,
		MoveTicks:   g.moveTicks,
		Direction:   int(g.paddle.direction),
		GrowPending: g.paddle.growPending,
		PaddleData:  paddleData,
		BallData:    ballData,
		BrickData:   brickData,
		PickupData:  pickupData,
		EffectData:  effectData,
		StashData:   []int{stash, g.stash.vx, g.stash.vy},
		RNGState:    g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MoveTicks)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GrowPending) //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.PaddleData, snap.BallData, snap.BrickData, snap.PickupData, snap.EffectData, snap.StashData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.RNGState

	return h
}
