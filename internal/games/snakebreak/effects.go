package snakebreak

import "sort"

// EffectTimers tracks the remaining ticks of timed power-up effects.
// There is at most one entry per type.
type EffectTimers struct {
	remaining map[PowerUpType]int
}

// NewEffectTimers creates an empty registry.
func NewEffectTimers() *EffectTimers {
	return &EffectTimers{remaining: make(map[PowerUpType]int)}
}

// Arm sets the timer for t to ticks, replacing any running timer.
func (e *EffectTimers) Arm(t PowerUpType, ticks int) {
	e.remaining[t] = ticks
}

// Active reports whether t has a running timer.
func (e *EffectTimers) Active(t PowerUpType) bool {
	_, ok := e.remaining[t]
	return ok
}

// Remaining returns the ticks left for t, or 0 if it is not active.
func (e *EffectTimers) Remaining(t PowerUpType) int {
	return e.remaining[t]
}

// Len returns the number of active timers.
func (e *EffectTimers) Len() int {
	return len(e.remaining)
}

// Types returns the active types in ascending order.
func (e *EffectTimers) Types() []PowerUpType {
	types := make([]PowerUpType, 0, len(e.remaining))
	for t := range e.remaining {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Tick decrements every positive timer. Timers already at zero are removed
// and passed to expire, in ascending type order.
func (e *EffectTimers) Tick(expire func(PowerUpType)) {
	for _, t := range e.Types() {
		if e.remaining[t] > 0 {
			e.remaining[t]--
			continue
		}
		delete(e.remaining, t)
		if expire != nil {
			expire(t)
		}
	}
}

// Clear removes all timers without expiring them.
func (e *EffectTimers) Clear() {
	clear(e.remaining)
}
