package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	rc := DefaultConfig()
	if rc.ScreenW != 80 || rc.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", rc.ScreenW, rc.ScreenH)
	}
	if rc.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", rc.TickRate)
	}
	if rc.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 (seed from clock)", rc.Seed)
	}
}
