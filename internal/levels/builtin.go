package levels

// Brick codes used by the built-in layouts:
//
//	S  standard brick
//	H  hard brick
//	P  power-up brick, always drops a power-up
var builtin = Set{
	{
		ID:   "level1",
		Name: "Warm Up",
		Rows: []string{
			"       ",
			" SSSSS ",
			" SSSSS ",
			" SSSSS ",
			"       ",
			"   P   ",
			"       ",
		},
	},
	{
		ID:   "level2",
		Name: "Fortress",
		Rows: []string{
			"HHHHHHH",
			"H     H",
			"H SSS H",
			"H SPH H",
			"H SSS H",
			"H     H",
			"HHHHHHH",
		},
	},
	{
		ID:   "level3",
		Name: "Checkers",
		Rows: []string{
			"P S H S P",
			" S H S H ",
			"H S H S H",
			" S H S H ",
			"P S H S P",
			"         ",
			"  SSSSS  ",
		},
	},
	{
		ID:   "level4",
		Name: "Diamond",
		Rows: []string{
			" S S S S ",
			"S H P H S",
			" S H H S ",
			"S H P H S",
			" S S S S ",
			"    P    ",
			"  HHHHH  ",
		},
	},
	{
		ID:   "level5",
		Name: "Corners",
		Rows: []string{
			"P H S H P",
			" H     H ",
			"S   S   S",
			" H     H ",
			"P H S H P",
			"   SSS   ",
			"  S H S  ",
		},
	},
}

// Builtin returns a copy of the levels shipped with the game.
func Builtin() Set {
	out := make(Set, len(builtin))
	for i, lvl := range builtin {
		lvl.Rows = append([]string(nil), lvl.Rows...)
		out[i] = lvl
	}
	return out
}
