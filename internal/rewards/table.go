package rewards

// Grant is an amount of one tier credited for an answer.
type Grant struct {
	Tier   Tier
	Amount int
}

// IsZero reports whether the grant credits nothing.
func (g Grant) IsZero() bool {
	return g.Tier == "" || g.Amount <= 0
}

// Table maps answer outcomes to grants.
type Table struct {
	// Consolation is credited for every incorrect answer regardless of
	// difficulty. A zero Grant disables it.
	Consolation Grant

	// ByDifficulty is credited for a correct answer at that difficulty.
	// Difficulties with no entry earn nothing.
	ByDifficulty map[int]Grant
}

// DefaultTable returns the standard reward table.
func DefaultTable() Table {
	return Table{
		Consolation: Grant{Tier: TierWood, Amount: 1},
		ByDifficulty: map[int]Grant{
			1: {Tier: TierWood, Amount: 2},
			2: {Tier: TierStone, Amount: 2},
			3: {Tier: TierIron, Amount: 1},
			4: {Tier: TierGold, Amount: 1},
			5: {Tier: TierDiamond, Amount: 1},
		},
	}
}

// Grant returns what an answer at the given difficulty earns. The boolean
// is false when nothing is credited.
func (t Table) Grant(difficulty int, correct bool) (Grant, bool) {
	g := t.Consolation
	if correct {
		var ok bool
		g, ok = t.ByDifficulty[difficulty]
		if !ok {
			return Grant{}, false
		}
	}
	if g.IsZero() {
		return Grant{}, false
	}
	return g, true
}

// Apply credits the grant for an answer to parts and returns it.
func (t Table) Apply(parts Parts, difficulty int, correct bool) (Grant, bool) {
	g, ok := t.Grant(difficulty, correct)
	if ok {
		parts.Add(g.Tier, g.Amount)
	}
	return g, ok
}
