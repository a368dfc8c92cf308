package rewards

import "fmt"

// Rates is how many parts of each tier make one house.
type Rates map[Tier]int

// DefaultRates returns the standard exchange rates.
func DefaultRates() Rates {
	return Rates{
		TierWood:    10,
		TierStone:   10,
		TierIron:    5,
		TierGold:    3,
		TierDiamond: 2,
	}
}

// Houses is the display-only tally of houses built from parts.
type Houses struct {
	Wood    int
	Stone   int
	Iron    int
	Gold    int
	Diamond int
}

// Derive converts parts into houses by floor division per tier. A missing
// or non-positive rate yields zero houses for that tier. Parts are not
// consumed.
func (r Rates) Derive(parts Parts) Houses {
	div := func(t Tier) int {
		rate := r[t]
		if rate <= 0 || parts[t] <= 0 {
			return 0
		}
		return parts[t] / rate
	}
	return Houses{
		Wood:    div(TierWood),
		Stone:   div(TierStone),
		Iron:    div(TierIron),
		Gold:    div(TierGold),
		Diamond: div(TierDiamond),
	}
}

// DeriveHouses converts parts into houses with the default rates.
func DeriveHouses(parts Parts) Houses {
	return DefaultRates().Derive(parts)
}

// Count returns the number of houses of a tier.
func (h Houses) Count(t Tier) int {
	switch t {
	case TierWood:
		return h.Wood
	case TierStone:
		return h.Stone
	case TierIron:
		return h.Iron
	case TierGold:
		return h.Gold
	case TierDiamond:
		return h.Diamond
	default:
		return 0
	}
}

// Total returns the number of houses across all tiers.
func (h Houses) Total() int {
	return h.Wood + h.Stone + h.Iron + h.Gold + h.Diamond
}

// Lines renders one line per tier with at least one house, least
// precious first. Empty when nothing was built.
func (h Houses) Lines() []string {
	var lines []string
	for _, t := range AllTiers() {
		if n := h.Count(t); n > 0 {
			lines = append(lines, fmt.Sprintf("%s %s ×%d", t.HouseName(), t.HouseIcon(), n))
		}
	}
	return lines
}
