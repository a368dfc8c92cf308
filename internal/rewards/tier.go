package rewards

// Tier is a kind of building part earned by answering questions.
type Tier string

const (
	TierWood    Tier = "wood"
	TierStone   Tier = "stone"
	TierIron    Tier = "iron"
	TierGold    Tier = "gold"
	TierDiamond Tier = "diamond"
)

// AllTiers returns all tiers from least to most precious.
func AllTiers() []Tier {
	return []Tier{TierWood, TierStone, TierIron, TierGold, TierDiamond}
}

// DisplayName returns a human-readable label for the part.
func (t Tier) DisplayName() string {
	switch t {
	case TierWood:
		return "Wood"
	case TierStone:
		return "Stone"
	case TierIron:
		return "Iron Nails"
	case TierGold:
		return "Gold Ore"
	case TierDiamond:
		return "Diamond"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the part.
func (t Tier) Icon() string {
	switch t {
	case TierWood:
		return "🪵"
	case TierStone:
		return "🪨"
	case TierIron:
		return "🔩"
	case TierGold:
		return "🪙"
	case TierDiamond:
		return "💎"
	default:
		return "✦"
	}
}

// HouseName returns the name of the house built from this tier.
func (t Tier) HouseName() string {
	switch t {
	case TierWood:
		return "Wood Cabin"
	case TierStone:
		return "Stone House"
	case TierIron:
		return "Iron Fort"
	case TierGold:
		return "Gold Manor"
	case TierDiamond:
		return "Diamond Castle"
	default:
		return string(t) + " house"
	}
}

// HouseIcon returns the display icon for the house built from this tier.
func (t Tier) HouseIcon() string {
	switch t {
	case TierWood:
		return "🏠"
	case TierStone:
		return "🏚️"
	case TierIron:
		return "🏰"
	case TierGold:
		return "✨"
	case TierDiamond:
		return "💎"
	default:
		return "🏠"
	}
}

func tierRank(t Tier) int {
	for i, known := range AllTiers() {
		if t == known {
			return i
		}
	}
	return len(AllTiers())
}
