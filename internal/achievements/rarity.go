package achievements

// Rarity is an achievement's tier. Tiers are ordered.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// Rank returns the tier's position, or -1 for an unknown rarity.
func (r Rarity) Rank() int {
	for i, x := range AllRarities() {
		if x == r {
			return i
		}
	}
	return -1
}

// Less reports whether r is a lower tier than other.
func (r Rarity) Less(other Rarity) bool {
	return r.Rank() < other.Rank()
}

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	return r.Rank() >= 0
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// Category groups achievements in the gallery.
type Category string

const (
	CategoryMilestone   Category = "milestone"
	CategoryExcellence  Category = "excellence"
	CategoryConsistency Category = "consistency"
	CategoryExploration Category = "exploration"
	CategorySpecial     Category = "special"
	CategorySpeed       Category = "speed"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryMilestone, CategoryExcellence, CategoryConsistency,
		CategoryExploration, CategorySpecial, CategorySpeed,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMilestone:
		return "Milestone"
	case CategoryExcellence:
		return "Excellence"
	case CategoryConsistency:
		return "Consistency"
	case CategoryExploration:
		return "Exploration"
	case CategorySpecial:
		return "Special"
	case CategorySpeed:
		return "Speed"
	default:
		return string(c)
	}
}
