package achievements

import "time"

// Achievement is an authored achievement definition.
type Achievement struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
	Rarity      Rarity   `json:"rarity"`
	Category    Category `json:"category"`
	XPReward    int      `json:"xp_reward"`
	Predicate   string   `json:"predicate"`
}

// Unlock records an achievement transition to unlocked.
type Unlock struct {
	Achievement
	UnlockedAt time.Time
}

// Status is an achievement as shown in the gallery.
type Status struct {
	Achievement
	Unlocked   bool
	UnlockedAt time.Time
	Progress   int // 0-100
}
