package achievements

import "testing"

func TestRarityOrder(t *testing.T) {
	rarities := AllRarities()
	if len(rarities) != 4 {
		t.Fatalf("expected 4 rarities, got %d", len(rarities))
	}
	for i := 1; i < len(rarities); i++ {
		if !rarities[i-1].Less(rarities[i]) {
			t.Errorf("%s should rank below %s", rarities[i-1], rarities[i])
		}
	}
	if RarityLegendary.Less(RarityCommon) {
		t.Error("legendary should not rank below common")
	}
	if Rarity("mythic").Valid() {
		t.Error("unknown rarity should be invalid")
	}
}

func TestRarityDisplayName(t *testing.T) {
	tests := []struct {
		r    Rarity
		want string
	}{
		{RarityCommon, "Common"},
		{RarityRare, "Rare"},
		{RarityEpic, "Epic"},
		{RarityLegendary, "Legendary"},
		{Rarity("mythic"), "mythic"},
	}
	for _, tt := range tests {
		if got := tt.r.DisplayName(); got != tt.want {
			t.Errorf("%q.DisplayName() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestCategoryDisplayName(t *testing.T) {
	for _, c := range AllCategories() {
		if c.DisplayName() == string(c) {
			t.Errorf("category %q has no display name", c)
		}
	}
}
