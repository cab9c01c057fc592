package crafting

import (
	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/modcatalog"
	"github.com/rsnyderaustin/poe-craftsim/internal/utils"
)

const (
	attrMace   = "one hand mace"
	attrArmour = "strength body armour"
	attrFlask  = "life flask"
	attrRing   = "ring"

	testItemLevel = 80
)

// testTiers is a small pool shared by every attribute type in the test
// catalog. P4 and S4 are above testItemLevel and must never be offered.
func testTiers() []domain.ModTierEntry {
	return []domain.ModTierEntry{
		{TierID: "P1", AffixType: domain.AffixPrefix, ItemLevelRequirement: 1, Weight: 1000, ValueRanges: []domain.ValueRange{{Min: 10, Max: 20}}},
		{TierID: "P2", AffixType: domain.AffixPrefix, ItemLevelRequirement: 1, Weight: 1000, ValueRanges: []domain.ValueRange{{Min: 2, Max: 4}, {Min: 5, Max: 8}}},
		{TierID: "P3", AffixType: domain.AffixPrefix, ItemLevelRequirement: 30, Weight: 500, ValueRanges: []domain.ValueRange{{Min: 50, Max: 100}}},
		{TierID: "P4", AffixType: domain.AffixPrefix, ItemLevelRequirement: 82, Weight: 100, ValueRanges: []domain.ValueRange{{Min: 170, Max: 179}}},
		{TierID: "S1", AffixType: domain.AffixSuffix, ItemLevelRequirement: 1, Weight: 1000, ValueRanges: []domain.ValueRange{{Min: 5, Max: 7}}},
		{TierID: "S2", AffixType: domain.AffixSuffix, ItemLevelRequirement: 1, Weight: 1000, ValueRanges: []domain.ValueRange{{Min: 10, Max: 14}}},
		{TierID: "S3", AffixType: domain.AffixSuffix, ItemLevelRequirement: 20, Weight: 1000, ValueRanges: []domain.ValueRange{{Min: 0.5, Max: 1.5}}},
		{TierID: "S4", AffixType: domain.AffixSuffix, ItemLevelRequirement: 85, Weight: 200, ValueRanges: []domain.ValueRange{{Min: 46, Max: 48}}},
	}
}

func testCatalog() *modcatalog.Memory {
	return modcatalog.NewMemory(map[string][]domain.ModTierEntry{
		attrMace:   testTiers(),
		attrArmour: testTiers(),
		attrFlask:  testTiers(),
		attrRing:   testTiers(),
	})
}

func newTestService() Service {
	return NewService(testCatalog())
}

func testRNG(seed uint64) utils.RNG {
	return utils.NewRNG(seed)
}

// mod builds a modifier instance for a tier of testTiers with its value at
// the bottom of each range.
func mod(tierID string) domain.Modifier {
	for _, t := range testTiers() {
		if t.TierID != tierID {
			continue
		}
		m := domain.Modifier{TierID: t.TierID, AffixType: t.AffixType}
		for _, r := range t.ValueRanges {
			m.ValueRanges = append(m.ValueRanges, r)
			m.SubValues = append(m.SubValues, r.Min)
		}
		return m
	}
	panic("unknown test tier " + tierID)
}

func mods(tierIDs ...string) []domain.Modifier {
	out := make([]domain.Modifier, len(tierIDs))
	for i, id := range tierIDs {
		out[i] = mod(id)
	}
	return out
}

func newMace(rarity domain.Rarity, explicit ...string) *domain.ItemState {
	return &domain.ItemState{
		Category:      domain.CategoryOneHandMace,
		AttributeType: attrMace,
		ItemLevel:     testItemLevel,
		Rarity:        rarity,
		Identified:    true,
		Explicit:      mods(explicit...),
	}
}

func newBodyArmour(rarity domain.Rarity, quality int) *domain.ItemState {
	return &domain.ItemState{
		Category:      domain.CategoryBodyArmour,
		AttributeType: attrArmour,
		ItemLevel:     testItemLevel,
		Rarity:        rarity,
		Quality:       quality,
		Identified:    true,
	}
}

// reachableStates covers every rarity, the affix-slot corner cases and the
// non-weapon categories with their own currencies.
func reachableStates() map[string]*domain.ItemState {
	fractured := newMace(domain.RarityRare, "S1", "S2")
	fractured.Fractured = mods("P1")

	unidentified := newMace(domain.RarityRare)
	unidentified.Identified = false

	unidentifiedMagic := newMace(domain.RarityMagic)
	unidentifiedMagic.Identified = false

	unique := newMace(domain.RarityUnique, "P1", "P2", "S1", "S2")

	flask := &domain.ItemState{
		Category: domain.CategoryFlask, AttributeType: attrFlask, ItemLevel: testItemLevel,
		Rarity: domain.RarityMagic, Identified: true, Explicit: mods("P1"),
	}
	gem := &domain.ItemState{
		Category: domain.CategoryGem, AttributeType: attrRing, ItemLevel: testItemLevel,
		Rarity: domain.RarityNormal, Quality: 18, Identified: true,
	}
	ring := &domain.ItemState{
		Category: domain.CategoryRing, AttributeType: attrRing, ItemLevel: testItemLevel,
		Rarity: domain.RarityRare, Identified: true, Explicit: mods("P3", "S3"),
	}

	return map[string]*domain.ItemState{
		"normal mace":          newMace(domain.RarityNormal),
		"magic one prefix":     newMace(domain.RarityMagic, "P1"),
		"magic full":           newMace(domain.RarityMagic, "P1", "S1"),
		"rare empty":           newMace(domain.RarityRare),
		"rare three prefixes":  newMace(domain.RarityRare, "P1", "P2", "P3"),
		"rare full":            newMace(domain.RarityRare, "P1", "P2", "P3", "S1", "S2", "S3"),
		"rare fractured":       fractured,
		"rare unidentified":    unidentified,
		"magic unidentified":   unidentifiedMagic,
		"unique":               unique,
		"normal body armour":   newBodyArmour(domain.RarityNormal, 0),
		"rare body armour max": newBodyArmour(domain.RarityRare, 20),
		"magic flask":          flask,
		"normal gem":           gem,
		"rare ring":            ring,
	}
}

func countAffixes(mods []domain.Modifier, a domain.AffixType) int {
	n := 0
	for _, m := range mods {
		if m.AffixType == a {
			n++
		}
	}
	return n
}
