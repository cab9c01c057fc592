package crafting

import (
	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

// Rarity upgrades and identification

func transmute(item *domain.ItemState, r roller) (domain.OutcomeSet, error) {
	if item.Rarity != domain.RarityNormal {
		return domain.NoOpOutcomeSet(), nil
	}
	base := domain.Delta{NewRarity: domain.RarityPtr(domain.RarityMagic)}
	if !item.Identified {
		base.Identify = true
	}
	return r.multiRoll(item, domain.RarityMagic, MagicRollMin, MagicRollMax, base)
}

func augment(item *domain.ItemState, r roller) (domain.OutcomeSet, error) {
	if item.Rarity != domain.RarityMagic {
		return domain.NoOpOutcomeSet(), nil
	}
	open := item.OpenAffixTypes()
	if len(open) == 0 {
		return domain.NoOpOutcomeSet(), nil
	}
	return r.enumerateRoll(item, open, item.TierIDs(), 1.0, domain.Delta{})
}

func regal(item *domain.ItemState, r roller) (domain.OutcomeSet, error) {
	if item.Rarity != domain.RarityMagic {
		return domain.NoOpOutcomeSet(), nil
	}

	upgraded := item.Clone()
	upgraded.Rarity = domain.RarityRare
	open := upgraded.OpenAffixTypes()
	base := domain.Delta{NewRarity: domain.RarityPtr(domain.RarityRare)}
	if len(open) == 0 {
		return domain.OutcomeSet{{Probability: 1.0, Delta: base}}, nil
	}
	return r.enumerateRoll(upgraded, open, upgraded.TierIDs(), 1.0, base)
}

func alchemy(item *domain.ItemState, r roller) (domain.OutcomeSet, error) {
	if item.Rarity != domain.RarityNormal {
		return domain.NoOpOutcomeSet(), nil
	}
	base := domain.Delta{NewRarity: domain.RarityPtr(domain.RarityRare)}
	if !item.Identified {
		base.Identify = true
	}
	return r.multiRoll(item, domain.RarityRare, RareRollMin, RareRollMax, base)
}

// identify reveals an unidentified item. Magic and rare items that carry no
// explicit modifiers yet roll their latent modifiers on reveal.
func identify(item *domain.ItemState, r roller) (domain.OutcomeSet, error) {
	if item.Identified {
		return domain.NoOpOutcomeSet(), nil
	}

	base := domain.Delta{Identify: true}
	if len(item.Explicit) > 0 {
		return domain.OutcomeSet{{Probability: 1.0, Delta: base}}, nil
	}

	switch item.Rarity {
	case domain.RarityMagic:
		return r.multiRoll(item, domain.RarityMagic, MagicRollMin, MagicRollMax, base)
	case domain.RarityRare:
		return r.multiRoll(item, domain.RarityRare, RareRollMin, RareRollMax, base)
	default:
		return domain.OutcomeSet{{Probability: 1.0, Delta: base}}, nil
	}
}
