package crafting

import (
	"slices"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/sampler"
)

// exalt adds one modifier to a rare item, restricted to the given affix
// types. Types without an open slot are dropped from the roll.
func exalt(allowed ...domain.AffixType) actionFunc {
	return func(item *domain.ItemState, r roller) (domain.OutcomeSet, error) {
		if item.Rarity != domain.RarityRare {
			return domain.NoOpOutcomeSet(), nil
		}

		var open []domain.AffixType
		for _, a := range item.OpenAffixTypes() {
			if slices.Contains(allowed, a) {
				open = append(open, a)
			}
		}
		if len(open) == 0 {
			return domain.NoOpOutcomeSet(), nil
		}
		return r.enumerateRoll(item, open, item.TierIDs(), 1.0, domain.Delta{})
	}
}

// chaos removes one removable modifier uniformly at random and rolls a
// replacement into whichever affix types then have room. The removed tier is
// not excluded from its own replacement roll.
func chaos(item *domain.ItemState, r roller) (domain.OutcomeSet, error) {
	if item.Rarity != domain.RarityRare {
		return domain.NoOpOutcomeSet(), nil
	}

	removable := item.RemovableModifiers()
	if len(removable) == 0 {
		open := item.OpenAffixTypes()
		if len(open) == 0 {
			return domain.NoOpOutcomeSet(), nil
		}
		return r.enumerateRoll(item, open, item.TierIDs(), 1.0, domain.Delta{})
	}

	branch := 1.0 / float64(len(removable))
	var set domain.OutcomeSet
	for i, m := range removable {
		after := item.Clone()
		after.Explicit = slices.Delete(after.Explicit, i, i+1)

		base := domain.Delta{Removed: []domain.Modifier{m}}
		outcomes, err := r.enumerateRoll(after, after.OpenAffixTypes(), after.TierIDs(), branch, base)
		if err != nil {
			return nil, err
		}
		set = append(set, outcomes...)
	}
	return set, nil
}

func annul(item *domain.ItemState, _ roller) (domain.OutcomeSet, error) {
	if item.Rarity != domain.RarityMagic && item.Rarity != domain.RarityRare {
		return domain.NoOpOutcomeSet(), nil
	}
	removable := item.RemovableModifiers()
	if len(removable) == 0 {
		return domain.NoOpOutcomeSet(), nil
	}

	p := 1.0 / float64(len(removable))
	set := make(domain.OutcomeSet, len(removable))
	for i, m := range removable {
		set[i] = domain.Outcome{Probability: p, Delta: domain.Delta{Removed: []domain.Modifier{m}}}
	}
	return set, nil
}

// scour strips every removable modifier. The item stays rare.
func scour(item *domain.ItemState, _ roller) (domain.OutcomeSet, error) {
	if item.Rarity != domain.RarityRare {
		return domain.NoOpOutcomeSet(), nil
	}
	removable := item.RemovableModifiers()
	if len(removable) == 0 {
		return domain.NoOpOutcomeSet(), nil
	}
	return domain.OutcomeSet{{Probability: 1.0, Delta: domain.Delta{Removed: removable}}}, nil
}

func fracture(item *domain.ItemState, _ roller) (domain.OutcomeSet, error) {
	if item.Rarity != domain.RarityMagic && item.Rarity != domain.RarityRare {
		return domain.NoOpOutcomeSet(), nil
	}
	if len(item.Fractured) > 0 || len(item.Explicit) == 0 {
		return domain.NoOpOutcomeSet(), nil
	}

	candidates := item.RemovableModifiers()
	p := 1.0 / float64(len(candidates))
	set := make(domain.OutcomeSet, len(candidates))
	for i := range candidates {
		set[i] = domain.Outcome{Probability: p, Delta: domain.Delta{Fractured: &candidates[i]}}
	}
	return set, nil
}

// divine redraws the sub-values of every explicit modifier that has ranges.
func divine(item *domain.ItemState, r roller) (domain.OutcomeSet, error) {
	var rerolled []domain.Modifier
	for _, m := range item.Explicit {
		if m.Rerollable() {
			rerolled = append(rerolled, sampler.Reroll(m, r.rng))
		}
	}
	if len(rerolled) == 0 {
		return domain.NoOpOutcomeSet(), nil
	}
	return domain.OutcomeSet{{Probability: 1.0, Delta: domain.Delta{Rerolled: rerolled}}}, nil
}

func corrupt(item *domain.ItemState, _ roller) (domain.OutcomeSet, error) {
	if item.Corrupted {
		return domain.NoOpOutcomeSet(), nil
	}
	return domain.OutcomeSet{{Probability: 1.0, Delta: domain.Delta{Corrupt: true}}}, nil
}
