// Package sampler implements weighted tier selection and outcome sampling.
//
// Every function takes the RNG explicitly; nothing here reads a global
// generator, so parallel simulations stay reproducible.
package sampler

import (
	"errors"
	"fmt"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/utils"
)

// ErrEmptyOutcomeSet is returned when sampling from a set with no outcomes.
var ErrEmptyOutcomeSet = errors.New("empty outcome set")

// Weighted pairs a tier with its selection probability inside its pool.
type Weighted struct {
	Entry       domain.ModTierEntry
	Probability float64
}

// Distribution returns every tier with probability weight/Σweights, in input
// order. An empty pool, or one whose weights sum to zero, is a catalog data
// error: the caller needed a roll and the catalog had nothing to offer.
func Distribution(tiers []domain.ModTierEntry) ([]Weighted, error) {
	total := totalWeight(tiers)
	if total <= 0 {
		return nil, fmt.Errorf("%w: no rollable tiers in pool of %d", domain.ErrCatalogData, len(tiers))
	}

	dist := make([]Weighted, 0, len(tiers))
	for _, t := range tiers {
		if t.Weight <= 0 {
			continue
		}
		dist = append(dist, Weighted{Entry: t, Probability: t.Weight / total})
	}
	return dist, nil
}

// Pick draws one tier with probability proportional to its weight.
func Pick(tiers []domain.ModTierEntry, rng utils.RNG) (domain.ModTierEntry, error) {
	weights := make([]float64, len(tiers))
	for i, t := range tiers {
		weights[i] = t.Weight
	}

	idx := utils.SelectCumulative(utils.CumulativeWeights(weights), rng.Float64())
	if idx < 0 {
		return domain.ModTierEntry{}, fmt.Errorf("%w: no rollable tiers in pool of %d", domain.ErrCatalogData, len(tiers))
	}
	return tiers[idx], nil
}

// RollValue draws a sub-value uniformly from r. Ranges with integral bounds
// produce integers, inclusive of both ends.
func RollValue(r domain.ValueRange, rng utils.RNG) float64 {
	if utils.IsIntegral(r.Min) && utils.IsIntegral(r.Max) {
		return float64(utils.RandomInt(rng, int(r.Min), int(r.Max)))
	}
	return utils.RandomFloat(rng, r.Min, r.Max)
}

// RollModifier instantiates a tier: each sub-value is drawn independently at
// the moment the tier is selected.
func RollModifier(entry domain.ModTierEntry, rng utils.RNG) domain.Modifier {
	mod := domain.Modifier{
		TierID:    entry.TierID,
		AffixType: entry.AffixType,
	}
	if len(entry.ValueRanges) > 0 {
		mod.ValueRanges = make([]domain.ValueRange, len(entry.ValueRanges))
		mod.SubValues = make([]float64, len(entry.ValueRanges))
		for i, r := range entry.ValueRanges {
			mod.ValueRanges[i] = r
			mod.SubValues[i] = RollValue(r, rng)
		}
	}
	if len(entry.Tags) > 0 {
		mod.ModTags = append([]string(nil), entry.Tags...)
	}
	return mod
}

// Reroll redraws every sub-value of mod from its own ranges. Modifiers
// without complete ranges come back unchanged.
func Reroll(mod domain.Modifier, rng utils.RNG) domain.Modifier {
	out := mod.Clone()
	if !out.Rerollable() {
		return out
	}
	for i, r := range out.ValueRanges {
		out.SubValues[i] = RollValue(r, rng)
	}
	return out
}

// Normalize rescales probabilities so they sum to 1. A set with no positive
// mass is returned unchanged.
func Normalize(set domain.OutcomeSet) domain.OutcomeSet {
	total := set.TotalProbability()
	if total <= 0 {
		return set
	}
	out := make(domain.OutcomeSet, len(set))
	for i, o := range set {
		o.Probability /= total
		out[i] = o
	}
	return out
}

// SampleOutcome draws one outcome proportional to its probability and
// returns it with its index in the set.
func SampleOutcome(set domain.OutcomeSet, rng utils.RNG) (domain.Outcome, int, error) {
	if len(set) == 0 {
		return domain.Outcome{}, -1, ErrEmptyOutcomeSet
	}
	if len(set) == 1 {
		return set[0], 0, nil
	}

	weights := make([]float64, len(set))
	for i, o := range set {
		weights[i] = o.Probability
	}
	idx := utils.SelectCumulative(utils.CumulativeWeights(weights), rng.Float64())
	if idx < 0 {
		return domain.Outcome{}, -1, fmt.Errorf("%w: outcome probabilities sum to zero", ErrEmptyOutcomeSet)
	}
	return set[idx], idx, nil
}

func totalWeight(tiers []domain.ModTierEntry) float64 {
	total := 0.0
	for _, t := range tiers {
		if t.Weight > 0 {
			total += t.Weight
		}
	}
	return total
}
