package crafting

import (
	"fmt"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/modcatalog"
	"github.com/rsnyderaustin/poe-craftsim/internal/sampler"
	"github.com/rsnyderaustin/poe-craftsim/internal/utils"
)

// roller bundles the two injected collaborators every action rolls with.
type roller struct {
	catalog modcatalog.Catalog
	rng     utils.RNG
}

// pool fetches the tiers rollable on item for the given affix types.
func (r roller) pool(item *domain.ItemState, affixes []domain.AffixType, excluded []string) ([]domain.ModTierEntry, error) {
	tiers, err := r.catalog.FetchEligibleTiers(modcatalog.Query{
		AttributeType:   item.AttributeType,
		ItemLevel:       item.ItemLevel,
		AffixTypes:      affixes,
		ExcludedTierIDs: excluded,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchTiersFailed, err)
	}
	return tiers, nil
}

// enumerateRoll returns one outcome per tier eligible for a single new
// modifier, each weighted branch × weight/Σweights and carrying base plus the
// rolled modifier. An empty pool is a catalog data error.
func (r roller) enumerateRoll(item *domain.ItemState, affixes []domain.AffixType, excluded []string, branch float64, base domain.Delta) (domain.OutcomeSet, error) {
	tiers, err := r.pool(item, affixes, excluded)
	if err != nil {
		return nil, err
	}

	dist, err := sampler.Distribution(tiers)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPoolFmt, item.AttributeType, item.ItemLevel, affixes, err)
	}

	set := make(domain.OutcomeSet, 0, len(dist))
	for _, w := range dist {
		delta := cloneDelta(base)
		delta.Added = append(delta.Added, sampler.RollModifier(w.Entry, r.rng))
		set = append(set, domain.Outcome{Probability: branch * w.Probability, Delta: delta})
	}
	return set, nil
}

// rollSequence rolls n modifiers one after another onto a scratch copy of
// item at the given rarity. Each roll draws from the affix types that still
// have room and excludes every tier already present, including the ones
// rolled earlier in the sequence.
func (r roller) rollSequence(item *domain.ItemState, rarity domain.Rarity, n int) ([]domain.Modifier, error) {
	scratch := item.Clone()
	scratch.Rarity = rarity

	added := make([]domain.Modifier, 0, n)
	for len(added) < n {
		open := scratch.OpenAffixTypes()
		if len(open) == 0 {
			break
		}

		tiers, err := r.pool(scratch, open, scratch.TierIDs())
		if err != nil {
			return nil, err
		}
		entry, err := sampler.Pick(tiers, r.rng)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgPoolFmt, item.AttributeType, item.ItemLevel, open, err)
		}

		mod := sampler.RollModifier(entry, r.rng)
		scratch.Explicit = append(scratch.Explicit, mod)
		added = append(added, mod)
	}
	return added, nil
}

// multiRoll builds one outcome per modifier count in [minCount, maxCount],
// uniformly weighted. Each branch's modifiers are drawn with the RNG:
// enumerating every combination of several weighted rolls is intractable.
func (r roller) multiRoll(item *domain.ItemState, rarity domain.Rarity, minCount, maxCount int, base domain.Delta) (domain.OutcomeSet, error) {
	branches := maxCount - minCount + 1
	set := make(domain.OutcomeSet, 0, branches)
	for n := minCount; n <= maxCount; n++ {
		mods, err := r.rollSequence(item, rarity, n)
		if err != nil {
			return nil, err
		}
		delta := cloneDelta(base)
		delta.Added = append(delta.Added, mods...)
		set = append(set, domain.Outcome{Probability: 1.0 / float64(branches), Delta: delta})
	}
	return set, nil
}

func cloneDelta(d domain.Delta) domain.Delta {
	out := d
	out.Added = cloneMods(d.Added)
	out.Removed = cloneMods(d.Removed)
	out.Rerolled = cloneMods(d.Rerolled)
	if d.Fractured != nil {
		m := d.Fractured.Clone()
		out.Fractured = &m
	}
	return out
}

func cloneMods(mods []domain.Modifier) []domain.Modifier {
	if mods == nil {
		return nil
	}
	out := make([]domain.Modifier, len(mods))
	for i, m := range mods {
		out[i] = m.Clone()
	}
	return out
}
