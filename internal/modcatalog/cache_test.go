package modcatalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

type countingCatalog struct {
	inner Catalog
	calls int
	err   error
}

func (c *countingCatalog) FetchEligibleTiers(q Query) ([]domain.ModTierEntry, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.inner.FetchEligibleTiers(q)
}

func TestCached_MemoizesQueries(t *testing.T) {
	// ARRANGE
	inner := &countingCatalog{inner: NewMemory(sampleTiers())}
	cached, err := NewCached(inner, 8)
	require.NoError(t, err)

	q := Query{
		AttributeType:   "one hand mace",
		ItemLevel:       80,
		AffixTypes:      []domain.AffixType{domain.AffixSuffix, domain.AffixPrefix},
		ExcludedTierIDs: []string{"S1", "P2"},
	}
	reordered := Query{
		AttributeType:   "One Hand Mace",
		ItemLevel:       80,
		AffixTypes:      []domain.AffixType{domain.AffixPrefix, domain.AffixSuffix},
		ExcludedTierIDs: []string{"P2", "S1"},
	}

	// ACT
	first, err := cached.FetchEligibleTiers(q)
	require.NoError(t, err)
	second, err := cached.FetchEligibleTiers(reordered)
	require.NoError(t, err)

	// ASSERT
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"P1"}, tierIDs(first))
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1, Size: 1}, cached.Stats())

	q.ItemLevel = 5
	_, err = cached.FetchEligibleTiers(q)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCacheKey_SeparatorsInTierIDs(t *testing.T) {
	base := Query{AttributeType: "ring", ItemLevel: 10, AffixTypes: []domain.AffixType{domain.AffixPrefix}}

	tests := []struct {
		name string
		a, b []string
	}{
		{"comma joined", []string{"a,b"}, []string{"a", "b"}},
		{"pipe joined", []string{"a|b"}, []string{"a", "b"}},
		{"trailing comma", []string{"a,"}, []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qa, qb := base, base
			qa.ExcludedTierIDs = tt.a
			qb.ExcludedTierIDs = tt.b
			assert.NotEqual(t, cacheKey(qa), cacheKey(qb))
		})
	}
}

func TestCached_DistinctExclusionsMiss(t *testing.T) {
	tiers := map[string][]domain.ModTierEntry{
		"ring": {
			{TierID: "a,b", AffixType: domain.AffixPrefix, ItemLevelRequirement: 1, Weight: 10},
			{TierID: "a", AffixType: domain.AffixPrefix, ItemLevelRequirement: 1, Weight: 10},
			{TierID: "b", AffixType: domain.AffixPrefix, ItemLevelRequirement: 1, Weight: 10},
		},
	}
	inner := &countingCatalog{inner: NewMemory(tiers)}
	cached, err := NewCached(inner, 8)
	require.NoError(t, err)

	q := Query{AttributeType: "ring", ItemLevel: 10, AffixTypes: []domain.AffixType{domain.AffixPrefix}, ExcludedTierIDs: []string{"a,b"}}
	first, err := cached.FetchEligibleTiers(q)
	require.NoError(t, err)
	q.ExcludedTierIDs = []string{"a", "b"}
	second, err := cached.FetchEligibleTiers(q)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, tierIDs(first))
	assert.Equal(t, []string{"a,b"}, tierIDs(second))
	assert.Equal(t, 2, inner.calls)
}

func TestCached_DoesNotCacheErrors(t *testing.T) {
	boom := errors.New("backend down")
	inner := &countingCatalog{err: boom}
	cached, err := NewCached(inner, 0)
	require.NoError(t, err)

	q := Query{AttributeType: "ring", ItemLevel: 1, AffixTypes: []domain.AffixType{domain.AffixPrefix}}
	_, err = cached.FetchEligibleTiers(q)
	assert.ErrorIs(t, err, boom)
	_, err = cached.FetchEligibleTiers(q)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 0, cached.Stats().Size)
}

func TestCached_Evicts(t *testing.T) {
	cached, err := NewCached(NewMemory(sampleTiers()), 2)
	require.NoError(t, err)

	for lvl := 1; lvl <= 5; lvl++ {
		_, err := cached.FetchEligibleTiers(Query{AttributeType: "ring", ItemLevel: lvl, AffixTypes: []domain.AffixType{domain.AffixPrefix}})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cached.Stats().Size)
	assert.Equal(t, int64(5), cached.Stats().Misses)
}

func TestCheckHealth(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, NewMemory(sampleTiers()).CheckHealth(ctx))
	assert.EqualError(t, NewMemory(nil).CheckHealth(ctx), ErrMsgEmptyCatalog)

	cached, err := NewCached(NewMemory(nil), 0)
	require.NoError(t, err)
	assert.EqualError(t, cached.CheckHealth(ctx), ErrMsgEmptyCatalog)

	opaque, err := NewCached(&countingCatalog{}, 0)
	require.NoError(t, err)
	assert.NoError(t, opaque.CheckHealth(ctx))
}
