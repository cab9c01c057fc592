package modcatalog

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

// Memory is an immutable in-memory catalog. It is built once and only ever
// read afterwards; a refresh builds a new Memory instead of mutating this one.
type Memory struct {
	byAttribute map[string][]domain.ModTierEntry
	digest      string
	size        int
}

// NewMemory builds a catalog from tiers grouped by attribute type. Entries
// are copied and sorted by tier id so query results are deterministic.
func NewMemory(tiers map[string][]domain.ModTierEntry) *Memory {
	m := &Memory{byAttribute: make(map[string][]domain.ModTierEntry, len(tiers))}
	for attr, entries := range tiers {
		key := normalizeAttributeType(attr)
		for _, e := range entries {
			e.ValueRanges = slices.Clone(e.ValueRanges)
			e.Tags = slices.Clone(e.Tags)
			m.byAttribute[key] = append(m.byAttribute[key], e)
		}
		m.size += len(entries)
	}
	for key := range m.byAttribute {
		slices.SortStableFunc(m.byAttribute[key], func(a, b domain.ModTierEntry) int {
			return strings.Compare(a.TierID, b.TierID)
		})
	}
	return m
}

// FetchEligibleTiers implements Catalog.
func (m *Memory) FetchEligibleTiers(q Query) ([]domain.ModTierEntry, error) {
	entries := m.byAttribute[normalizeAttributeType(q.AttributeType)]
	if len(entries) == 0 || len(q.AffixTypes) == 0 {
		return nil, nil
	}

	var excluded map[string]struct{}
	if len(q.ExcludedTierIDs) > 0 {
		excluded = make(map[string]struct{}, len(q.ExcludedTierIDs))
		for _, id := range q.ExcludedTierIDs {
			excluded[id] = struct{}{}
		}
	}

	var eligible []domain.ModTierEntry
	for _, e := range entries {
		if e.ItemLevelRequirement > q.ItemLevel {
			continue
		}
		if !slices.Contains(q.AffixTypes, e.AffixType) {
			continue
		}
		if _, skip := excluded[e.TierID]; skip {
			continue
		}
		eligible = append(eligible, e)
	}
	return eligible, nil
}

// AttributeTypes lists the attribute types the catalog knows, sorted.
func (m *Memory) AttributeTypes() []string {
	types := make([]string, 0, len(m.byAttribute))
	for key := range m.byAttribute {
		types = append(types, key)
	}
	slices.Sort(types)
	return types
}

// Size is the total number of tier entries.
func (m *Memory) Size() int { return m.size }

// Digest is the sha256 of the source file when the catalog was loaded from
// disk, empty otherwise.
func (m *Memory) Digest() string { return m.digest }

// CheckHealth reports an empty catalog as unhealthy: every roll would fail.
func (m *Memory) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.size == 0 {
		return errors.New(ErrMsgEmptyCatalog)
	}
	return nil
}
