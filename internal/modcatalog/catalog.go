// Package modcatalog provides the read-only mod/tier catalog the crafting
// engine rolls modifiers from.
package modcatalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

// Catalog answers eligibility queries. Implementations must be safe for
// concurrent reads and must never change the entries they have handed out;
// callers treat returned entries as read-only.
type Catalog interface {
	FetchEligibleTiers(q Query) ([]domain.ModTierEntry, error)
}

// Query selects the tiers that may be rolled on an item.
//
// ExcludedTierIDs lists tiers already present on the item. Callers that want
// to re-offer a tier (remove-and-reroll) simply leave it out.
type Query struct {
	AttributeType   string
	ItemLevel       int
	AffixTypes      []domain.AffixType
	ExcludedTierIDs []string
}

// normalizeAttributeType case-folds and trims an attribute type so lookups
// don't depend on how the upstream data spelled it. Casers are stateful, so
// each call builds its own.
func normalizeAttributeType(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
