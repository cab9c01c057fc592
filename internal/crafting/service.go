package crafting

import (
	"fmt"
	"slices"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/modcatalog"
	"github.com/rsnyderaustin/poe-craftsim/internal/sampler"
	"github.com/rsnyderaustin/poe-craftsim/internal/utils"
)

// Result is one sampled application of an action
type Result struct {
	Action      domain.ActionID   `json:"action"`
	Outcomes    domain.OutcomeSet `json:"outcomes"`
	Chosen      domain.Outcome    `json:"chosen"`
	ChosenIndex int               `json:"chosen_index"`
	Item        *domain.ItemState `json:"item"`
	NoOp        bool              `json:"noop"`
}

// Service defines the interface for crafting operations
type Service interface {
	Actions() []ActionInfo
	Enumerate(item *domain.ItemState, id domain.ActionID, rng utils.RNG) (domain.OutcomeSet, error)
	Simulate(item *domain.ItemState, id domain.ActionID, rng utils.RNG) (*Result, error)
}

type service struct {
	catalog modcatalog.Catalog
}

// NewService creates a new crafting service. The catalog is shared read-only
// by every call; RNGs are passed per call so concurrent callers never share
// one.
func NewService(catalog modcatalog.Catalog) Service {
	return &service{catalog: catalog}
}

func (s *service) Actions() []ActionInfo {
	return Registry()
}

// Enumerate returns every outcome of applying id to item. The item is never
// modified.
func (s *service) Enumerate(item *domain.ItemState, id domain.ActionID, rng utils.RNG) (domain.OutcomeSet, error) {
	def, ok := lookupAction(id)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownActionFmt, id, domain.ErrInvalidAction)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrMsgNilItem, domain.ErrInvalidInput)
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidItemFmt, err)
	}

	// Corrupted items are terminal for every action.
	if item.Corrupted {
		return domain.NoOpOutcomeSet(), nil
	}

	set, err := def.apply(item, roller{catalog: s.catalog, rng: rng})
	if err != nil {
		return nil, err
	}
	if !set.IsNormalized() {
		return nil, fmt.Errorf(ErrMsgUnnormalizedFmt, id, set.TotalProbability(), domain.ErrInvariantViolation)
	}
	return set, nil
}

// Simulate enumerates, samples one outcome and applies it to a copy of item.
func (s *service) Simulate(item *domain.ItemState, id domain.ActionID, rng utils.RNG) (*Result, error) {
	set, err := s.Enumerate(item, id, rng)
	if err != nil {
		return nil, err
	}

	chosen, idx, err := sampler.SampleOutcome(set, rng)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSampleOutcomeFmt, id, err)
	}

	next, err := ApplyDelta(item, chosen.Delta)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgApplyOutcomeFmt, id, err)
	}

	return &Result{
		Action:      id,
		Outcomes:    set,
		Chosen:      chosen,
		ChosenIndex: idx,
		Item:        next,
		NoOp:        chosen.Delta.IsNoOp(),
	}, nil
}

// ApplyDelta returns a copy of item with d applied. The copy is validated
// before it is returned.
func ApplyDelta(item *domain.ItemState, d domain.Delta) (*domain.ItemState, error) {
	if item == nil {
		return nil, fmt.Errorf(ErrMsgNilItem, domain.ErrInvalidInput)
	}
	next := item.Clone()

	for _, m := range d.Removed {
		idx := explicitIndex(next, m.TierID)
		if idx < 0 {
			return nil, fmt.Errorf(ErrMsgModifierAbsentFmt, domain.ErrInvariantViolation, m.TierID)
		}
		next.Explicit = slices.Delete(next.Explicit, idx, idx+1)
	}

	if d.Fractured != nil {
		idx := explicitIndex(next, d.Fractured.TierID)
		if idx < 0 {
			return nil, fmt.Errorf(ErrMsgModifierAbsentFmt, domain.ErrInvariantViolation, d.Fractured.TierID)
		}
		next.Fractured = append(next.Fractured, next.Explicit[idx])
		next.Explicit = slices.Delete(next.Explicit, idx, idx+1)
	}

	for _, m := range d.Rerolled {
		idx := explicitIndex(next, m.TierID)
		if idx < 0 {
			return nil, fmt.Errorf(ErrMsgModifierAbsentFmt, domain.ErrInvariantViolation, m.TierID)
		}
		next.Explicit[idx] = m.Clone()
	}

	for _, m := range d.Added {
		next.Explicit = append(next.Explicit, m.Clone())
	}

	if d.NewRarity != nil {
		next.Rarity = *d.NewRarity
	}
	if d.NewQuality != nil {
		next.Quality = *d.NewQuality
	}
	if d.NewSocketCount != nil {
		next.OpenSockets = *d.NewSocketCount
	}
	if d.Identify {
		next.Identified = true
	}
	if d.Corrupt {
		next.Corrupted = true
	}

	if err := next.Validate(); err != nil {
		return nil, err
	}
	return next, nil
}

func explicitIndex(item *domain.ItemState, tierID string) int {
	return slices.IndexFunc(item.Explicit, func(m domain.Modifier) bool {
		return m.TierID == tierID
	})
}
