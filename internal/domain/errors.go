package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidAction      = "invalid action"
	ErrMsgCatalogData        = "catalog data error"
	ErrMsgInvariantViolation = "item invariant violation"
	ErrMsgInvalidInput       = "invalid input"
)

// Engine errors. Wrap these with fmt.Errorf("...: %w", domain.ErrXxx) for
// context; callers branch on them with errors.Is.
//
// A failed action guard is not an error: it yields the no-op outcome.
var (
	// ErrInvalidAction is returned for an action id outside the registry.
	ErrInvalidAction = errors.New(ErrMsgInvalidAction)

	// ErrCatalogData means a mandatory roll found no eligible tiers. It points
	// at missing upstream catalog data, never at a legal game state.
	ErrCatalogData = errors.New(ErrMsgCatalogData)

	// ErrInvariantViolation means applying a delta would break an ItemState
	// invariant. Correct actions never produce it.
	ErrInvariantViolation = errors.New(ErrMsgInvariantViolation)

	// ErrInvalidInput covers malformed wire values (unknown rarity, category...).
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
