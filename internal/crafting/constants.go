package crafting

// ==================== Crafting Mechanics ====================

// Quality gained per application of a weapon/armour quality currency, by
// rarity. Flask and gem currencies use the flat amounts below instead.
const (
	QualityStepNormal = 5
	QualityStepMagic  = 2
	QualityStepRare   = 2
	QualityStepUnique = 2

	QualityStepFlask = 1
	QualityStepGem   = 5
)

// Modifier counts rolled by the multi-roll actions
const (
	MagicRollMin = 1
	MagicRollMax = 2
	RareRollMin  = 4
	RareRollMax  = 6
)

// ==================== Error Messages ====================

const (
	ErrMsgUnknownActionFmt  = "unknown action %q: %w"
	ErrMsgNilItem           = "item is nil: %w"
	ErrMsgInvalidItemFmt    = "input item: %w"
	ErrMsgFetchTiersFailed  = "failed to fetch eligible tiers: %w"
	ErrMsgPoolFmt           = "no eligible tiers for %q at item level %d (affixes %v): %w"
	ErrMsgUnnormalizedFmt   = "action %s returned outcomes summing to %v: %w"
	ErrMsgApplyOutcomeFmt   = "apply outcome of %s: %w"
	ErrMsgSampleOutcomeFmt  = "sample outcome of %s: %w"
	ErrMsgModifierAbsentFmt = "%w: modifier %q not present on item"
)
