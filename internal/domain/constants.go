package domain

// ==================== Affix Capacity ====================

// Per-rarity prefix (and, separately, suffix) capacity.
const (
	MagicAffixCap = 1
	RareAffixCap  = 3
)

// ==================== Quality ====================

// BaseMaxQuality is the quality ceiling before implicit modifiers raise it.
const BaseMaxQuality = 20

// TagMaxQuality marks an implicit modifier whose first sub-value raises the
// item's maximum quality.
const TagMaxQuality = "max_quality"

// ==================== Probability ====================

// ProbabilityTolerance bounds how far an outcome set may drift from summing
// to exactly 1.
const ProbabilityTolerance = 1e-9

// ==================== Actions ====================

// ActionID names one crafting action ("currency").
type ActionID string

// The closed action set. Registry order lives in the crafting package.
const (
	ActionArmourersScrap       ActionID = "armourers_scrap"
	ActionBlacksmithsWhetstone ActionID = "blacksmiths_whetstone"
	ActionArcanistsEtcher      ActionID = "arcanists_etcher"
	ActionGlassblowersBauble   ActionID = "glassblowers_bauble"
	ActionGemcuttersPrism      ActionID = "gemcutters_prism"
	ActionArtificersOrb        ActionID = "artificers_orb"
	ActionTransmutation        ActionID = "orb_of_transmutation"
	ActionAugmentation         ActionID = "orb_of_augmentation"
	ActionRegal                ActionID = "regal_orb"
	ActionAlchemy              ActionID = "orb_of_alchemy"
	ActionExalted              ActionID = "exalted_orb"
	ActionExaltedPrefix        ActionID = "exalted_orb_prefix"
	ActionExaltedSuffix        ActionID = "exalted_orb_suffix"
	ActionChaos                ActionID = "chaos_orb"
	ActionAnnulment            ActionID = "orb_of_annulment"
	ActionScouring             ActionID = "orb_of_scouring"
	ActionFracturing           ActionID = "fracturing_orb"
	ActionWisdom               ActionID = "scroll_of_wisdom"
	ActionDivine               ActionID = "divine_orb"
	ActionVaal                 ActionID = "vaal_orb"
)
