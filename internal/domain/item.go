package domain

import (
	"fmt"
	"slices"
)

// ItemState is one concrete item instance being crafted on.
//
// The four modifier lists are authoritative: every slot count and
// removable/permanent projection is derived from them on demand.
type ItemState struct {
	Category      Category `json:"category"`
	AttributeType string   `json:"attribute_type"`
	ItemLevel     int      `json:"item_level"`
	Rarity        Rarity   `json:"rarity"`
	Quality       int      `json:"quality"`
	OpenSockets   int      `json:"open_sockets"`
	Corrupted     bool     `json:"corrupted"`
	Identified    bool     `json:"identified"`

	Implicit  []Modifier `json:"implicit,omitempty"`
	Enchant   []Modifier `json:"enchant,omitempty"`
	Fractured []Modifier `json:"fractured,omitempty"`
	Explicit  []Modifier `json:"explicit,omitempty"`
}

// Rarity is the item's rarity class. Its order matters: rarity only moves up.
type Rarity int

const (
	RarityNormal Rarity = iota
	RarityMagic
	RarityRare
	RarityUnique
)

var rarityNames = map[Rarity]string{
	RarityNormal: "normal",
	RarityMagic:  "magic",
	RarityRare:   "rare",
	RarityUnique: "unique",
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rarity(%d)", int(r))
}

// ParseRarity maps a wire name to a Rarity.
func ParseRarity(s string) (Rarity, error) {
	for r, name := range rarityNames {
		if name == s {
			return r, nil
		}
	}
	return RarityNormal, fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rarity) UnmarshalText(b []byte) error {
	parsed, err := ParseRarity(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// AffixCapacity returns how many prefixes (and, separately, suffixes) an
// item of this rarity may carry.
func (r Rarity) AffixCapacity() int {
	switch r {
	case RarityMagic:
		return MagicAffixCap
	case RarityRare:
		return RareAffixCap
	default:
		return 0
	}
}

// PrefixCount counts explicit and fractured prefixes. Fractured modifiers
// still occupy an affix slot.
func (it *ItemState) PrefixCount() int {
	return countAffix(it.Explicit, AffixPrefix) + countAffix(it.Fractured, AffixPrefix)
}

// SuffixCount counts explicit and fractured suffixes.
func (it *ItemState) SuffixCount() int {
	return countAffix(it.Explicit, AffixSuffix) + countAffix(it.Fractured, AffixSuffix)
}

// OpenPrefixSlots is the prefix capacity left for the item's rarity.
func (it *ItemState) OpenPrefixSlots() int {
	return max(0, it.Rarity.AffixCapacity()-it.PrefixCount())
}

// OpenSuffixSlots is the suffix capacity left for the item's rarity.
func (it *ItemState) OpenSuffixSlots() int {
	return max(0, it.Rarity.AffixCapacity()-it.SuffixCount())
}

// OpenSlots returns the open slot count for a single affix type.
func (it *ItemState) OpenSlots(a AffixType) int {
	switch a {
	case AffixPrefix:
		return it.OpenPrefixSlots()
	case AffixSuffix:
		return it.OpenSuffixSlots()
	default:
		return 0
	}
}

// OpenAffixTypes lists the affix types that still have at least one open slot,
// prefixes first.
func (it *ItemState) OpenAffixTypes() []AffixType {
	var open []AffixType
	if it.OpenPrefixSlots() > 0 {
		open = append(open, AffixPrefix)
	}
	if it.OpenSuffixSlots() > 0 {
		open = append(open, AffixSuffix)
	}
	return open
}

// RemovableModifiers returns the explicit, non-fractured modifiers.
func (it *ItemState) RemovableModifiers() []Modifier {
	return cloneModifiers(it.Explicit)
}

// PermanentModifiers returns the fractured modifiers.
func (it *ItemState) PermanentModifiers() []Modifier {
	return cloneModifiers(it.Fractured)
}

// AffixCount is the number of explicit plus fractured modifiers.
func (it *ItemState) AffixCount() int {
	return len(it.Explicit) + len(it.Fractured)
}

// MaxQuality is the quality ceiling: the base maximum plus any implicit
// modifier tagged as raising it.
func (it *ItemState) MaxQuality() int {
	maxQuality := BaseMaxQuality
	for _, m := range it.Implicit {
		if m.HasTag(TagMaxQuality) && len(m.SubValues) > 0 {
			maxQuality += int(m.SubValues[0])
		}
	}
	return maxQuality
}

// MaxSockets is the socket ceiling for the item's category.
func (it *ItemState) MaxSockets() int {
	return MaxSockets(it.Category)
}

// TierIDs returns the tier ids of every explicit and fractured modifier.
func (it *ItemState) TierIDs() []string {
	ids := make([]string, 0, it.AffixCount())
	for _, m := range it.Fractured {
		ids = append(ids, m.TierID)
	}
	for _, m := range it.Explicit {
		ids = append(ids, m.TierID)
	}
	return ids
}

// HasTier reports whether an explicit or fractured modifier uses the tier.
func (it *ItemState) HasTier(tierID string) bool {
	return slices.Contains(it.TierIDs(), tierID)
}

// Clone returns a deep copy. Applying an outcome always works on a clone.
func (it *ItemState) Clone() *ItemState {
	if it == nil {
		return nil
	}
	c := *it
	c.Implicit = cloneModifiers(it.Implicit)
	c.Enchant = cloneModifiers(it.Enchant)
	c.Fractured = cloneModifiers(it.Fractured)
	c.Explicit = cloneModifiers(it.Explicit)
	return &c
}

// Validate checks every ItemState invariant and returns an error wrapping
// ErrInvariantViolation for the first one broken.
func (it *ItemState) Validate() error {
	if !it.Category.Valid() {
		return fmt.Errorf("%w: unknown category %d", ErrInvariantViolation, it.Category)
	}
	if it.ItemLevel < 0 {
		return fmt.Errorf("%w: negative item level %d", ErrInvariantViolation, it.ItemLevel)
	}
	if it.Quality < 0 || it.Quality > it.MaxQuality() {
		return fmt.Errorf("%w: quality %d outside [0, %d]", ErrInvariantViolation, it.Quality, it.MaxQuality())
	}
	if it.OpenSockets < 0 || it.OpenSockets > it.MaxSockets() {
		return fmt.Errorf("%w: %d sockets outside [0, %d] for %s", ErrInvariantViolation, it.OpenSockets, it.MaxSockets(), it.Category)
	}

	// Deltas address affix modifiers by tier id, so each id may appear once.
	seen := make(map[string]bool, len(it.Explicit)+len(it.Fractured))
	for _, list := range [][]Modifier{it.Explicit, it.Fractured} {
		for _, m := range list {
			if m.AffixType != AffixPrefix && m.AffixType != AffixSuffix {
				return fmt.Errorf("%w: affix modifier %s has affix type %s", ErrInvariantViolation, m.TierID, m.AffixType)
			}
			if seen[m.TierID] {
				return fmt.Errorf("%w: duplicate affix tier %s", ErrInvariantViolation, m.TierID)
			}
			seen[m.TierID] = true
		}
	}

	// Uniques carry a fixed modifier set outside the affix caps.
	if it.Rarity == RarityUnique {
		return nil
	}

	capacity := it.Rarity.AffixCapacity()
	if n := it.PrefixCount(); n > capacity {
		return fmt.Errorf("%w: %d prefixes on %s item (cap %d)", ErrInvariantViolation, n, it.Rarity, capacity)
	}
	if n := it.SuffixCount(); n > capacity {
		return fmt.Errorf("%w: %d suffixes on %s item (cap %d)", ErrInvariantViolation, n, it.Rarity, capacity)
	}
	return nil
}

func countAffix(mods []Modifier, a AffixType) int {
	n := 0
	for _, m := range mods {
		if m.AffixType == a {
			n++
		}
	}
	return n
}
