package domain

import (
	"fmt"
	"slices"
)

// AffixType says which slot family a modifier occupies.
type AffixType int

const (
	AffixNone AffixType = iota
	AffixPrefix
	AffixSuffix
)

func (a AffixType) String() string {
	switch a {
	case AffixPrefix:
		return "prefix"
	case AffixSuffix:
		return "suffix"
	default:
		return "none"
	}
}

// ParseAffixType maps "prefix", "suffix" or "none" to an AffixType.
func ParseAffixType(s string) (AffixType, error) {
	switch s {
	case "prefix":
		return AffixPrefix, nil
	case "suffix":
		return AffixSuffix, nil
	case "none", "":
		return AffixNone, nil
	default:
		return AffixNone, fmt.Errorf("%w: unknown affix type %q", ErrInvalidInput, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a AffixType) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AffixType) UnmarshalText(b []byte) error {
	parsed, err := ParseAffixType(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ValueRange is the inclusive [Min, Max] a sub-value is rolled from.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the range.
func (r ValueRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Modifier is one rolled modifier instance owned by a single item.
type Modifier struct {
	TierID      string       `json:"tier_id"`
	AffixType   AffixType    `json:"affix_type"`
	SubValues   []float64    `json:"sub_values,omitempty"`
	ValueRanges []ValueRange `json:"value_ranges,omitempty"`
	ModTags     []string     `json:"mod_tags,omitempty"`
}

// HasTag reports whether the modifier carries tag.
func (m Modifier) HasTag(tag string) bool {
	return slices.Contains(m.ModTags, tag)
}

// Rerollable reports whether every sub-value has a range to redraw from.
func (m Modifier) Rerollable() bool {
	return len(m.ValueRanges) > 0 && len(m.ValueRanges) == len(m.SubValues)
}

// Clone returns a deep copy of the modifier.
func (m Modifier) Clone() Modifier {
	m.SubValues = slices.Clone(m.SubValues)
	m.ValueRanges = slices.Clone(m.ValueRanges)
	m.ModTags = slices.Clone(m.ModTags)
	return m
}

// ModTierEntry is one catalog tier eligible to be rolled. It is owned by the
// catalog and must be treated as read-only.
type ModTierEntry struct {
	TierID               string       `json:"tier_id"`
	AffixType            AffixType    `json:"affix_type"`
	ItemLevelRequirement int          `json:"item_level_requirement"`
	ValueRanges          []ValueRange `json:"value_ranges"`
	Weight               float64      `json:"weight"`
	Tags                 []string     `json:"tags,omitempty"`
}

func cloneModifiers(mods []Modifier) []Modifier {
	if mods == nil {
		return nil
	}
	out := make([]Modifier, len(mods))
	for i, m := range mods {
		out[i] = m.Clone()
	}
	return out
}
