package domain

import "math"

// Delta describes how an outcome changes an item. Every field is optional;
// a zero Delta is a true no-op.
type Delta struct {
	Added          []Modifier `json:"added,omitempty"`
	Removed        []Modifier `json:"removed,omitempty"`
	Fractured      *Modifier  `json:"fractured,omitempty"`
	Rerolled       []Modifier `json:"rerolled,omitempty"`
	NewRarity      *Rarity    `json:"new_rarity,omitempty"`
	NewQuality     *int       `json:"new_quality,omitempty"`
	NewSocketCount *int       `json:"new_socket_count,omitempty"`
	Corrupt        bool       `json:"corrupt,omitempty"`
	Identify       bool       `json:"identify,omitempty"`
}

// IsNoOp reports whether the delta leaves an item untouched.
func (d Delta) IsNoOp() bool {
	return len(d.Added) == 0 &&
		len(d.Removed) == 0 &&
		d.Fractured == nil &&
		len(d.Rerolled) == 0 &&
		d.NewRarity == nil &&
		d.NewQuality == nil &&
		d.NewSocketCount == nil &&
		!d.Corrupt &&
		!d.Identify
}

// Outcome is one possible, probability-weighted result of an action.
type Outcome struct {
	Probability float64 `json:"probability"`
	Delta       Delta   `json:"delta"`
}

// OutcomeSet holds every outcome of one action application. Probabilities
// sum to 1.
type OutcomeSet []Outcome

// NoOpOutcomeSet is the answer for any action whose guard fails.
func NoOpOutcomeSet() OutcomeSet {
	return OutcomeSet{{Probability: 1.0}}
}

// TotalProbability sums the outcome probabilities.
func (s OutcomeSet) TotalProbability() float64 {
	total := 0.0
	for _, o := range s {
		total += o.Probability
	}
	return total
}

// IsNoOp reports whether the set is the single no-op outcome.
func (s OutcomeSet) IsNoOp() bool {
	return len(s) == 1 && s[0].Delta.IsNoOp()
}

// IsNormalized reports whether the probabilities sum to 1 within
// ProbabilityTolerance.
func (s OutcomeSet) IsNormalized() bool {
	return math.Abs(s.TotalProbability()-1.0) <= ProbabilityTolerance
}

// RarityPtr and IntPtr build the optional delta fields.
func RarityPtr(r Rarity) *Rarity { return &r }

func IntPtr(v int) *int { return &v }
