package crafting

import (
	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

// qualityAction builds a quality currency limited to the categories accepted
// by applies. A zero flatStep means the step depends on rarity.
func qualityAction(applies func(domain.Category) bool, flatStep int) actionFunc {
	return func(item *domain.ItemState, _ roller) (domain.OutcomeSet, error) {
		if !applies(item.Category) {
			return domain.NoOpOutcomeSet(), nil
		}

		maxQuality := item.MaxQuality()
		if item.Quality >= maxQuality {
			return domain.NoOpOutcomeSet(), nil
		}

		step := flatStep
		if step == 0 {
			step = qualityStep(item.Rarity)
		}

		next := min(item.Quality+step, maxQuality)
		return domain.OutcomeSet{{
			Probability: 1.0,
			Delta:       domain.Delta{NewQuality: domain.IntPtr(next)},
		}}, nil
	}
}

func qualityStep(r domain.Rarity) int {
	switch r {
	case domain.RarityNormal:
		return QualityStepNormal
	case domain.RarityMagic:
		return QualityStepMagic
	case domain.RarityRare:
		return QualityStepRare
	default:
		return QualityStepUnique
	}
}

func addSocket(item *domain.ItemState, _ roller) (domain.OutcomeSet, error) {
	if item.OpenSockets >= item.MaxSockets() {
		return domain.NoOpOutcomeSet(), nil
	}
	return domain.OutcomeSet{{
		Probability: 1.0,
		Delta:       domain.Delta{NewSocketCount: domain.IntPtr(item.OpenSockets + 1)},
	}}, nil
}
