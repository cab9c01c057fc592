package crafting

import (
	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

// actionFunc computes the outcome set of one action. It must not mutate item.
type actionFunc func(item *domain.ItemState, r roller) (domain.OutcomeSet, error)

// ActionInfo describes one registered action for external agents mapping
// discrete action indices onto action ids.
type ActionInfo struct {
	ID    domain.ActionID `json:"id"`
	Name  string          `json:"name"`
	Guard string          `json:"guard"`
}

type actionDef struct {
	info  ActionInfo
	apply actionFunc
}

// actionTable is the closed action set. Its order is the stable index order
// exposed through Registry; append new actions at the end.
var actionTable = []actionDef{
	{ActionInfo{domain.ActionArmourersScrap, "Armourer's Scrap", "armour, quality below maximum"}, qualityAction(domain.Category.IsArmour, 0)},
	{ActionInfo{domain.ActionBlacksmithsWhetstone, "Blacksmith's Whetstone", "martial weapon, quality below maximum"}, qualityAction(domain.Category.IsMartialWeapon, 0)},
	{ActionInfo{domain.ActionArcanistsEtcher, "Arcanist's Etcher", "wand, sceptre or staff, quality below maximum"}, qualityAction(domain.Category.IsNonMartialWeapon, 0)},
	{ActionInfo{domain.ActionGlassblowersBauble, "Glassblower's Bauble", "flask, quality below maximum"}, qualityAction(domain.Category.IsFlask, QualityStepFlask)},
	{ActionInfo{domain.ActionGemcuttersPrism, "Gemcutter's Prism", "gem, quality below maximum"}, qualityAction(domain.Category.IsGem, QualityStepGem)},
	{ActionInfo{domain.ActionArtificersOrb, "Artificer's Orb", "socketable category, sockets below maximum"}, addSocket},
	{ActionInfo{domain.ActionTransmutation, "Orb of Transmutation", "normal rarity"}, transmute},
	{ActionInfo{domain.ActionAugmentation, "Orb of Augmentation", "magic rarity with an open affix slot"}, augment},
	{ActionInfo{domain.ActionRegal, "Regal Orb", "magic rarity"}, regal},
	{ActionInfo{domain.ActionAlchemy, "Orb of Alchemy", "normal rarity"}, alchemy},
	{ActionInfo{domain.ActionExalted, "Exalted Orb", "rare rarity with an open affix slot"}, exalt(domain.AffixPrefix, domain.AffixSuffix)},
	{ActionInfo{domain.ActionExaltedPrefix, "Exalted Orb (prefix)", "rare rarity with an open prefix slot"}, exalt(domain.AffixPrefix)},
	{ActionInfo{domain.ActionExaltedSuffix, "Exalted Orb (suffix)", "rare rarity with an open suffix slot"}, exalt(domain.AffixSuffix)},
	{ActionInfo{domain.ActionChaos, "Chaos Orb", "rare rarity with a removable modifier or an open slot"}, chaos},
	{ActionInfo{domain.ActionAnnulment, "Orb of Annulment", "magic or rare rarity with a removable modifier"}, annul},
	{ActionInfo{domain.ActionScouring, "Orb of Scouring", "rare rarity with a removable modifier"}, scour},
	{ActionInfo{domain.ActionFracturing, "Fracturing Orb", "magic or rare rarity, no fractured modifier, at least one explicit modifier"}, fracture},
	{ActionInfo{domain.ActionWisdom, "Scroll of Wisdom", "unidentified"}, identify},
	{ActionInfo{domain.ActionDivine, "Divine Orb", "an explicit modifier with value ranges"}, divine},
	{ActionInfo{domain.ActionVaal, "Vaal Orb", "not corrupted"}, corrupt},
}

// Registry returns the stable, ordered list of actions.
func Registry() []ActionInfo {
	infos := make([]ActionInfo, len(actionTable))
	for i, def := range actionTable {
		infos[i] = def.info
	}
	return infos
}

// ActionIndex returns the registry index of id, or -1.
func ActionIndex(id domain.ActionID) int {
	for i, def := range actionTable {
		if def.info.ID == id {
			return i
		}
	}
	return -1
}

// ActionByIndex maps a discrete registry index back to its action id.
func ActionByIndex(i int) (domain.ActionID, bool) {
	if i < 0 || i >= len(actionTable) {
		return "", false
	}
	return actionTable[i].info.ID, true
}

// IsKnownAction reports whether id is in the registry.
func IsKnownAction(id domain.ActionID) bool {
	return ActionIndex(id) >= 0
}

func lookupAction(id domain.ActionID) (actionDef, bool) {
	if i := ActionIndex(id); i >= 0 {
		return actionTable[i], true
	}
	return actionDef{}, false
}
