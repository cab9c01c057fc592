package domain

import "fmt"

// Category is the base item class. It decides which quality and socket
// actions may touch the item.
type Category int

const (
	CategoryUnknown Category = iota

	// One-handed weapons
	CategoryClaw
	CategoryDagger
	CategoryOneHandSword
	CategoryOneHandAxe
	CategoryOneHandMace
	CategorySpear
	CategoryFlail
	CategoryWand
	CategorySceptre

	// Two-handed weapons
	CategoryBow
	CategoryCrossbow
	CategoryTwoHandSword
	CategoryTwoHandAxe
	CategoryTwoHandMace
	CategoryQuarterstaff
	CategoryStaff

	// Armour
	CategoryBodyArmour
	CategoryHelmet
	CategoryGloves
	CategoryBoots
	CategoryShield
	CategoryFocus

	// Other
	CategoryQuiver
	CategoryBelt
	CategoryRing
	CategoryAmulet
	CategoryJewel
	CategoryFlask
	CategoryGem

	categoryCount
)

var categoryNames = map[Category]string{
	CategoryClaw:         "claw",
	CategoryDagger:       "dagger",
	CategoryOneHandSword: "one_hand_sword",
	CategoryOneHandAxe:   "one_hand_axe",
	CategoryOneHandMace:  "one_hand_mace",
	CategorySpear:        "spear",
	CategoryFlail:        "flail",
	CategoryWand:         "wand",
	CategorySceptre:      "sceptre",
	CategoryBow:          "bow",
	CategoryCrossbow:     "crossbow",
	CategoryTwoHandSword: "two_hand_sword",
	CategoryTwoHandAxe:   "two_hand_axe",
	CategoryTwoHandMace:  "two_hand_mace",
	CategoryQuarterstaff: "quarterstaff",
	CategoryStaff:        "staff",
	CategoryBodyArmour:   "body_armour",
	CategoryHelmet:       "helmet",
	CategoryGloves:       "gloves",
	CategoryBoots:        "boots",
	CategoryShield:       "shield",
	CategoryFocus:        "focus",
	CategoryQuiver:       "quiver",
	CategoryBelt:         "belt",
	CategoryRing:         "ring",
	CategoryAmulet:       "amulet",
	CategoryJewel:        "jewel",
	CategoryFlask:        "flask",
	CategoryGem:          "gem",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c > CategoryUnknown && c < categoryCount
}

// ParseCategory maps a wire name such as "one_hand_mace" to a Category.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// IsOneHandWeapon reports one-handed weapon categories.
func (c Category) IsOneHandWeapon() bool {
	return c >= CategoryClaw && c <= CategorySceptre
}

// IsTwoHandWeapon reports two-handed weapon categories.
func (c Category) IsTwoHandWeapon() bool {
	return c >= CategoryBow && c <= CategoryStaff
}

// IsWeapon reports any weapon category.
func (c Category) IsWeapon() bool {
	return c.IsOneHandWeapon() || c.IsTwoHandWeapon()
}

// IsNonMartialWeapon covers the caster weapons: wands, sceptres and staves.
func (c Category) IsNonMartialWeapon() bool {
	switch c {
	case CategoryWand, CategorySceptre, CategoryStaff:
		return true
	default:
		return false
	}
}

// IsMartialWeapon covers every weapon that is not a caster weapon.
func (c Category) IsMartialWeapon() bool {
	return c.IsWeapon() && !c.IsNonMartialWeapon()
}

// IsArmour covers body armour, helmets, gloves, boots, shields and foci.
func (c Category) IsArmour() bool {
	return c >= CategoryBodyArmour && c <= CategoryFocus
}

func (c Category) IsFlask() bool { return c == CategoryFlask }

func (c Category) IsGem() bool { return c == CategoryGem }

// MaxSockets returns the socket ceiling for a category: two-handed weapons
// and body armour hold 2, other weapons and armour pieces hold 1, everything
// else holds none.
func MaxSockets(c Category) int {
	switch {
	case c.IsTwoHandWeapon(), c == CategoryBodyArmour:
		return 2
	case c.IsOneHandWeapon(), c.IsArmour():
		return 1
	default:
		return 0
	}
}
