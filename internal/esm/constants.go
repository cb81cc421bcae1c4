package esm

import (
	"fmt"

	"github.com/ebkarlson404/StarFieldMiner/internal/record"
)

// Keyword form ids.
const (
	KeywordCategoryShipModWeapon = "002C155B"
	KeywordPartLinkedWeapon      = "000179DD"
	KeywordEnergyWeapon          = "0002226A"
	KeywordParticleWeapon        = "001557AA"
	KeywordEMWeapon              = "0002226B"
	KeywordMissileWeapon         = "00155C6C"
	KeywordKineticWeapon         = "00022269"
	KeywordTurretWeapon          = "0032792C"
)

// Actor value form ids used on ship module property sheets.
const (
	ActorValueHealth       = "000002D4"
	ActorValuePartMass     = "0000ACDB"
	ActorValueCrewRating   = "00019080"
	ActorValueWeaponHealth = "001EC77F"
	ActorValueWeaponPower  = "0021961F"
)

// Damage type form ids.
const (
	DamageTypeShield = "0001EDE8"
	DamageTypeEM     = "00023190"
)

// PerkStarshipDesign is the Starship Design skill.
const PerkStarshipDesign = "002C59DC"

// Global form ids checked by ship module recipes.
const (
	GlobalShipComponentsUnlocked = "0010DA30"
	GlobalAllowLargeModules      = "00155F4A"
	GlobalTestModules            = "00141C71"
)

var globalLabels = map[string]string{
	GlobalShipComponentsUnlocked: "Vanguard:Grunt Work",
	GlobalAllowLargeModules:      "[enable large ship modules]",
	GlobalTestModules:            "[test ship modules]",
}

// GlobalLabel returns a human label for a global form id.
func GlobalLabel(formID string) string {
	if label, ok := globalLabels[formID]; ok {
		return label
	}

	return fmt.Sprintf("[GLOB:%s]", formID)
}

// ActorValue is an AVIF record.
type ActorValue struct {
	*record.Base
}

// DamageType is a DMGT record.
type DamageType struct {
	*record.Base
}

// Global is a GLOB record.
type Global struct {
	*record.Base
}

// Label returns the human label for this global.
func (g *Global) Label() string {
	return GlobalLabel(g.FormID())
}

// Perk is a PERK record.
type Perk struct {
	*record.Base
}
