package esm

import (
	"strings"

	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

const (
	fieldWeaponDamage = "WDMG - Damage"
	fieldPower        = "QNAM - Power"
	fieldAmmunition   = "WAM2 - Ammunition"
	fieldFiring       = "WFIR - Firing"
)

// categoryKeywords maps weapon category keywords to their labels.
var categoryKeywords = map[string]string{
	KeywordEMWeapon:       "EM",
	KeywordEnergyWeapon:   "Energy",
	KeywordKineticWeapon:  "Ballistic",
	KeywordMissileWeapon:  "Missile",
	KeywordParticleWeapon: "Particle",
}

// Weapon is a WEAP record.
type Weapon struct {
	*record.Base
}

// KeywordFormIDs returns the weapon keywords in document order.
func (w *Weapon) KeywordFormIDs() []string {
	var out []string

	for _, kw := range w.Payload().Field(fieldKeywords).Field(fieldKWDA).Repeated(fieldKeyword) {
		if ref, ok := refField(kw); ok {
			out = append(out, ref)
		}
	}

	return out
}

// HasKeyword reports whether the weapon carries keyword.
func (w *Weapon) HasKeyword(keyword string) bool {
	for _, kw := range w.KeywordFormIDs() {
		if kw == keyword {
			return true
		}
	}

	return false
}

// IsTurret reports whether the weapon is a turret.
func (w *Weapon) IsTurret() bool {
	return w.HasKeyword(KeywordTurretWeapon)
}

// Category returns the labels of the weapon's category keywords, in keyword
// order, joined by ", ".
func (w *Weapon) Category() string {
	var labels []string

	for _, kw := range w.KeywordFormIDs() {
		if label, ok := categoryKeywords[kw]; ok {
			labels = append(labels, label)
		}
	}

	return strings.Join(labels, ", ")
}

func (w *Weapon) damage() *value.Node {
	return w.Payload().Field(fieldWeaponDamage)
}

// PhysicalDamage returns the attack damage, 0 when absent.
func (w *Weapon) PhysicalDamage() int {
	return w.damage().Field("Attack Damage").IntOr(0)
}

// MinRange returns the minimum range, 0 when absent.
func (w *Weapon) MinRange() int {
	return w.damage().Field("Range - Min").IntOr(0)
}

// MaxRange returns the maximum range, 0 when absent.
func (w *Weapon) MaxRange() int {
	return w.damage().Field("Range - Max").IntOr(0)
}

// CritMultiplier returns the critical damage multiplier. A damage block
// without the field means 1.0; a weapon without a damage block has none.
func (w *Weapon) CritMultiplier() float64 {
	dmg := w.damage()
	if dmg == nil {
		return 0
	}

	return dmg.Field("Crit Damage Mult").FloatOr(1.0)
}

// AuxDamage returns the damage of the given damage type, 0 when absent.
func (w *Weapon) AuxDamage(damageType string) int {
	return auxDamage(w.Payload(), damageType)
}

// RechargeDelay returns the power recharge delay. The field is required.
func (w *Weapon) RechargeDelay() (float64, error) {
	return w.power("Recharge delay")
}

// RechargeTime returns the power recharge time. The field is required.
func (w *Weapon) RechargeTime() (float64, error) {
	return w.power("Recharge time")
}

func (w *Weapon) power(field string) (float64, error) {
	qnam, err := w.Payload().Require(fieldPower)
	if err != nil {
		return 0, esmerr.InRecord(err, w.String())
	}

	n, err := qnam.Require(field)
	if err != nil {
		return 0, esmerr.InRecord(err, w.String())
	}

	f, err := n.Float()
	if err != nil {
		return 0, esmerr.InRecord(err, w.String())
	}

	return f, nil
}

// AmmoCapacity returns the magazine size, 0 when absent.
func (w *Weapon) AmmoCapacity() int {
	return w.Payload().Field(fieldAmmunition).Field("Ammo Capacity").IntOr(0)
}

// ShotsPerSecond returns the rate of fire, 0 when absent.
func (w *Weapon) ShotsPerSecond() float64 {
	return w.Payload().Field(fieldFiring).Field("Shots Per Second").FloatOr(0)
}

// AmmoRef returns the raw form id of the ammunition, if any.
func (w *Weapon) AmmoRef() (string, bool) {
	return refField(w.Payload().Field(fieldAmmunition).Field("Ammo Type"))
}

// Ammo resolves the weapon's ammunition.
func (w *Weapon) Ammo() (*Ammo, bool) {
	ref, ok := w.AmmoRef()
	if !ok {
		return nil, false
	}

	return record.Find[*Ammo](w.Registry(), ref)
}
