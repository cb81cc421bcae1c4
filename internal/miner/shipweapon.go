package miner

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ebkarlson404/StarFieldMiner/internal/diagnostic"
	"github.com/ebkarlson404/StarFieldMiner/internal/esm"
	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
)

// ShipWeaponName is the registered name of the ship weapon miner.
const ShipWeaponName = "ShipWeapon"

// ShipWeaponHeader is the fixed column set of a ship weapon row.
var ShipWeaponHeader = []string{
	"Make", "Model", "Class", "Category", "Cost", "Hull", "Mass", "Health",
	"Crew Capacity", "Max Power", "Required Level", "Required Starship Eng",
	"Required Perk", "Hull Dmg", "Shield Dmg", "EM Dmg", "Crit Damage", "Range",
	"Speed", "ROF", "Recharge Delay", "Recharge Time", "Magazine", "Is Turret",
}

// ShipWeapon is one row of the ship weapon report.
type ShipWeapon struct {
	Make           string
	Model          string
	Class          string
	Category       string
	Cost           int
	Hull           int
	Mass           int
	Health         int
	Crew           float64
	MaxPower       int
	MinLevel       int
	MinStarshipEng int
	RequiredPerk   string
	HullDamage     int
	ShieldDamage   int
	EMDamage       int
	CritBonus      float64
	Range          int
	Speed          int
	RateOfFire     float64
	RechargeDelay  float64
	RechargeTime   float64
	Magazine       int
	Turret         bool
}

// Fields renders the row in ShipWeaponHeader order.
func (s *ShipWeapon) Fields() []string {
	turret := ""
	if s.Turret {
		turret = "X"
	}

	return []string{
		s.Make,
		s.Model,
		s.Class,
		s.Category,
		strconv.Itoa(s.Cost),
		strconv.Itoa(s.Hull),
		strconv.Itoa(s.Mass),
		strconv.Itoa(s.Health),
		formatFloat(s.Crew),
		strconv.Itoa(s.MaxPower),
		strconv.Itoa(s.MinLevel),
		strconv.Itoa(s.MinStarshipEng),
		s.RequiredPerk,
		strconv.Itoa(s.HullDamage),
		strconv.Itoa(s.ShieldDamage),
		strconv.Itoa(s.EMDamage),
		formatFloat(s.CritBonus),
		strconv.Itoa(s.Range),
		strconv.Itoa(s.Speed),
		formatFloat(s.RateOfFire),
		formatFloat(s.RechargeDelay),
		formatFloat(s.RechargeTime),
		strconv.Itoa(s.Magazine),
		turret,
	}
}

// formatFloat renders six decimals, like %f.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// ShipWeaponMiner builds ShipWeapon rows from ship module recipes.
type ShipWeaponMiner struct {
	policy Policy
	log    *zap.Logger
}

// NewShipWeaponMiner creates the miner.
func NewShipWeaponMiner(opts Options) *ShipWeaponMiner {
	return &ShipWeaponMiner{
		policy: opts.Policy,
		log:    loggerOrNop(opts.Logger).With(zap.String("component", "miner"), zap.String("miner", ShipWeaponName)),
	}
}

func (m *ShipWeaponMiner) Name() string     { return ShipWeaponName }
func (m *ShipWeaponMiner) Header() []string { return append([]string(nil), ShipWeaponHeader...) }

// Run writes the header and one row per ship weapon recipe, in registry
// order. Seeds that fail are logged, recorded as diagnostics and skipped.
func (m *ShipWeaponMiner) Run(reg *record.Registry, sink Sink) (Summary, error) {
	var sum Summary

	if err := sink.Write(m.Header()); err != nil {
		return sum, fmt.Errorf("writing header: %w", err)
	}

	for _, seed := range record.Collect[*esm.Constructible](reg, record.TagConstructible) {
		row, err := m.aggregate(seed, &sum.Diagnostics)
		if err != nil {
			sum.Skipped++
			m.log.Warn("skipping malformed recipe", zap.Stringer("seed", seed), zap.Error(err))
			sum.Diagnostics.AddWarning(diagnostic.CodeSeedSkipped, err.Error(), seed.String(), "")

			continue
		}

		if row == nil {
			continue
		}

		if err := sink.Write(row.Fields()); err != nil {
			return sum, fmt.Errorf("writing row for %s: %w", seed, err)
		}

		sum.Emitted++
	}

	m.log.Info("mining finished", zap.Int("emitted", sum.Emitted), zap.Int("skipped", sum.Skipped))

	return sum, nil
}

// Aggregate builds the row for one recipe. Recipes outside the ship weapon
// category yield (nil, nil).
func (m *ShipWeaponMiner) Aggregate(seed *esm.Constructible) (*ShipWeapon, error) {
	var discard diagnostic.Diagnostics
	return m.aggregate(seed, &discard)
}

func (m *ShipWeaponMiner) aggregate(seed *esm.Constructible, diags *diagnostic.Diagnostics) (*ShipWeapon, error) {
	if cat, ok := seed.CategoryFormID(); !ok || cat != esm.KeywordCategoryShipModWeapon {
		return nil, nil
	}

	sw := &ShipWeapon{Cost: seed.Cost(), MinLevel: 1}

	var requirements []string

	for _, c := range seed.Conditions() {
		switch Classify(c) {
		case ConditionMinLevel:
			if lvl, ok := c.ComparisonValue(); ok {
				sw.MinLevel = lvl
			}
		case ConditionSubjectGlobal:
			glob, _ := c.SubjectGlobal()
			requirements = append(requirements, globalLabel(seed.Registry(), glob))
		case ConditionVendorAvailability:
		default:
			m.log.Warn("unrecognized condition", zap.Stringer("seed", seed), zap.Stringer("condition", c))
			diags.AddWarning(diagnostic.CodeUnrecognizedCondition, c.String(), seed.String(), "Conditions")
		}
	}

	for _, rp := range seed.RequiredPerks() {
		rank, _ := rp.Rank()

		if rp.IsStarshipDesign() {
			sw.MinStarshipEng = rank
			continue
		}

		perk, ok := rp.Perk()
		if !ok {
			ref, _ := rp.PerkRef()
			return nil, esmerr.Required("RQPK - Required Perks", ref, "PERK", seed.String())
		}

		requirements = append(requirements, fmt.Sprintf("%s >= %d", perk.FullName(), rank))
	}

	sw.RequiredPerk = strings.Join(requirements, ", ")

	bf, ok := seed.CreatedBaseForm()
	if !ok {
		ref, _ := seed.CreatedObjectRef()
		return nil, esmerr.Required("CNAM - Created Object", ref, "GBFM", seed.String())
	}

	if err := m.fromBaseForm(sw, bf, diags); err != nil {
		return nil, err
	}

	return sw, nil
}

// globalLabel labels a global condition subject, whether or not the GLOB
// record itself was exported.
func globalLabel(reg *record.Registry, formID string) string {
	if g, ok := record.Find[*esm.Global](reg, formID); ok {
		return g.Label()
	}

	return esm.GlobalLabel(formID)
}

func (m *ShipWeaponMiner) fromBaseForm(sw *ShipWeapon, bf *esm.BaseForm, diags *diagnostic.Diagnostics) error {
	var ok bool

	if sw.Make, ok = bf.Manufacturer(); !ok {
		return esmerr.Required("Component Data - Keywords", "", "manufacturer KYWD", bf.String())
	}

	if sw.Class, ok = bf.ModuleClass(); !ok {
		return esmerr.Required("Component Data - Keywords", "", "ship module class KYWD", bf.String())
	}

	ps, ok := bf.PropertySheet()
	if !ok {
		return esmerr.Required("Component Data - Property Sheet", "", "property sheet", bf.String())
	}

	if err := m.fromPropertySheet(sw, ps, bf, diags); err != nil {
		return err
	}

	weap, ok := bf.Weapon()
	if !ok {
		ref := ""
		if comp, found := bf.FindComponent(esm.ComponentFormLinks); found {
			ref, _ = comp.LinkedFormID(esm.KeywordPartLinkedWeapon)
		}

		return esmerr.Required("Component Data - Form Links", ref, "WEAP", bf.String())
	}

	return m.fromWeapon(sw, weap)
}

func (m *ShipWeaponMiner) fromPropertySheet(
	sw *ShipWeapon, ps *esm.PropertySheet, bf *esm.BaseForm, diags *diagnostic.Diagnostics,
) error {
	var err error

	sw.Hull = ps.IntOr(esm.ActorValueHealth, 0)

	if sw.Mass, err = ps.Int(esm.ActorValuePartMass); err != nil {
		return err
	}

	if sw.Health, err = ps.Int(esm.ActorValueWeaponHealth); err != nil {
		return err
	}

	if sw.MaxPower, err = ps.Int(esm.ActorValueWeaponPower); err != nil {
		return err
	}

	crew := m.policy.CrewRating
	if crew.Required || ps.Has(esm.ActorValueCrewRating) {
		sw.Crew, err = ps.Float(esm.ActorValueCrewRating)
		return err
	}

	sw.Crew = crew.Default
	m.log.Debug("crew rating missing, using default", zap.Stringer("record", bf), zap.Float64("default", crew.Default))
	diags.AddInfo(diagnostic.CodeDefaultApplied,
		fmt.Sprintf("crew rating missing, using default %f", crew.Default), bf.String(), esm.ActorValueCrewRating)

	return nil
}

func (m *ShipWeaponMiner) fromWeapon(sw *ShipWeapon, weap *esm.Weapon) error {
	var err error

	sw.Model = weap.FullName()
	sw.Turret = weap.IsTurret()
	sw.Category = weap.Category()
	sw.HullDamage = weap.PhysicalDamage()
	sw.ShieldDamage = weap.AuxDamage(esm.DamageTypeShield)
	sw.EMDamage = weap.AuxDamage(esm.DamageTypeEM)
	sw.Range = weap.MaxRange()
	sw.CritBonus = weap.CritMultiplier()
	sw.Magazine = weap.AmmoCapacity()
	sw.RateOfFire = weap.ShotsPerSecond()

	if sw.RechargeDelay, err = weap.RechargeDelay(); err != nil {
		return err
	}

	if sw.RechargeTime, err = weap.RechargeTime(); err != nil {
		return err
	}

	ammo, ok := weap.Ammo()
	if !ok {
		ref, _ := weap.AmmoRef()
		return esmerr.Required("WAM2 - Ammunition", ref, "AMMO", weap.String())
	}

	proj, ok := ammo.Projectile()
	if !ok {
		ref, _ := ammo.ProjectileRef()
		return esmerr.Required("DNAM - DNAM", ref, "PROJ", ammo.String())
	}

	sw.Speed = proj.Speed()

	// Explosion damage adds to the weapon's own.
	if expl, ok := proj.Explosion(m.policy.ExplosionFlagGated); ok {
		sw.HullDamage += expl.PhysicalDamage()
		sw.ShieldDamage += expl.AuxDamage(esm.DamageTypeShield)
		sw.EMDamage += expl.AuxDamage(esm.DamageTypeEM)
	}

	return nil
}
