package esm

import (
	"fmt"

	"github.com/ebkarlson404/StarFieldMiner/internal/record"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

const (
	fieldConditions    = "Conditions"
	fieldCondition     = "Condition"
	fieldRequiredPerks = "RQPK - Required Perks"
	fieldCreatedObject = "CNAM - Created Object"
	fieldCost          = "DATA - Value"
	fieldCategory      = "FNAM - Category"
	fieldKeyword       = "Keyword"
)

// Constructible is a COBJ record: a crafting recipe.
type Constructible struct {
	*record.Base
}

// Cost returns the recipe value, 0 when absent.
func (c *Constructible) Cost() int {
	return c.Payload().Field(fieldCost).IntOr(0)
}

// CategoryFormID returns the raw form id of the recipe category keyword.
func (c *Constructible) CategoryFormID() (string, bool) {
	return refField(c.Payload().Field(fieldCategory).Field(fieldKeyword))
}

// Conditions returns the recipe conditions in document order.
func (c *Constructible) Conditions() []Condition {
	var out []Condition

	for _, entry := range c.Payload().Field(fieldConditions).Elements() {
		cond := entry.Field(fieldCondition)
		if cond == nil {
			continue
		}

		out = append(out, NewCondition(cond))
	}

	return out
}

// RequiredPerk is one entry of the "RQPK - Required Perks" block.
type RequiredPerk struct {
	node *value.Node
	reg  *record.Registry
}

// PerkRef returns the raw form id of the perk, if any.
func (rp RequiredPerk) PerkRef() (string, bool) {
	return refField(rp.node.Field("Perk"))
}

// Perk resolves the required perk.
func (rp RequiredPerk) Perk() (*Perk, bool) {
	ref, ok := rp.PerkRef()
	if !ok {
		return nil, false
	}

	return record.Find[*Perk](rp.reg, ref)
}

// IsStarshipDesign reports whether the entry requires the Starship Design
// skill. It does not need the perk record to be loaded.
func (rp RequiredPerk) IsStarshipDesign() bool {
	ref, _ := rp.PerkRef()
	return ref == PerkStarshipDesign
}

// Rank returns the required rank.
func (rp RequiredPerk) Rank() (int, bool) {
	rank, err := rp.node.Field("Rank").Int()
	if err != nil {
		return 0, false
	}

	return rank, true
}

// String renders the entry for diagnostics.
func (rp RequiredPerk) String() string {
	ref, _ := rp.PerkRef()
	return fmt.Sprintf("RequiredPerk{Perk: %s, Rank: %s}", ref, rp.node.Field("Rank"))
}

// RequiredPerks returns "Required Perk #0", "Required Perk #1", ... until the
// first gap.
func (c *Constructible) RequiredPerks() []RequiredPerk {
	block := c.Payload().Field(fieldRequiredPerks)

	var out []RequiredPerk

	for i := 0; ; i++ {
		entry := block.Field(fmt.Sprintf("Required Perk #%d", i))
		if entry == nil {
			return out
		}

		out = append(out, RequiredPerk{node: entry, reg: c.Registry()})
	}
}

// CreatedObjectRef returns the raw form id written in "CNAM - Created Object".
func (c *Constructible) CreatedObjectRef() (string, bool) {
	return refField(c.Payload().Field(fieldCreatedObject))
}

// CreatedObject resolves the produced record. A form list stands for a set
// of variants (turret orientations); its first entry is used.
func (c *Constructible) CreatedObject() (record.Record, bool) {
	ref, ok := c.CreatedObjectRef()
	if !ok {
		return nil, false
	}

	if fl, ok := record.Find[*FormList](c.Registry(), ref); ok {
		return fl.At(0)
	}

	return c.Registry().FindByFormID(ref)
}

// CreatedBaseForm is CreatedObject restricted to GBFM records.
func (c *Constructible) CreatedBaseForm() (*BaseForm, bool) {
	rec, ok := c.CreatedObject()
	if !ok {
		return nil, false
	}

	bf, ok := rec.(*BaseForm)

	return bf, ok
}
