package esm

import "github.com/ebkarlson404/StarFieldMiner/internal/record"

// Explosion is an EXPL record.
type Explosion struct {
	*record.Base
}

// PhysicalDamage returns the explosion's physical damage, 0 when absent.
func (e *Explosion) PhysicalDamage() int {
	return e.Payload().Field("ENAM - Data").Field("Unknown #2").IntOr(0)
}

// AuxDamage returns the damage of the given damage type, 0 when absent.
func (e *Explosion) AuxDamage(damageType string) int {
	return auxDamage(e.Payload(), damageType)
}
