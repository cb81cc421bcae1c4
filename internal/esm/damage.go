package esm

import "github.com/ebkarlson404/StarFieldMiner/internal/value"

const (
	fieldDamageTypes = "DAMA - Damage Types"
	fieldDamageType  = "Damage Type"
	fieldValue       = "Value"
)

// auxDamage returns the value of the first "Damage Type" entry of a DAMA
// block whose type matches damageType, or 0.
func auxDamage(payload *value.Node, damageType string) int {
	for _, entry := range payload.Field(fieldDamageTypes).Repeated(fieldDamageType) {
		if value.FormRef(entry.Field(fieldDamageType).TextOr("")) == damageType {
			return entry.Field(fieldValue).IntOr(0)
		}
	}

	return 0
}
