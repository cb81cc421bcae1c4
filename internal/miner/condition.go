package miner

import "github.com/ebkarlson404/StarFieldMiner/internal/esm"

//go:generate go tool stringer -type=ConditionKind -trimprefix=Condition -output=conditionkind_string.go

// ConditionKind classifies a recipe condition.
type ConditionKind int

const (
	ConditionUnrecognized ConditionKind = iota
	ConditionMinLevel
	ConditionSubjectGlobal
	ConditionVendorAvailability
)

// Classify returns the kind of c.
func Classify(c esm.Condition) ConditionKind {
	switch {
	case c.IsMinLevel():
		return ConditionMinLevel
	case isSubjectGlobal(c):
		return ConditionSubjectGlobal
	case c.IsVendorAvailability():
		return ConditionVendorAvailability
	default:
		return ConditionUnrecognized
	}
}

func isSubjectGlobal(c esm.Condition) bool {
	_, ok := c.SubjectGlobal()
	return ok
}
