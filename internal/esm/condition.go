package esm

import "github.com/ebkarlson404/StarFieldMiner/internal/value"

const (
	fieldCTDA            = "CTDA - CTDA"
	fieldFunction        = "Function"
	fieldRunOn           = "Run On"
	fieldType            = "Type"
	fieldComparisonValue = "Comparison Value"
	fieldParam1          = "Parameter #1"

	funcHasKeyword     = "HasKeyword"
	funcGetLevel       = "GetLevel"
	funcGetGlobalValue = "GetGlobalValue"

	runOnSubject   = "Subject"
	runOnReference = "Reference"
)

// ConditionOp is the comparison operator of a condition.
type ConditionOp string

const (
	OpUnknown        ConditionOp = ""
	OpEqual          ConditionOp = "=="
	OpGreaterOrEqual ConditionOp = ">="
)

var conditionTypeCodes = map[string]ConditionOp{
	"10000000": OpEqual,
	"11000000": OpGreaterOrEqual,
}

// Condition is one CTDA entry of a recipe.
type Condition struct {
	node *value.Node
}

// NewCondition wraps a "Condition" object.
func NewCondition(node *value.Node) Condition {
	return Condition{node: node}
}

func (c Condition) ctda(field string) string {
	return c.node.Field(fieldCTDA).Field(field).TextOr("")
}

// Function returns the condition function name, e.g. "GetLevel".
func (c Condition) Function() string { return c.ctda(fieldFunction) }

// RunOn returns the condition subject, e.g. "Subject".
func (c Condition) RunOn() string { return c.ctda(fieldRunOn) }

// Param1 returns the first function parameter as written.
func (c Condition) Param1() string { return c.ctda(fieldParam1) }

// Op decodes the "Type" bit field.
func (c Condition) Op() ConditionOp {
	return conditionTypeCodes[c.ctda(fieldType)]
}

// ComparisonValue returns the right-hand side of the comparison.
func (c Condition) ComparisonValue() (int, bool) {
	n := c.node.Field(fieldCTDA).Field(fieldComparisonValue)

	v, err := n.Int()
	if err != nil {
		return 0, false
	}

	return v, true
}

// IsMinLevel reports a "GetLevel >= N" check on the player.
func (c Condition) IsMinLevel() bool {
	return c.Function() == funcGetLevel &&
		c.RunOn() == runOnReference &&
		c.Op() == OpGreaterOrEqual
}

// IsVendorAvailability reports a "HasKeyword == 1" check on the vendor.
func (c Condition) IsVendorAvailability() bool {
	v, _ := c.ComparisonValue()

	return c.Function() == funcHasKeyword &&
		c.RunOn() == runOnSubject &&
		c.Op() == OpEqual &&
		v == 1
}

// SubjectGlobal returns the global checked by a "GetGlobalValue == 1"
// condition.
func (c Condition) SubjectGlobal() (string, bool) {
	v, _ := c.ComparisonValue()
	if c.Function() != funcGetGlobalValue || c.RunOn() != runOnSubject || c.Op() != OpEqual || v != 1 {
		return "", false
	}

	param := c.Param1()
	if param == "" {
		return "", false
	}

	return value.FormRef(param), true
}

// String renders the condition for diagnostics.
func (c Condition) String() string {
	return c.Function() + "(" + c.Param1() + ") on " + c.RunOn() + " " + string(c.Op()) + " " +
		c.node.Field(fieldCTDA).Field(fieldComparisonValue).String()
}
