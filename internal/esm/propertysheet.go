package esm

import (
	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

const (
	fieldProperties  = "PRPS - Properties"
	fieldProperty    = "Property"
	fieldActorValue  = "Actor Value"
	fieldPropertyVal = "Value"
)

// PropertySheet maps actor value form ids to their values.
type PropertySheet struct {
	owner string
	props map[string]*value.Node
	order []string
}

// NewPropertySheet reads the repeated "Property" entries of data. owner
// names the record the sheet belongs to in errors.
func NewPropertySheet(data *value.Node, owner string) *PropertySheet {
	ps := &PropertySheet{owner: owner, props: make(map[string]*value.Node)}

	for _, prop := range data.Field(fieldProperties).Repeated(fieldProperty) {
		av, ok := refField(prop.Field(fieldActorValue))
		if !ok {
			continue
		}

		if _, seen := ps.props[av]; !seen {
			ps.order = append(ps.order, av)
		}

		ps.props[av] = prop.Field(fieldPropertyVal)
	}

	return ps
}

// ActorValues returns the actor values present, in document order.
func (ps *PropertySheet) ActorValues() []string {
	return append([]string(nil), ps.order...)
}

// Has reports whether the sheet carries actorValue.
func (ps *PropertySheet) Has(actorValue string) bool {
	return ps.props[actorValue] != nil
}

// Float returns the value of actorValue. Absent or non-numeric values fail
// with an error naming the owning record.
func (ps *PropertySheet) Float(actorValue string) (float64, error) {
	n, ok := ps.props[actorValue]
	if !ok || n == nil {
		return 0, ps.missing(actorValue)
	}

	f, err := n.Float()
	if err != nil {
		return 0, esmerr.InRecord(err, ps.owner)
	}

	return f, nil
}

// Int is Float truncated toward zero.
func (ps *PropertySheet) Int(actorValue string) (int, error) {
	f, err := ps.Float(actorValue)
	if err != nil {
		return 0, err
	}

	return int(f), nil
}

// FloatOr returns the value of actorValue, or dflt.
func (ps *PropertySheet) FloatOr(actorValue string, dflt float64) float64 {
	return ps.props[actorValue].FloatOr(dflt)
}

// IntOr returns the truncated value of actorValue, or dflt.
func (ps *PropertySheet) IntOr(actorValue string, dflt int) int {
	return ps.props[actorValue].IntOr(dflt)
}

func (ps *PropertySheet) missing(actorValue string) error {
	err := esmerr.Malformed(esmerr.CategoryMissingField, fieldProperties+"."+actorValue, "property sheet value")
	err.Record = ps.owner

	return err
}
