package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/kvstore"
)

// Node is one decoded JSON value. A nil *Node means "absent".
type Node struct {
	kind   Kind
	name   string // key under which the node is stored in its parent object
	b      bool
	num    float64
	text   string // string value, or the raw literal of a number
	items  []*Node
	fields *kvstore.Map[*Node]
}

// Null returns a JSON null node.
func Null() *Node {
	return &Node{kind: KindNull}
}

// Bool returns a boolean node.
func Bool(b bool) *Node {
	return &Node{kind: KindBool, b: b}
}

// Number returns a numeric node. raw is the literal as written in the input
// and may be empty.
func Number(num float64, raw string) *Node {
	if raw == "" {
		raw = strconv.FormatFloat(num, 'f', -1, 64)
	}

	return &Node{kind: KindNumber, num: num, text: raw}
}

// String returns a string node.
func String(s string) *Node {
	return &Node{kind: KindString, text: s}
}

// Array returns an array node holding items.
func Array(items ...*Node) *Node {
	return &Node{kind: KindArray, items: items}
}

// Object returns an object node backed by fields. Children learn the key they
// are stored under, which is reported in coercion errors.
func Object(fields *kvstore.Map[*Node]) *Node {
	if fields == nil {
		fields = kvstore.New[*Node]()
	}

	fields.Range(func(key string, child *Node) bool {
		if child != nil {
			child.name = key
		}

		return true
	})

	return &Node{kind: KindObject, fields: fields}
}

// Exists reports whether the node is present.
func (n *Node) Exists() bool {
	return n != nil
}

// Kind returns the node kind. Absent nodes report KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}

	return n.kind
}

// Name returns the key the node is stored under in its parent object.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}

	return n.name
}

// IsObject reports whether the node is a present object.
func (n *Node) IsObject() bool {
	return n != nil && n.kind == KindObject
}

// IsArray reports whether the node is a present array.
func (n *Node) IsArray() bool {
	return n != nil && n.kind == KindArray
}

// IsText reports whether the node is a present string.
func (n *Node) IsText() bool {
	return n != nil && n.kind == KindString
}

// Field returns the child stored under the exact key, or nil.
func (n *Node) Field(name string) *Node {
	if !n.IsObject() {
		return nil
	}

	child, _ := n.fields.Get(name)

	return child
}

// Has reports whether the object has a child under the exact key.
func (n *Node) Has(name string) bool {
	return n.Field(name) != nil
}

// Require returns the named child or a missing-field error.
func (n *Node) Require(name string) (*Node, error) {
	child := n.Field(name)
	if child == nil {
		return nil, esmerr.Malformed(esmerr.CategoryMissingField, name, "present")
	}

	return child, nil
}

// Keys returns the stored keys of an object in document order.
func (n *Node) Keys() []string {
	if !n.IsObject() {
		return nil
	}

	return n.fields.Keys()
}

// Repeated returns the children stored under name, name #2, name #3, ...
// in document order.
func (n *Node) Repeated(name string) []*Node {
	if !n.IsObject() {
		return nil
	}

	return kvstore.Probe(n.fields, name)
}

// Len returns the number of array items or object entries.
func (n *Node) Len() int {
	switch {
	case n.IsArray():
		return len(n.items)
	case n.IsObject():
		return n.fields.Len()
	default:
		return 0
	}
}

// Index returns the i-th array item, or nil.
func (n *Node) Index(i int) *Node {
	if !n.IsArray() || i < 0 || i >= len(n.items) {
		return nil
	}

	return n.items[i]
}

// Elements returns the array items, or the object values in document order.
func (n *Node) Elements() []*Node {
	switch {
	case n.IsArray():
		return append([]*Node(nil), n.items...)
	case n.IsObject():
		out := make([]*Node, 0, n.fields.Len())
		n.fields.Range(func(_ string, child *Node) bool {
			out = append(out, child)
			return true
		})

		return out
	default:
		return nil
	}
}

// Text returns the string value.
func (n *Node) Text() (string, error) {
	if n == nil {
		return "", esmerr.Malformed(esmerr.CategoryMissingField, "", "text")
	}

	if n.kind != KindString {
		return "", n.mismatch("text")
	}

	return n.text, nil
}

// TextOr returns the string value, or dflt when absent or not a string.
func (n *Node) TextOr(dflt string) string {
	s, err := n.Text()
	if err != nil {
		return dflt
	}

	return s
}

// Float returns the numeric value. Numeric text is accepted.
func (n *Node) Float() (float64, error) {
	if n == nil {
		return 0, esmerr.Malformed(esmerr.CategoryMissingField, "", "number")
	}

	switch n.kind {
	case KindNumber:
		return n.num, nil
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.text), 64)
		if err != nil {
			return 0, n.mismatch("number or numeric text")
		}

		return f, nil
	default:
		return 0, n.mismatch("number or numeric text")
	}
}

// FloatOr returns the numeric value, or dflt when absent or not numeric.
func (n *Node) FloatOr(dflt float64) float64 {
	f, err := n.Float()
	if err != nil {
		return dflt
	}

	return f
}

// Int returns the numeric value truncated toward zero. The value is parsed
// as a float first so "12.0" and 12.7 are both accepted.
func (n *Node) Int() (int, error) {
	f, err := n.Float()
	if err != nil {
		return 0, err
	}

	return int(f), nil
}

// IntOr returns the truncated numeric value, or dflt when absent or not numeric.
func (n *Node) IntOr(dflt int) int {
	i, err := n.Int()
	if err != nil {
		return dflt
	}

	return i
}

// BoolOr returns a boolean value, or dflt when absent or not boolean.
// Numbers and numeric text count as true when non-zero.
func (n *Node) BoolOr(dflt bool) bool {
	if n == nil {
		return dflt
	}

	if n.kind == KindBool {
		return n.b
	}

	f, err := n.Float()
	if err != nil {
		return dflt
	}

	return f != 0
}

// Interface converts the node to plain Go values: nil, bool, float64,
// string, []any or map[string]any. Object key order is not preserved.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}

	switch n.kind {
	case KindBool:
		return n.b
	case KindNumber:
		return n.num
	case KindString:
		return n.text
	case KindArray:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Interface()
		}

		return out
	case KindObject:
		out := make(map[string]any, n.fields.Len())
		n.fields.Range(func(key string, child *Node) bool {
			out[key] = child.Interface()
			return true
		})

		return out
	default:
		return nil
	}
}

// String renders scalars as their text and containers by kind and size.
func (n *Node) String() string {
	switch n.Kind() {
	case KindNull:
		if n == nil {
			return "<absent>"
		}

		return "null"
	case KindBool:
		return strconv.FormatBool(n.b)
	case KindNumber, KindString:
		return n.text
	default:
		return fmt.Sprintf("%s(%d)", n.kind, n.Len())
	}
}

func (n *Node) mismatch(expected string) *esmerr.MalformedDataError {
	return esmerr.Malformed(esmerr.CategoryTypeMismatch, n.name, fmt.Sprintf("%s, got %s", expected, n.kind))
}
