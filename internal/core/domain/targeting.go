package domain

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Operator is a leaf comparison operator.
type Operator string

const (
	OpEq      Operator = "eq"
	OpNeq     Operator = "neq"
	OpGt      Operator = "gt"
	OpGte     Operator = "gte"
	OpLt      Operator = "lt"
	OpLte     Operator = "lte"
	OpBetween Operator = "between"
)

// Rule is a node of a targeting rule tree. The concrete types are Empty,
// Compare, AllOf and AnyOf; a nil Rule behaves like Empty.
type Rule interface {
	rule()
}

// Empty matches every profile.
type Empty struct{}

// Compare tests one profile attribute. Between takes two values (inclusive
// bounds); every other operator takes one.
type Compare struct {
	Attribute string
	Operator  Operator
	Values    []Value
}

// AllOf matches when every child matches.
type AllOf struct {
	Rules []Rule
}

// AnyOf matches when at least one child matches.
type AnyOf struct {
	Rules []Rule
}

func (Empty) rule()   {}
func (Compare) rule() {}
func (AllOf) rule()   {}
func (AnyOf) rule()   {}

// Leaf is shorthand for a single-operand comparison.
func Leaf(attribute string, op Operator, value Value) Compare {
	return Compare{Attribute: attribute, Operator: op, Values: []Value{value}}
}

// Between is shorthand for an inclusive range comparison.
func Between(attribute string, low, high Value) Compare {
	return Compare{Attribute: attribute, Operator: OpBetween, Values: []Value{low, high}}
}

// IsEmpty reports whether r contains no leaf comparisons.
func IsEmpty(r Rule) bool {
	switch n := r.(type) {
	case nil, Empty:
		return true
	case AllOf:
		return allEmpty(n.Rules)
	case AnyOf:
		return allEmpty(n.Rules)
	default:
		return false
	}
}

func allEmpty(rules []Rule) bool {
	for _, r := range rules {
		if !IsEmpty(r) {
			return false
		}
	}
	return true
}

// Targeting describes who should see a campaign-product. It wraps the rule
// tree so it can be stored as JSON (database) or YAML (catalog files):
//
//	{}                                              empty rule
//	{"attribute": "creditScore", "op": "gte", "value": 700}
//	{"attribute": "creditScore", "op": "between", "values": [650, 750]}
//	{"allOf": [...]} / {"anyOf": [...]}
//
// Unknown operators decode as-is and simply never match. So do operands
// that are neither numbers nor booleans.
type Targeting struct {
	Rule Rule
}

// ruleNode is the wire shape of a rule tree node.
type ruleNode struct {
	AllOf     []ruleNode `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	AnyOf     []ruleNode `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	Attribute string     `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Op        Operator   `json:"op,omitempty" yaml:"op,omitempty"`
	Value     *operand   `json:"value,omitempty" yaml:"value,omitempty"`
	Values    []operand  `json:"values,omitempty" yaml:"values,omitempty"`
}

// operand decodes a rule value without failing: anything that is not a
// number or a boolean becomes an invalid Value holding the source text.
type operand Value

func (o *operand) UnmarshalJSON(b []byte) error {
	var v Value
	if err := json.Unmarshal(b, &v); err != nil {
		var s string
		if json.Unmarshal(b, &s) != nil {
			s = string(bytes.TrimSpace(b))
		}
		v = Value{raw: s}
	}
	*o = operand(v)
	return nil
}

func (o *operand) UnmarshalYAML(node *yaml.Node) error {
	var v Value
	if node.Kind != yaml.ScalarNode || node.Decode(&v) != nil {
		raw := node.Value
		if raw == "" {
			raw = node.Tag
		}
		v = Value{raw: raw}
	}
	*o = operand(v)
	return nil
}

func (o operand) MarshalJSON() ([]byte, error) { return Value(o).MarshalJSON() }

func (o operand) MarshalYAML() (any, error) { return Value(o).MarshalYAML() }

func (n ruleNode) toRule() Rule {
	switch {
	case n.AllOf != nil:
		return AllOf{Rules: toRules(n.AllOf)}
	case n.AnyOf != nil:
		return AnyOf{Rules: toRules(n.AnyOf)}
	case n.Attribute != "" || n.Op != "" || n.Value != nil || n.Values != nil:
		var values []Value
		if n.Value != nil {
			values = append(values, Value(*n.Value))
		}
		for _, o := range n.Values {
			values = append(values, Value(o))
		}
		return Compare{Attribute: n.Attribute, Operator: n.Op, Values: values}
	default:
		return Empty{}
	}
}

func toRules(nodes []ruleNode) []Rule {
	out := make([]Rule, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.toRule())
	}
	return out
}

func fromRule(r Rule) ruleNode {
	switch n := r.(type) {
	case AllOf:
		return ruleNode{AllOf: fromRules(n.Rules)}
	case AnyOf:
		return ruleNode{AnyOf: fromRules(n.Rules)}
	case Compare:
		node := ruleNode{Attribute: n.Attribute, Op: n.Operator}
		if len(n.Values) == 1 {
			v := operand(n.Values[0])
			node.Value = &v
		} else if n.Values != nil {
			node.Values = make([]operand, 0, len(n.Values))
			for _, v := range n.Values {
				node.Values = append(node.Values, operand(v))
			}
		}
		return node
	default:
		return ruleNode{}
	}
}

func fromRules(rules []Rule) []ruleNode {
	out := make([]ruleNode, 0, len(rules))
	for _, r := range rules {
		out = append(out, fromRule(r))
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (t Targeting) MarshalJSON() ([]byte, error) {
	return json.Marshal(fromRule(t.Rule))
}

// UnmarshalJSON implements json.Unmarshaler. null decodes to the empty rule.
func (t *Targeting) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		t.Rule = Empty{}
		return nil
	}
	var n ruleNode
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	t.Rule = n.toRule()
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Targeting) MarshalYAML() (any, error) {
	return fromRule(t.Rule), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Targeting) UnmarshalYAML(node *yaml.Node) error {
	var n ruleNode
	if err := node.Decode(&n); err != nil {
		return err
	}
	t.Rule = n.toRule()
	return nil
}
