package domain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Attribute names understood by targeting rules. Profiles may carry other
// keys; rules referencing them are evaluated the same way.
const (
	AttrCreditScore         = "creditScore"
	AttrMemberTenureYears   = "memberTenureYears"
	AttrAccountBalance      = "accountBalance"
	AttrHasAutoLoan         = "hasAutoLoan"
	AttrHasMortgage         = "hasMortgage"
	AttrDirectDeposit       = "directDeposit"
	AttrUsedCreditMountain  = "usedCreditMountain"
	AttrCreditScoreImproved = "creditScoreImproved"
)

// ValueKind tells whether a Value holds a number or a boolean.
type ValueKind uint8

const (
	KindInvalid ValueKind = iota
	KindNumber
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a profile attribute or rule operand. The zero Value is invalid
// and never equals anything. An invalid operand may keep the text it was
// decoded from.
type Value struct {
	kind ValueKind
	num  float64
	b    bool
	raw  string
}

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the kind of v.
func (v Value) Kind() ValueKind { return v.kind }

// AsNumber returns the numeric value and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean value and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		if v.raw != "" {
			return strconv.Quote(v.raw)
		}
		return "<invalid>"
	}
}

// MarshalJSON encodes v as a bare JSON number or boolean.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		if v.raw != "" {
			return json.Marshal(v.raw)
		}
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON number or boolean.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	return v.set(raw)
}

// MarshalYAML encodes v as a YAML scalar.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindBool:
		return v.b, nil
	default:
		if v.raw != "" {
			return v.raw, nil
		}
		return nil, nil
	}
}

// UnmarshalYAML accepts a YAML number or boolean scalar.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return v.set(raw)
}

func (v *Value) set(raw any) error {
	switch x := raw.(type) {
	case bool:
		*v = Bool(x)
	case float64:
		*v = Number(x)
	case int:
		*v = Number(float64(x))
	case int64:
		*v = Number(float64(x))
	case uint64:
		*v = Number(float64(x))
	case nil:
		*v = Value{}
	default:
		return fmt.Errorf("attribute value must be a number or a boolean, got %T", raw)
	}
	return nil
}

// Attributes is the attribute bag of a member profile.
type Attributes map[string]Value

// Lookup returns the named attribute and whether the profile carries it.
func (a Attributes) Lookup(name string) (Value, bool) {
	v, ok := a[name]
	if !ok || v.kind == KindInvalid {
		return Value{}, false
	}
	return v, true
}

// flag reports whether the named boolean attribute is present and true.
func (a Attributes) flag(name string) bool {
	v, ok := a.Lookup(name)
	if !ok {
		return false
	}
	b, isBool := v.AsBool()
	return isBool && b
}

// MemberProfile is the member the storefront is rendered for. The engine
// only reads it.
type MemberProfile struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Attributes Attributes `json:"attributes" yaml:"attributes"`
}

// IsCreditMountainGraduate reports whether the member used Credit Mountain
// coaching and improved their credit score as a result.
func (p MemberProfile) IsCreditMountainGraduate() bool {
	return p.Attributes.flag(AttrUsedCreditMountain) && p.Attributes.flag(AttrCreditScoreImproved)
}
