package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTargetingUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Rule
	}{
		{name: "null", in: `null`, want: Empty{}},
		{name: "empty object", in: `{}`, want: Empty{}},
		{
			name: "leaf",
			in:   `{"attribute":"creditScore","op":"gte","value":700}`,
			want: Leaf(AttrCreditScore, OpGte, Number(700)),
		},
		{
			name: "between",
			in:   `{"attribute":"creditScore","op":"between","values":[650,750]}`,
			want: Between(AttrCreditScore, Number(650), Number(750)),
		},
		{
			name: "nested",
			in:   `{"allOf":[{"attribute":"hasAutoLoan","op":"eq","value":false},{"anyOf":[]}]}`,
			want: AllOf{Rules: []Rule{
				Leaf(AttrHasAutoLoan, OpEq, Bool(false)),
				AnyOf{Rules: []Rule{}},
			}},
		},
		{
			name: "unknown operator is kept",
			in:   `{"attribute":"creditScore","op":"approx","value":1}`,
			want: Leaf(AttrCreditScore, "approx", Number(1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Targeting
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got.Rule)
		})
	}
}

func TestTargetingUnmarshalYAML(t *testing.T) {
	doc := `
anyOf:
  - attribute: memberTenureYears
    op: gt
    value: 5
  - allOf:
      - attribute: directDeposit
        op: eq
        value: true
      - attribute: accountBalance
        op: between
        values: [1000, 25000.5]
`
	var got Targeting
	require.NoError(t, yaml.Unmarshal([]byte(doc), &got))

	want := AnyOf{Rules: []Rule{
		Leaf(AttrMemberTenureYears, OpGt, Number(5)),
		AllOf{Rules: []Rule{
			Leaf(AttrDirectDeposit, OpEq, Bool(true)),
			Between(AttrAccountBalance, Number(1000), Number(25000.5)),
		}},
	}}
	assert.Equal(t, want, got.Rule)
}

func TestTargetingMarshalJSON(t *testing.T) {
	tgt := Targeting{Rule: AllOf{Rules: []Rule{
		Leaf(AttrCreditScore, OpGte, Number(700)),
		Between(AttrAccountBalance, Number(0), Number(500)),
	}}}
	b, err := json.Marshal(tgt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"allOf":[
		{"attribute":"creditScore","op":"gte","value":700},
		{"attribute":"accountBalance","op":"between","values":[0,500]}
	]}`, string(b))

	b, err = json.Marshal(Targeting{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}

func TestValueRejectsStrings(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`"700"`), &v))
}

func TestTargetingUnmarshal_MalformedOperand(t *testing.T) {
	want := Leaf(AttrCreditScore, OpGte, Value{raw: "700"})

	var fromJSON Targeting
	require.NoError(t, json.Unmarshal([]byte(`{"attribute":"creditScore","op":"gte","value":"700"}`), &fromJSON))
	assert.Equal(t, want, fromJSON.Rule)

	var fromYAML Targeting
	require.NoError(t, yaml.Unmarshal([]byte("attribute: creditScore\nop: gte\nvalue: \"700\"\n"), &fromYAML))
	assert.Equal(t, want, fromYAML.Rule)

	var nested Targeting
	require.NoError(t, yaml.Unmarshal([]byte("attribute: accountBalance\nop: between\nvalues: [0, {max: 5}]\n"), &nested))
	leaf, ok := nested.Rule.(Compare)
	require.True(t, ok)
	require.Len(t, leaf.Values, 2)
	assert.Equal(t, KindNumber, leaf.Values[0].Kind())
	assert.Equal(t, KindInvalid, leaf.Values[1].Kind())

	b, err := json.Marshal(fromJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"attribute":"creditScore","op":"gte","value":"700"}`, string(b))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(Empty{}))
	assert.True(t, IsEmpty(AllOf{}))
	assert.True(t, IsEmpty(AnyOf{Rules: []Rule{AllOf{}, Empty{}}}))
	assert.False(t, IsEmpty(AllOf{Rules: []Rule{Empty{}, Leaf(AttrHasMortgage, OpEq, Bool(true))}}))
	assert.False(t, IsEmpty(Compare{}))
}

func TestIsCreditMountainGraduate(t *testing.T) {
	p := MemberProfile{Attributes: Attributes{
		AttrUsedCreditMountain:  Bool(true),
		AttrCreditScoreImproved: Bool(true),
	}}
	assert.True(t, p.IsCreditMountainGraduate())

	p.Attributes[AttrCreditScoreImproved] = Bool(false)
	assert.False(t, p.IsCreditMountainGraduate())

	delete(p.Attributes, AttrCreditScoreImproved)
	assert.False(t, p.IsCreditMountainGraduate())
}
