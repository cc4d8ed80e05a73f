// Package targeting decides whether a member profile satisfies a
// campaign-product's targeting rule.
//
// Evaluation never fails: a rule that references an attribute the profile
// does not carry, uses an unknown operator, or compares values of the wrong
// kind is treated as a non-match at that leaf, and the problem is recorded
// as a reason. Reasons exist for the admin preview; the show/hide decision
// does not depend on them.
package targeting

import (
	"fmt"

	"storefront-offers/internal/core/domain"
)

// Result is the outcome of evaluating a rule against a profile.
type Result struct {
	Matched bool
	// Reasons explain the outcome, in evaluation order.
	Reasons []string
}

// Evaluate evaluates rule against profile. AllOf stops at the first child
// that does not match and AnyOf at the first child that does, so reasons
// only cover the children actually visited.
func Evaluate(rule domain.Rule, profile domain.MemberProfile) Result {
	if domain.IsEmpty(rule) {
		return Result{Matched: true, Reasons: []string{"no targeting: shown to every member"}}
	}
	var reasons []string
	matched := evaluate(rule, profile.Attributes, &reasons)
	return Result{Matched: matched, Reasons: reasons}
}

func evaluate(rule domain.Rule, attrs domain.Attributes, reasons *[]string) bool {
	// Subtrees without leaves match, same as a top-level empty rule.
	if domain.IsEmpty(rule) {
		return true
	}

	switch n := rule.(type) {
	case domain.Compare:
		ok, reason := compare(n, attrs)
		*reasons = append(*reasons, reason)
		return ok

	case domain.AllOf:
		for _, child := range n.Rules {
			if !evaluate(child, attrs, reasons) {
				return false
			}
		}
		return true

	case domain.AnyOf:
		for _, child := range n.Rules {
			if evaluate(child, attrs, reasons) {
				return true
			}
		}
		*reasons = append(*reasons, "anyOf: no alternative matched")
		return false

	default:
		*reasons = append(*reasons, fmt.Sprintf("unsupported rule node %T", rule))
		return false
	}
}

// compare evaluates a single leaf and describes the outcome.
func compare(c domain.Compare, attrs domain.Attributes) (bool, string) {
	actual, ok := attrs.Lookup(c.Attribute)
	if !ok {
		return false, fmt.Sprintf("%s: attribute missing from profile", c.Attribute)
	}

	matched, err := evaluateOperator(c.Operator, actual, c.Values)
	if err != nil {
		return false, fmt.Sprintf("%s %s: %v", c.Attribute, c.Operator, err)
	}

	verdict := "not satisfied"
	if matched {
		verdict = "satisfied"
	}
	return matched, fmt.Sprintf("%s %s %s: %s (actual %s)", c.Attribute, c.Operator, operands(c.Values), verdict, actual)
}

func operands(values []domain.Value) string {
	if len(values) == 2 {
		return fmt.Sprintf("[%s, %s]", values[0], values[1])
	}
	if len(values) == 1 {
		return values[0].String()
	}
	return fmt.Sprint(values)
}
