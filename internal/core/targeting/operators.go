package targeting

import (
	"errors"
	"fmt"

	"storefront-offers/internal/core/domain"
)

var errKindMismatch = errors.New("operand kind does not match attribute")

// evaluateOperator compares actual against the rule operands. An error means
// the leaf is malformed; callers treat it as a non-match.
func evaluateOperator(op domain.Operator, actual domain.Value, operands []domain.Value) (bool, error) {
	switch op {
	case domain.OpEq, domain.OpNeq:
		if err := arity(op, operands, 1); err != nil {
			return false, err
		}
		equal, err := evaluateEqual(actual, operands[0])
		if err != nil {
			return false, err
		}
		if op == domain.OpNeq {
			return !equal, nil
		}
		return equal, nil

	case domain.OpGt, domain.OpGte, domain.OpLt, domain.OpLte:
		if err := arity(op, operands, 1); err != nil {
			return false, err
		}
		a, b, err := toNumeric(actual, operands[0])
		if err != nil {
			return false, err
		}
		switch op {
		case domain.OpGt:
			return a > b, nil
		case domain.OpGte:
			return a >= b, nil
		case domain.OpLt:
			return a < b, nil
		default:
			return a <= b, nil
		}

	case domain.OpBetween:
		if err := arity(op, operands, 2); err != nil {
			return false, err
		}
		a, low, err := toNumeric(actual, operands[0])
		if err != nil {
			return false, err
		}
		_, high, err := toNumeric(actual, operands[1])
		if err != nil {
			return false, err
		}
		return low <= a && a <= high, nil

	default:
		return false, fmt.Errorf("unknown operator %q", op)
	}
}

func arity(op domain.Operator, operands []domain.Value, want int) error {
	if len(operands) != want {
		return fmt.Errorf("operator %q takes %d value(s), got %d", op, want, len(operands))
	}
	return nil
}

// evaluateEqual compares two values of the same kind.
func evaluateEqual(actual, expected domain.Value) (bool, error) {
	if actual.Kind() != expected.Kind() {
		return false, fmt.Errorf("%w: %s vs %s", errKindMismatch, actual.Kind(), describe(expected))
	}
	switch actual.Kind() {
	case domain.KindNumber:
		a, _ := actual.AsNumber()
		b, _ := expected.AsNumber()
		return a == b, nil
	case domain.KindBool:
		a, _ := actual.AsBool()
		b, _ := expected.AsBool()
		return a == b, nil
	default:
		return false, fmt.Errorf("%w: invalid value", errKindMismatch)
	}
}

func toNumeric(actual, expected domain.Value) (float64, float64, error) {
	a, ok := actual.AsNumber()
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s is not ordered", errKindMismatch, actual.Kind())
	}
	b, ok := expected.AsNumber()
	if !ok {
		return 0, 0, fmt.Errorf("%w: expected a number, got %s", errKindMismatch, describe(expected))
	}
	return a, b, nil
}

func describe(v domain.Value) string {
	if v.Kind() == domain.KindInvalid {
		return "invalid operand " + v.String()
	}
	return v.Kind().String()
}
