package criterion

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned by Validate for malformed criterion trees.
var ErrInvalid = errors.New("invalid criterion")

// Validate checks that a criterion tree is well formed:
//  1. Logical AND/OR nodes have at least one child
//  2. NOT nodes have exactly one (non-nil) child
//  3. Leaf operators are accepted by the leaf type
//  4. Value arity matches the operator (single-element flags, two BETWEEN bounds)
//
// All problems are reported in one error wrapping ErrInvalid.
// Validate is a pure function with no side effects.
func Validate(c Criterion) error {
	v := &validator{}
	v.validate(c, "$")

	if len(v.problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(v.problems, "; "))
}

// validator accumulates problems during traversal.
type validator struct {
	problems []string
}

func (v *validator) addProblem(path, format string, args ...any) {
	v.problems = append(v.problems, path+": "+fmt.Sprintf(format, args...))
}

func (v *validator) validate(c Criterion, path string) {
	if c == nil {
		v.addProblem(path, "nil criterion")
		return
	}

	switch n := c.(type) {
	case *LogicalAnd:
		v.validateChildren(n.Criteria, path+".and")
	case *LogicalOr:
		v.validateChildren(n.Criteria, path+".or")
	case *LogicalNot:
		if n.Criterion == nil {
			v.addProblem(path+".not", "requires exactly one criterion")
			return
		}
		v.validate(n.Criterion, path+".not")
	case *ContentID, *LocationID, *ParentLocationID, *ContentTypeID, *SectionID:
		op, ids, _ := IDs(n)
		v.validateIDs(op, ids, fmt.Sprintf("%s(%s)", path, TypeName(n)))
	case *IsContainer:
		v.validateFlag(n.Operator, len(n.Value), path+"(IsContainer)")
	case *IsBookmarked:
		v.validateFlag(n.Operator, len(n.Value), path+"(IsBookmarked)")
	case *CustomField:
		v.validateCustomField(n, path+"(CustomField)")
	case *MatchAll, *MatchNone:
		// No fields to check
	default:
		v.addProblem(path, "unknown criterion type %T", c)
	}
}

func (v *validator) validateChildren(children []Criterion, path string) {
	if len(children) == 0 {
		v.addProblem(path, "requires at least one criterion")
		return
	}
	for i, child := range children {
		v.validate(child, fmt.Sprintf("%s[%d]", path, i))
	}
}

func (v *validator) validateIDs(op Operator, ids []int64, path string) {
	switch op.OrIN() {
	case IN:
		if len(ids) == 0 {
			v.addProblem(path, "IN requires at least one value")
		}
	case EQ:
		if len(ids) != 1 {
			v.addProblem(path, "EQ requires exactly one value, got %d", len(ids))
		}
	default:
		v.addProblem(path, "unsupported operator %q", op)
	}
}

func (v *validator) validateFlag(op Operator, n int, path string) {
	if op != EQ {
		v.addProblem(path, "unsupported operator %q", op)
	}
	if n != 1 {
		v.addProblem(path, "expected a single-element value, got %d elements", n)
	}
}

func (v *validator) validateCustomField(f *CustomField, path string) {
	if f.Field == "" {
		v.addProblem(path, "field name is required")
	}

	switch f.Operator {
	case EQ, GT, GTE, LT, LTE:
		if len(f.Value) != 1 {
			v.addProblem(path, "operator %q requires exactly one value, got %d", f.Operator, len(f.Value))
		}
	case IN:
		if len(f.Value) == 0 {
			v.addProblem(path, "IN requires at least one value")
		}
	case BETWEEN:
		if len(f.Value) != 2 {
			v.addProblem(path, "BETWEEN requires exactly two values, got %d", len(f.Value))
		}
	default:
		v.addProblem(path, "unsupported operator %q", f.Operator)
	}
}

// TypeName returns the bare type name of a criterion for error messages,
// e.g. "ContentID".
func TypeName(c Criterion) string {
	if c == nil {
		return "<nil>"
	}
	name := fmt.Sprintf("%T", c)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
