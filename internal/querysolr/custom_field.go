package querysolr

import (
	"context"
	"fmt"
	"strings"

	"github.com/ibexa/solr-search-engine/internal/criterion"
)

// CustomFieldInVisitor renders EQ as field:"value" and IN as
// field:("a" OR "b").
type CustomFieldInVisitor struct{}

func (CustomFieldInVisitor) CanVisit(c criterion.Criterion) bool {
	n, ok := c.(*criterion.CustomField)
	if !ok {
		return false
	}
	op := n.Operator.OrIN()
	return op == criterion.IN || op == criterion.EQ
}

func (CustomFieldInVisitor) Visit(_ context.Context, c criterion.Criterion, _ SubVisitor) (string, error) {
	n := c.(*criterion.CustomField)
	if n.Field == "" {
		return "", fmt.Errorf("%w: CustomField criterion requires a field name", ErrMalformedValue)
	}
	if len(n.Value) == 0 {
		return "", fmt.Errorf("%w: CustomField criterion on %q has no value", ErrMalformedValue, n.Field)
	}

	if n.Operator == criterion.EQ {
		if len(n.Value) != 1 {
			return "", fmt.Errorf("%w: CustomField EQ on %q expects one value, got %d", ErrMalformedValue, n.Field, len(n.Value))
		}
		v, err := quote(n.Value[0])
		if err != nil {
			return "", err
		}
		return n.Field + ":" + v, nil
	}

	values := make([]string, len(n.Value))
	for i, value := range n.Value {
		v, err := quote(value)
		if err != nil {
			return "", err
		}
		values[i] = v
	}
	return n.Field + ":(" + strings.Join(values, " OR ") + ")", nil
}

// CustomFieldRangeVisitor renders range operators:
//
//	GT  field:{v TO *}    GTE field:[v TO *]
//	LT  field:{* TO v}    LTE field:[* TO v]
//	BETWEEN field:[a TO b]
type CustomFieldRangeVisitor struct{}

func (CustomFieldRangeVisitor) CanVisit(c criterion.Criterion) bool {
	n, ok := c.(*criterion.CustomField)
	return ok && n.Operator.IsRange()
}

func (CustomFieldRangeVisitor) Visit(_ context.Context, c criterion.Criterion, _ SubVisitor) (string, error) {
	n := c.(*criterion.CustomField)
	if n.Field == "" {
		return "", fmt.Errorf("%w: CustomField criterion requires a field name", ErrMalformedValue)
	}

	want := 1
	if n.Operator == criterion.BETWEEN {
		want = 2
	}
	if len(n.Value) != want {
		return "", fmt.Errorf("%w: CustomField %s on %q expects %d value(s), got %d",
			ErrMalformedValue, strings.ToUpper(string(n.Operator)), n.Field, want, len(n.Value))
	}

	bounds := make([]string, len(n.Value))
	for i, value := range n.Value {
		b, err := rangeBound(value)
		if err != nil {
			return "", err
		}
		bounds[i] = b
	}

	var r string
	switch n.Operator {
	case criterion.GT:
		r = "{" + bounds[0] + " TO *}"
	case criterion.GTE:
		r = "[" + bounds[0] + " TO *]"
	case criterion.LT:
		r = "{* TO " + bounds[0] + "}"
	case criterion.LTE:
		r = "[* TO " + bounds[0] + "]"
	case criterion.BETWEEN:
		r = "[" + bounds[0] + " TO " + bounds[1] + "]"
	}
	return n.Field + ":" + r, nil
}
