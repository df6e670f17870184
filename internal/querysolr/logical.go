package querysolr

import (
	"context"
	"fmt"
	"strings"

	"github.com/ibexa/solr-search-engine/internal/criterion"
)

// LogicalAndVisitor renders (a AND b AND ...).
type LogicalAndVisitor struct{}

func (LogicalAndVisitor) CanVisit(c criterion.Criterion) bool {
	_, ok := c.(*criterion.LogicalAnd)
	return ok
}

func (LogicalAndVisitor) Visit(ctx context.Context, c criterion.Criterion, sub SubVisitor) (string, error) {
	return visitChildren(ctx, c.(*criterion.LogicalAnd).Criteria, " AND ", sub, c)
}

// LogicalOrVisitor renders (a OR b OR ...).
type LogicalOrVisitor struct{}

func (LogicalOrVisitor) CanVisit(c criterion.Criterion) bool {
	_, ok := c.(*criterion.LogicalOr)
	return ok
}

func (LogicalOrVisitor) Visit(ctx context.Context, c criterion.Criterion, sub SubVisitor) (string, error) {
	return visitChildren(ctx, c.(*criterion.LogicalOr).Criteria, " OR ", sub, c)
}

// LogicalNotVisitor renders NOT (a).
type LogicalNotVisitor struct{}

func (LogicalNotVisitor) CanVisit(c criterion.Criterion) bool {
	_, ok := c.(*criterion.LogicalNot)
	return ok
}

func (LogicalNotVisitor) Visit(ctx context.Context, c criterion.Criterion, sub SubVisitor) (string, error) {
	not := c.(*criterion.LogicalNot)
	if not.Criterion == nil {
		return "", fmt.Errorf("%w: LogicalNot requires exactly one criterion", ErrMalformedValue)
	}

	inner, err := sub.Visit(ctx, not.Criterion)
	if err != nil {
		return "", err
	}
	return "NOT (" + inner + ")", nil
}

func visitChildren(ctx context.Context, children []criterion.Criterion, sep string, sub SubVisitor, parent criterion.Criterion) (string, error) {
	if len(children) == 0 {
		return "", fmt.Errorf("%w: %s requires at least one criterion", ErrMalformedValue, criterion.TypeName(parent))
	}

	parts := make([]string, 0, len(children))
	for _, child := range children {
		part, err := sub.Visit(ctx, child)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}

	return "(" + strings.Join(parts, sep) + ")", nil
}
