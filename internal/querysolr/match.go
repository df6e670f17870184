package querysolr

import (
	"context"

	"github.com/ibexa/solr-search-engine/internal/criterion"
)

// MatchAllVisitor renders *:*.
type MatchAllVisitor struct{}

func (MatchAllVisitor) CanVisit(c criterion.Criterion) bool {
	_, ok := c.(*criterion.MatchAll)
	return ok
}

func (MatchAllVisitor) Visit(context.Context, criterion.Criterion, SubVisitor) (string, error) {
	return "*:*", nil
}

// MatchNoneVisitor renders NOT *:*.
type MatchNoneVisitor struct{}

func (MatchNoneVisitor) CanVisit(c criterion.Criterion) bool {
	_, ok := c.(*criterion.MatchNone)
	return ok
}

func (MatchNoneVisitor) Visit(context.Context, criterion.Criterion, SubVisitor) (string, error) {
	return "NOT *:*", nil
}
