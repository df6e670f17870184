package querysolr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ibexa/solr-search-engine/internal/criterion"
)

var (
	// ErrNoVisitor is returned when no registered visitor accepts a criterion.
	ErrNoVisitor = errors.New("no visitor available")

	// ErrMalformedValue is returned when a criterion value has the wrong shape.
	ErrMalformedValue = errors.New("malformed criterion value")
)

// SubVisitor renders child criteria. Logical visitors receive the registry
// as their SubVisitor.
type SubVisitor interface {
	Visit(ctx context.Context, c criterion.Criterion) (string, error)
}

// Visitor renders one kind of criterion.
type Visitor interface {
	// CanVisit reports whether the visitor handles the criterion, checking
	// both its type and its operator.
	CanVisit(c criterion.Criterion) bool

	// Visit renders the criterion. sub renders nested criteria.
	Visit(ctx context.Context, c criterion.Criterion, sub SubVisitor) (string, error)
}

// Registry dispatches criteria to the first visitor that accepts them.
type Registry struct {
	visitors []Visitor
}

// NewRegistry creates a registry trying visitors in the given order.
func NewRegistry(visitors ...Visitor) *Registry {
	return &Registry{visitors: append([]Visitor(nil), visitors...)}
}

// Visit renders a criterion with the first visitor that accepts it.
func (r *Registry) Visit(ctx context.Context, c criterion.Criterion) (string, error) {
	if c == nil {
		return "", fmt.Errorf("cannot visit nil criterion")
	}

	for _, v := range r.visitors {
		if v.CanVisit(c) {
			return v.Visit(ctx, c, r)
		}
	}

	slog.Debug("no visitor for criterion", "criterion", criterion.TypeName(c))
	return "", fmt.Errorf("%w for criterion %T", ErrNoVisitor, c)
}

// Render renders the root of a criterion tree. A root AND/OR is returned
// without its enclosing parentheses.
func (r *Registry) Render(ctx context.Context, c criterion.Criterion) (string, error) {
	out, err := r.Visit(ctx, c)
	if err != nil {
		return "", err
	}

	switch c.(type) {
	case *criterion.LogicalAnd, *criterion.LogicalOr:
		if len(out) >= 2 && out[0] == '(' && out[len(out)-1] == ')' {
			out = out[1 : len(out)-1]
		}
	}
	return out, nil
}

// Len returns the number of registered visitors.
func (r *Registry) Len() int {
	return len(r.visitors)
}
