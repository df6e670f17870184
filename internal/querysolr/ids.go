package querysolr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ibexa/solr-search-engine/internal/criterion"
)

// IDInVisitor renders id membership criteria (EQ or IN) as a disjunction of
// equality clauses: (field:"1" OR field:"2").
type IDInVisitor struct {
	// Field is the index field holding the id.
	Field string

	// Matches reports whether a criterion is of the handled type.
	Matches func(c criterion.Criterion) bool
}

// NewContentIDVisitor handles ContentID on content_id_id.
func NewContentIDVisitor() *IDInVisitor {
	return newIDInVisitor("content_id_id", func(c criterion.Criterion) bool {
		_, ok := c.(*criterion.ContentID)
		return ok
	})
}

// NewLocationIDVisitor handles LocationID on the given field
// (location_id_id for location documents, location_id_mid for content).
func NewLocationIDVisitor(field string) *IDInVisitor {
	return newIDInVisitor(field, func(c criterion.Criterion) bool {
		_, ok := c.(*criterion.LocationID)
		return ok
	})
}

// NewParentLocationIDVisitor handles ParentLocationID on the given field
// (parent_id_id for location documents, location_parent_id_mid for content).
func NewParentLocationIDVisitor(field string) *IDInVisitor {
	return newIDInVisitor(field, func(c criterion.Criterion) bool {
		_, ok := c.(*criterion.ParentLocationID)
		return ok
	})
}

// NewContentTypeIDVisitor handles ContentTypeID on content_type_id_id.
func NewContentTypeIDVisitor() *IDInVisitor {
	return newIDInVisitor("content_type_id_id", func(c criterion.Criterion) bool {
		_, ok := c.(*criterion.ContentTypeID)
		return ok
	})
}

// NewSectionIDVisitor handles SectionID on content_section_id_id.
func NewSectionIDVisitor() *IDInVisitor {
	return newIDInVisitor("content_section_id_id", func(c criterion.Criterion) bool {
		_, ok := c.(*criterion.SectionID)
		return ok
	})
}

func newIDInVisitor(field string, matches func(criterion.Criterion) bool) *IDInVisitor {
	return &IDInVisitor{Field: field, Matches: matches}
}

func (v *IDInVisitor) CanVisit(c criterion.Criterion) bool {
	if !v.Matches(c) {
		return false
	}
	op, _, ok := criterion.IDs(c)
	return ok && (op.OrIN() == criterion.IN || op == criterion.EQ)
}

func (v *IDInVisitor) Visit(_ context.Context, c criterion.Criterion, _ SubVisitor) (string, error) {
	_, ids, _ := criterion.IDs(c)
	if len(ids) == 0 {
		return "", fmt.Errorf("%w: expected %s criterion value to hold at least one id", ErrMalformedValue, criterion.TypeName(c))
	}

	clauses := make([]string, len(ids))
	for i, id := range ids {
		clauses[i] = v.Field + `:"` + strconv.FormatInt(id, 10) + `"`
	}
	return "(" + strings.Join(clauses, " OR ") + ")", nil
}
