package querysolr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ibexa/solr-search-engine/internal/content"
	"github.com/ibexa/solr-search-engine/internal/criterion"
)

// IsContainerVisitor renders is_container_b:true or is_container_b:false.
type IsContainerVisitor struct{}

func (IsContainerVisitor) CanVisit(c criterion.Criterion) bool {
	n, ok := c.(*criterion.IsContainer)
	return ok && n.Operator == criterion.EQ
}

func (IsContainerVisitor) Visit(_ context.Context, c criterion.Criterion, _ SubVisitor) (string, error) {
	n := c.(*criterion.IsContainer)
	if len(n.Value) == 0 {
		return "", fmt.Errorf("%w: expected IsContainer criterion value to be a single-element array", ErrMalformedValue)
	}

	if n.Value[0] == 1 {
		return "is_container_b:true", nil
	}
	return "is_container_b:false", nil
}

// bookmarkedUserIDsField lists the ids of users who bookmarked a location.
const bookmarkedUserIDsField = "location_bookmarked_user_ids_mid"

// IsBookmarkedVisitor renders a bookmark test for the current user.
type IsBookmarkedVisitor struct {
	permissions content.PermissionResolver
}

// NewIsBookmarkedVisitor creates a visitor resolving the current user
// through permissions.
func NewIsBookmarkedVisitor(permissions content.PermissionResolver) *IsBookmarkedVisitor {
	return &IsBookmarkedVisitor{permissions: permissions}
}

func (v *IsBookmarkedVisitor) CanVisit(c criterion.Criterion) bool {
	n, ok := c.(*criterion.IsBookmarked)
	return ok && n.Operator == criterion.EQ
}

func (v *IsBookmarkedVisitor) Visit(_ context.Context, c criterion.Criterion, _ SubVisitor) (string, error) {
	n := c.(*criterion.IsBookmarked)
	if len(n.Value) == 0 {
		return "", fmt.Errorf("%w: expected IsBookmarked criterion value to be a single-element array", ErrMalformedValue)
	}

	user, err := v.permissions.CurrentUserReference()
	if err != nil {
		return "", fmt.Errorf("resolve current user: %w", err)
	}

	query := bookmarkedUserIDsField + `:"` + strconv.FormatInt(user.UserID, 10) + `"`
	if !n.Value[0] {
		query = "NOT " + query
	}
	return query, nil
}
