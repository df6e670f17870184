package testutil

import "github.com/ibexa/solr-search-engine/internal/content"

// FailingPermissionResolver fails every current user lookup with Err.
type FailingPermissionResolver struct {
	Err error
}

// CurrentUserReference returns Err.
func (r FailingPermissionResolver) CurrentUserReference() (content.UserReference, error) {
	return content.UserReference{}, r.Err
}
