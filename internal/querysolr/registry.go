package querysolr

import "github.com/ibexa/solr-search-engine/internal/content"

// NewContentRegistry returns the visitors for content documents, in
// dispatch order.
func NewContentRegistry() *Registry {
	return NewRegistry(
		LogicalAndVisitor{},
		LogicalOrVisitor{},
		LogicalNotVisitor{},
		NewContentIDVisitor(),
		NewLocationIDVisitor("location_id_mid"),
		NewParentLocationIDVisitor("location_parent_id_mid"),
		NewContentTypeIDVisitor(),
		NewSectionIDVisitor(),
		CustomFieldInVisitor{},
		CustomFieldRangeVisitor{},
		MatchAllVisitor{},
		MatchNoneVisitor{},
	)
}

// NewLocationRegistry returns the visitors for location documents, in
// dispatch order. Bookmark criteria resolve the current user through
// permissions.
func NewLocationRegistry(permissions content.PermissionResolver) *Registry {
	return NewRegistry(
		LogicalAndVisitor{},
		LogicalOrVisitor{},
		LogicalNotVisitor{},
		NewContentIDVisitor(),
		NewLocationIDVisitor("location_id_id"),
		NewParentLocationIDVisitor("parent_id_id"),
		NewContentTypeIDVisitor(),
		NewSectionIDVisitor(),
		IsContainerVisitor{},
		NewIsBookmarkedVisitor(permissions),
		CustomFieldInVisitor{},
		CustomFieldRangeVisitor{},
		MatchAllVisitor{},
		MatchNoneVisitor{},
	)
}
