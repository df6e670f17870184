package criterion

// Criterion is a node in a criterion tree.
//
// This is a sealed interface - only types in this package implement it.
// All implementations use pointer receivers, so type switches in backends
// match on *LogicalAnd, *ContentID and so on.
type Criterion interface {
	criterionNode()
}

// LogicalAnd matches when every child matches.
type LogicalAnd struct {
	Criteria []Criterion
}

func (*LogicalAnd) criterionNode() {}

// LogicalOr matches when at least one child matches.
type LogicalOr struct {
	Criteria []Criterion
}

func (*LogicalOr) criterionNode() {}

// LogicalNot matches when its single child does not.
type LogicalNot struct {
	Criterion Criterion
}

func (*LogicalNot) criterionNode() {}

// ContentID matches content by id.
// Accepts IN (the default) and EQ.
type ContentID struct {
	Operator Operator
	Value    []int64
}

func (*ContentID) criterionNode() {}

// LocationID matches locations by id.
// Accepts IN (the default) and EQ.
type LocationID struct {
	Operator Operator
	Value    []int64
}

func (*LocationID) criterionNode() {}

// ParentLocationID matches locations by the id of their parent.
// Accepts IN (the default) and EQ.
type ParentLocationID struct {
	Operator Operator
	Value    []int64
}

func (*ParentLocationID) criterionNode() {}

// ContentTypeID matches content by content type id.
// Accepts IN (the default) and EQ.
type ContentTypeID struct {
	Operator Operator
	Value    []int64
}

func (*ContentTypeID) criterionNode() {}

// SectionID matches content by section id.
// Accepts IN (the default) and EQ.
type SectionID struct {
	Operator Operator
	Value    []int64
}

func (*SectionID) criterionNode() {}

// IsContainer matches locations whose content is (or is not) a container.
// Value holds a single element: 1 for containers, anything else otherwise.
// Accepts EQ only.
type IsContainer struct {
	Operator Operator
	Value    []int
}

func (*IsContainer) criterionNode() {}

// IsBookmarked matches locations bookmarked (or not) by the current user.
// Value holds a single element. Accepts EQ only.
type IsBookmarked struct {
	Operator Operator
	Value    []bool
}

func (*IsBookmarked) criterionNode() {}

// CustomField matches a raw index field.
// Accepts EQ, IN and the range operators. Value elements are strings,
// booleans or numbers; BETWEEN takes exactly two.
type CustomField struct {
	Field    string
	Operator Operator
	Value    []any
}

func (*CustomField) criterionNode() {}

// MatchAll matches every document.
type MatchAll struct{}

func (*MatchAll) criterionNode() {}

// MatchNone matches no document.
type MatchNone struct{}

func (*MatchNone) criterionNode() {}

// NewLogicalAnd creates a conjunction of the given criteria.
func NewLogicalAnd(criteria ...Criterion) *LogicalAnd {
	return &LogicalAnd{Criteria: criteria}
}

// NewLogicalOr creates a disjunction of the given criteria.
func NewLogicalOr(criteria ...Criterion) *LogicalOr {
	return &LogicalOr{Criteria: criteria}
}

// NewLogicalNot negates the given criterion.
func NewLogicalNot(c Criterion) *LogicalNot {
	return &LogicalNot{Criterion: c}
}

// NewContentID creates an IN criterion over content ids.
func NewContentID(ids ...int64) *ContentID {
	return &ContentID{Operator: IN, Value: ids}
}

// NewLocationID creates an IN criterion over location ids.
func NewLocationID(ids ...int64) *LocationID {
	return &LocationID{Operator: IN, Value: ids}
}

// NewParentLocationID creates an IN criterion over parent location ids.
func NewParentLocationID(ids ...int64) *ParentLocationID {
	return &ParentLocationID{Operator: IN, Value: ids}
}

// NewContentTypeID creates an IN criterion over content type ids.
func NewContentTypeID(ids ...int64) *ContentTypeID {
	return &ContentTypeID{Operator: IN, Value: ids}
}

// NewSectionID creates an IN criterion over section ids.
func NewSectionID(ids ...int64) *SectionID {
	return &SectionID{Operator: IN, Value: ids}
}

// NewIsContainer creates an EQ criterion on the container flag.
func NewIsContainer(container bool) *IsContainer {
	v := 0
	if container {
		v = 1
	}
	return &IsContainer{Operator: EQ, Value: []int{v}}
}

// NewIsBookmarked creates an EQ criterion on the current user's bookmarks.
func NewIsBookmarked(bookmarked bool) *IsBookmarked {
	return &IsBookmarked{Operator: EQ, Value: []bool{bookmarked}}
}

// NewCustomField creates a criterion on a raw index field.
func NewCustomField(field string, op Operator, values ...any) *CustomField {
	return &CustomField{Field: field, Operator: op, Value: values}
}

// IDs returns the operator and values of an id membership criterion
// (ContentID, LocationID, ParentLocationID, ContentTypeID, SectionID).
// ok is false for any other criterion.
func IDs(c Criterion) (op Operator, ids []int64, ok bool) {
	switch n := c.(type) {
	case *ContentID:
		return n.Operator, n.Value, true
	case *LocationID:
		return n.Operator, n.Value, true
	case *ParentLocationID:
		return n.Operator, n.Value, true
	case *ContentTypeID:
		return n.Operator, n.Value, true
	case *SectionID:
		return n.Operator, n.Value, true
	default:
		return OperatorUnspecified, nil, false
	}
}
