// Package query provides the search query value handed to the Solr backend.
package query

import "github.com/ibexa/solr-search-engine/internal/criterion"

// DocumentType identifies which record type a query targets.
// The value is stored verbatim in the index document type field.
type DocumentType string

const (
	DocumentTypeContent  DocumentType = "content"
	DocumentTypeLocation DocumentType = "location"
)

// ParseDocumentType resolves "content" or "location".
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case DocumentTypeContent, DocumentTypeLocation:
		return DocumentType(s), true
	default:
		return "", false
	}
}

// Query is a backend-independent search query.
//
// Query scores documents, Filter restricts them without scoring. Either may
// be nil. A zero Limit means the backend default.
type Query struct {
	Query        criterion.Criterion
	Filter       criterion.Criterion
	Offset       int
	Limit        int
	Aggregations []Aggregation
}

// AggregationType selects how an aggregation's buckets are computed and how
// its keys are resolved.
type AggregationType string

const (
	// TermLocation buckets hits by location id.
	TermLocation AggregationType = "location_term"
	// TermContentType buckets hits by content type id.
	TermContentType AggregationType = "content_type_term"
)

// Aggregation is a term aggregation request.
type Aggregation struct {
	Name     string          `yaml:"name" json:"name"`
	Type     AggregationType `yaml:"type" json:"type"`
	Limit    int             `yaml:"limit,omitempty" json:"limit,omitempty"`
	MinCount int             `yaml:"min_count,omitempty" json:"min_count,omitempty"`
}

// Field returns the index field the aggregation buckets on.
func (a Aggregation) Field() string {
	switch a.Type {
	case TermLocation:
		return "location_id_id"
	case TermContentType:
		return "content_type_id_id"
	default:
		return ""
	}
}
