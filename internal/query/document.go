package query

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ibexa/solr-search-engine/internal/criterion"
)

// Document is the file form of a Query:
//
//	query:
//	  custom_field: {field: title_s, value: Home}
//	filter:
//	  and:
//	    - content_type_id: [1, 16]
//	    - not: {is_container: true}
//	offset: 0
//	limit: 10
//	aggregations:
//	  - {name: locations, type: location_term, limit: 10}
type Document struct {
	Query        any           `yaml:"query,omitempty"`
	Filter       any           `yaml:"filter,omitempty"`
	Offset       int           `yaml:"offset,omitempty"`
	Limit        int           `yaml:"limit,omitempty"`
	Aggregations []Aggregation `yaml:"aggregations,omitempty"`
}

// ParseDocument decodes a query document. Unknown keys are rejected.
// An empty document is a match-all query.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and builds the query document at path.
func LoadFile(path string) (Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Query{}, fmt.Errorf("failed to read query file: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return Query{}, err
	}
	return doc.Build()
}

// Build decodes and validates the criterion trees of the document.
func (d *Document) Build() (Query, error) {
	if d.Offset < 0 {
		return Query{}, fmt.Errorf("offset must be non-negative, got %d", d.Offset)
	}
	if d.Limit < 0 {
		return Query{}, fmt.Errorf("limit must be non-negative, got %d", d.Limit)
	}

	q := Query{
		Offset:       d.Offset,
		Limit:        d.Limit,
		Aggregations: d.Aggregations,
	}

	var err error
	if q.Query, err = buildCriterion("query", d.Query); err != nil {
		return Query{}, err
	}
	if q.Filter, err = buildCriterion("filter", d.Filter); err != nil {
		return Query{}, err
	}

	for i, a := range d.Aggregations {
		if a.Name == "" {
			return Query{}, fmt.Errorf("aggregations[%d]: name is required", i)
		}
		if a.Field() == "" {
			return Query{}, fmt.Errorf("aggregations[%d]: unknown aggregation type %q", i, a.Type)
		}
	}

	return q, nil
}

func buildCriterion(name string, node any) (criterion.Criterion, error) {
	if node == nil {
		return nil, nil
	}
	c, err := criterion.Decode(node)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := criterion.Validate(c); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}
