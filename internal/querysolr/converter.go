package querysolr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ibexa/solr-search-engine/internal/query"
)

// DefaultLimit is the number of rows requested when a query sets no limit.
const DefaultLimit = 25

// Converter turns a query into Solr request parameters.
type Converter struct {
	registry *Registry
}

// NewConverter creates a converter rendering criteria with registry.
func NewConverter(registry *Registry) *Converter {
	return &Converter{registry: registry}
}

// Convert renders q into Solr parameters: q, fq, start, rows, fl, wt and,
// when aggregations are requested, json.facet.
func (c *Converter) Convert(ctx context.Context, q query.Query) (url.Values, error) {
	params := url.Values{}

	main := "*:*"
	if q.Query != nil {
		rendered, err := c.registry.Render(ctx, q.Query)
		if err != nil {
			return nil, fmt.Errorf("render query: %w", err)
		}
		main = rendered
	}
	params.Set("q", main)

	if q.Filter != nil {
		fq, err := c.registry.Render(ctx, q.Filter)
		if err != nil {
			return nil, fmt.Errorf("render filter: %w", err)
		}
		params.Set("fq", fq)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	params.Set("start", strconv.Itoa(q.Offset))
	params.Set("rows", strconv.Itoa(limit))
	params.Set("fl", "*,score,[shard]")
	params.Set("wt", "json")

	if len(q.Aggregations) > 0 {
		facets, err := convertAggregations(q.Aggregations)
		if err != nil {
			return nil, err
		}
		params.Set("json.facet", facets)
	}

	return params, nil
}

// termFacet is a Solr JSON facet API terms facet.
type termFacet struct {
	Type     string `json:"type"`
	Field    string `json:"field"`
	Limit    int    `json:"limit,omitempty"`
	MinCount int    `json:"mincount,omitempty"`
}

func convertAggregations(aggregations []query.Aggregation) (string, error) {
	facets := make(map[string]termFacet, len(aggregations))
	for _, a := range aggregations {
		field := a.Field()
		if field == "" {
			return "", fmt.Errorf("unsupported aggregation type %q for %q", a.Type, a.Name)
		}
		if _, dup := facets[a.Name]; dup {
			return "", fmt.Errorf("duplicate aggregation name %q", a.Name)
		}
		facets[a.Name] = termFacet{
			Type:     "terms",
			Field:    field,
			Limit:    a.Limit,
			MinCount: a.MinCount,
		}
	}

	// encoding/json sorts map keys, so the output is deterministic.
	out, err := json.Marshal(facets)
	if err != nil {
		return "", fmt.Errorf("encode aggregations: %w", err)
	}
	return string(out), nil
}
