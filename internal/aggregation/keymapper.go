// Package aggregation maps raw term aggregation bucket keys returned by Solr
// to repository values.
package aggregation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ibexa/solr-search-engine/internal/content"
	"github.com/ibexa/solr-search-engine/internal/query"
)

// KeyMapper resolves the keys of one aggregation result.
//
// The returned map is keyed by the raw key. Keys that resolve to nothing are
// left out.
type KeyMapper interface {
	Map(ctx context.Context, agg query.Aggregation, languageFilter query.LanguageSettings, keys []string) (map[string]any, error)
}

// LocationLoader loads locations in one batch. Ids it cannot load (missing
// or not readable) are absent from the result.
type LocationLoader interface {
	LoadLocationList(ctx context.Context, ids []int64) (map[int64]content.Location, error)
}

// LocationKeyMapper maps location ids to locations.
type LocationKeyMapper struct {
	loader LocationLoader
}

// NewLocationKeyMapper creates a mapper loading locations through loader.
func NewLocationKeyMapper(loader LocationLoader) *LocationKeyMapper {
	return &LocationKeyMapper{loader: loader}
}

// Map parses keys as location ids and loads them with a single loader call.
func (m *LocationKeyMapper) Map(ctx context.Context, agg query.Aggregation, _ query.LanguageSettings, keys []string) (map[string]any, error) {
	ids := make([]int64, 0, len(keys))
	byID := make(map[int64]string, len(keys))
	for _, key := range keys {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("aggregation %q: invalid location id %q: %w", agg.Name, key, err)
		}
		if _, seen := byID[id]; !seen {
			ids = append(ids, id)
		}
		byID[id] = key
	}

	result := make(map[string]any, len(keys))
	if len(ids) == 0 {
		return result, nil
	}

	locations, err := m.loader.LoadLocationList(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("aggregation %q: load locations: %w", agg.Name, err)
	}

	for id, location := range locations {
		key, ok := byID[id]
		if !ok {
			continue
		}
		result[key] = location
	}

	slog.Debug("aggregation keys mapped",
		"aggregation", agg.Name,
		"keys", len(keys),
		"resolved", len(result),
	)

	return result, nil
}

// RawKeyMapper returns every key mapped to itself.
type RawKeyMapper struct{}

// Map returns keys unchanged.
func (RawKeyMapper) Map(_ context.Context, _ query.Aggregation, _ query.LanguageSettings, keys []string) (map[string]any, error) {
	result := make(map[string]any, len(keys))
	for _, key := range keys {
		result[key] = key
	}
	return result, nil
}

// ForAggregation returns the key mapper for an aggregation type.
func ForAggregation(t query.AggregationType, loader LocationLoader) (KeyMapper, error) {
	switch t {
	case query.TermLocation:
		return NewLocationKeyMapper(loader), nil
	case query.TermContentType:
		return RawKeyMapper{}, nil
	default:
		return nil, fmt.Errorf("no key mapper for aggregation type %q", t)
	}
}
