package testutil

import (
	"context"
	"sync"

	"github.com/ibexa/solr-search-engine/internal/content"
)

// LocationLoader is an in-memory batch location loader that records every
// call.
//
// Thread-safety: all methods are safe for concurrent use.
type LocationLoader struct {
	mu        sync.Mutex
	locations map[int64]content.Location
	calls     [][]int64

	// Err, when set, is returned by every LoadLocationList call.
	Err error
}

// NewLocationLoader creates a loader holding the given locations.
func NewLocationLoader(locs ...content.Location) *LocationLoader {
	l := &LocationLoader{locations: make(map[int64]content.Location, len(locs))}
	for _, loc := range locs {
		l.locations[loc.ID] = loc
	}
	return l
}

// LoadLocationList returns the known locations among ids.
func (l *LocationLoader) LoadLocationList(_ context.Context, ids []int64) (map[int64]content.Location, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = append(l.calls, append([]int64(nil), ids...))
	if l.Err != nil {
		return nil, l.Err
	}

	out := make(map[int64]content.Location, len(ids))
	for _, id := range ids {
		if loc, ok := l.locations[id]; ok {
			out[id] = loc
		}
	}
	return out, nil
}

// Calls returns the ids passed to each LoadLocationList call, in order.
func (l *LocationLoader) Calls() [][]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([][]int64(nil), l.calls...)
}
