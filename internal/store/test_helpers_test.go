package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ibexa/solr-search-engine/internal/content"
)

// createTestStore opens a store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestLocation creates a location under parent with a matching path.
func createTestLocation(id, contentID, parent int64) content.Location {
	return content.Location{
		ID:               id,
		ContentID:        contentID,
		ParentLocationID: parent,
		PathString:       fmt.Sprintf("/1/%d/%d/", parent, id),
		Depth:            2,
	}
}
