package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ibexa/solr-search-engine/internal/content"
)

// maxBatchSize stays under SQLite's default host parameter limit.
const maxBatchSize = 500

// SaveLocation inserts a location or replaces the stored row with the same id.
func (s *Store) SaveLocation(ctx context.Context, loc content.Location) error {
	if err := saveLocation(ctx, s.db, loc); err != nil {
		return fmt.Errorf("save location %d: %w", loc.ID, err)
	}
	return nil
}

// SaveLocations stores all locations in one transaction.
func (s *Store) SaveLocations(ctx context.Context, locs []content.Location) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, loc := range locs {
		if err := saveLocation(ctx, tx, loc); err != nil {
			return fmt.Errorf("save location %d: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit locations: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveLocation(ctx context.Context, db execer, loc content.Location) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO locations
		(id, content_id, parent_location_id, path_string, depth, hidden, remote_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content_id = excluded.content_id,
			parent_location_id = excluded.parent_location_id,
			path_string = excluded.path_string,
			depth = excluded.depth,
			hidden = excluded.hidden,
			remote_id = excluded.remote_id
	`,
		loc.ID,
		loc.ContentID,
		loc.ParentLocationID,
		loc.PathString,
		loc.Depth,
		loc.Hidden,
		loc.RemoteID,
	)
	return err
}

// LoadLocationList returns the stored locations among ids, keyed by id.
// Unknown ids are absent from the result. Returns an empty map (not nil)
// when nothing matches.
func (s *Store) LoadLocationList(ctx context.Context, ids []int64) (map[int64]content.Location, error) {
	locations := make(map[int64]content.Location, len(ids))

	for start := 0; start < len(ids); start += maxBatchSize {
		end := min(start+maxBatchSize, len(ids))
		if err := s.loadBatch(ctx, ids[start:end], locations); err != nil {
			return nil, err
		}
	}

	return locations, nil
}

func (s *Store) loadBatch(ctx context.Context, ids []int64, into map[int64]content.Location) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content_id, parent_location_id, path_string, depth, hidden, remote_id
		FROM locations
		WHERE id IN (`+placeholders+`)
		ORDER BY id ASC
	`, args...)
	if err != nil {
		return fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return err
		}
		into[loc.ID] = loc
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate locations: %w", err)
	}
	return nil
}

// ChildLocations returns the direct children of a location ordered by id.
func (s *Store) ChildLocations(ctx context.Context, parentID int64) ([]content.Location, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content_id, parent_location_id, path_string, depth, hidden, remote_id
		FROM locations
		WHERE parent_location_id = ?
		ORDER BY id ASC
	`, parentID)
	if err != nil {
		return nil, fmt.Errorf("query child locations: %w", err)
	}
	defer rows.Close()

	children := []content.Location{}
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		children = append(children, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate child locations: %w", err)
	}
	return children, nil
}

func scanLocation(rows *sql.Rows) (content.Location, error) {
	var loc content.Location
	if err := rows.Scan(
		&loc.ID,
		&loc.ContentID,
		&loc.ParentLocationID,
		&loc.PathString,
		&loc.Depth,
		&loc.Hidden,
		&loc.RemoteID,
	); err != nil {
		return content.Location{}, fmt.Errorf("scan location: %w", err)
	}
	return loc, nil
}
