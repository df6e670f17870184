// Package store provides SQLite-backed storage for content locations.
//
// It is the batch object loader behind location term aggregations: bucket
// keys returned by Solr are location ids, and LoadLocationList resolves a
// whole bucket list with a single query.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// The schema version is tracked in PRAGMA user_version.
package store
