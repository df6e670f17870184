// Package testutil provides deterministic test doubles shared by package
// tests: fixed trace ids, an in-memory location loader and permission
// resolvers.
package testutil
