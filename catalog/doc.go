// Package catalog holds the typed route and stop records the planner
// operates on, and builds the read-only in-memory snapshot a search runs
// against.
//
// Catalogs are loaded wholesale from a JSON document (file or URL) or from
// a Postgres database before any search; the snapshot is never mutated
// mid-search. The persistence layer maps its rows into these types at the
// boundary, so the planner never sees raw rows.
package catalog
