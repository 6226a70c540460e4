// Package gallery holds the artwork domain model and its PostgreSQL store.
//
// An Artwork is immutable once created: the store exposes listing, lookup,
// insert, and a one-time seed, but no update or delete. Identifiers and
// creation timestamps are always assigned by the database, never by callers.
package gallery
