// Package store implements the MongoDB persistence layer. One store type per
// collection; handlers receive them as injected dependencies constructed once
// at startup.
package store

import "errors"

// ErrNotFound is returned when a query matches no document.
var ErrNotFound = errors.New("document not found")

// UpdateResult is the summary of a single-document mutation, in the shape
// clients of the raw mutation routes expect.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
