package store

import (
	"context"
	"strings"

	"github.com/jmallory/roster-api/internal/domain"
)

// ListFilter holds the optional predicates applied by List. A record
// matches when it satisfies every predicate present; the zero value
// matches all live records.
type ListFilter struct {
	// MinAge and MaxAge bound the record's age, inclusive. Nil means unbounded.
	MinAge *int
	MaxAge *int

	// NameContains matches records whose name contains this substring,
	// case-insensitively. Empty means no name predicate.
	NameContains string
}

// Matches reports whether the given record satisfies every predicate
// present in the filter.
func (f ListFilter) Matches(r *domain.Record) bool {
	if f.MinAge != nil && r.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && r.Age > *f.MaxAge {
		return false
	}
	if f.NameContains != "" &&
		!strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.NameContains)) {
		return false
	}
	return true
}

// PageRequest holds pagination bounds for List: a non-negative offset
// into the matching sequence and a positive limit on the page size.
type PageRequest struct {
	Offset int
	Limit  int
}

// Validate checks the pagination bounds. Returns ErrInvalidPage wrapped
// with the specific violation when the bounds are out of range.
func (p PageRequest) Validate() error {
	if p.Offset < 0 {
		return NewStoreError("record", "list", "offset must be non-negative", ErrInvalidPage)
	}
	if p.Limit <= 0 {
		return NewStoreError("record", "list", "limit must be positive", ErrInvalidPage)
	}
	return nil
}

// RecordPage is the result of a List call: one page of matching records
// in insertion order, plus the total number of matches before pagination.
type RecordPage struct {
	Records []*domain.Record
	Total   int
}

// RecordStore defines the interface for record persistence. It is the
// full contract surface of the store: any caller (an HTTP handler, a
// test harness, a different transport) interacts only through these six
// operations, using plain domain values.
//
// Implementations must be safe for concurrent use and must preserve two
// invariants: identifiers are assigned monotonically and never reused
// after deletion, and at most one live record holds any given email.
type RecordStore interface {
	// Create validates the supplied fields, assigns the next unused
	// identifier, stamps the creation time, and appends the new record
	// to the collection.
	// Returns a validation error (wrapping domain.ErrValidation) if a
	// field is missing or malformed, or ErrEmailExists if the email
	// collides with an existing live record.
	Create(ctx context.Context, fields domain.RecordFields) (*domain.Record, error)

	// List returns the ordered subsequence of live records matching all
	// filter predicates, sliced to the requested page, plus the total
	// count of matches before pagination. An empty result is not an
	// error; invalid page bounds return ErrInvalidPage.
	List(ctx context.Context, filter ListFilter, page PageRequest) (*RecordPage, error)

	// GetByID retrieves a record by its identifier.
	// Returns ErrRecordNotFound if no live record has that identifier.
	GetByID(ctx context.Context, id int64) (*domain.Record, error)

	// Replace overwrites all mutable fields of an existing record.
	// Returns ErrRecordNotFound if absent, a validation error on
	// malformed input, or ErrEmailExists if the new email belongs to a
	// different live record.
	Replace(ctx context.Context, id int64, fields domain.RecordFields) (*domain.Record, error)

	// Merge applies only the fields present in the patch, leaving the
	// others untouched. Failure conditions match Replace, evaluated only
	// over the fields actually supplied; an empty patch is a validation
	// error.
	Merge(ctx context.Context, id int64, patch domain.RecordPatch) (*domain.Record, error)

	// Delete removes the record. Returns ErrRecordNotFound if absent.
	// The identifier is permanently retired and never reassigned.
	Delete(ctx context.Context, id int64) error
}
