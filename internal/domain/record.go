package domain

import (
	"fmt"
	"strings"
	"time"
)

// Field constraints for Record validation.
const (
	// MaxNameLength is the maximum allowed length of a record's name.
	MaxNameLength = 100

	// MinAge and MaxAge bound the allowed age range, inclusive.
	MinAge = 0
	MaxAge = 150
)

// Record-specific validation errors. All wrap ErrValidation.
var (
	ErrEmptyName     = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrNameTooLong   = fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxNameLength)
	ErrEmptyEmail    = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail  = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrAgeOutOfRange = fmt.Errorf("%w: age must be between %d and %d", ErrValidation, MinAge, MaxAge)
	ErrNoFields      = fmt.Errorf("%w: at least one field must be provided", ErrValidation)
)

// Record represents a single stored entity in the roster.
// The ID is assigned by the store at creation, is unique among live
// records, and is never reused after deletion. All other fields besides
// the timestamps are supplied by the caller.
type Record struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordFields holds the caller-supplied mutable fields of a Record.
// It is the input to create and full-replace operations; the store owns
// ID and timestamp assignment.
type RecordFields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// Validate checks all fields against the Record constraints.
// Returns an error wrapping ErrValidation on the first violation found.
func (f RecordFields) Validate() error {
	if err := validateName(f.Name); err != nil {
		return err
	}
	if err := validateEmail(f.Email); err != nil {
		return err
	}
	return validateAge(f.Age)
}

// RecordPatch holds an optional subset of a Record's mutable fields.
// Nil pointers mean "leave unchanged"; it is the input to the
// partial-update (merge) operation.
type RecordPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Age   *int    `json:"age,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p RecordPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Age == nil
}

// Validate checks only the fields actually present in the patch.
// An empty patch is itself a validation error: a merge that changes
// nothing is almost certainly a caller bug.
func (p RecordPatch) Validate() error {
	if p.IsEmpty() {
		return ErrNoFields
	}
	if p.Name != nil {
		if err := validateName(*p.Name); err != nil {
			return err
		}
	}
	if p.Email != nil {
		if err := validateEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.Age != nil {
		if err := validateAge(*p.Age); err != nil {
			return err
		}
	}
	return nil
}

// ApplyTo overlays the patch's present fields onto the given field set
// and returns the result. Absent fields keep their current values.
func (p RecordPatch) ApplyTo(f RecordFields) RecordFields {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Age != nil {
		f.Age = *p.Age
	}
	return f
}

// Fields returns the record's mutable fields as a RecordFields value.
func (r *Record) Fields() RecordFields {
	return RecordFields{
		Name:  r.Name,
		Email: r.Email,
		Age:   r.Age,
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return ErrAgeOutOfRange
	}
	return nil
}

// validateEmail performs basic validation of email format: a single '@'
// with a non-empty local part and a domain containing an interior dot.
func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return ErrInvalidEmail
	}
	if strings.IndexByte(email[atIndex+1:], '@') != -1 {
		return ErrInvalidEmail
	}

	domain := email[atIndex+1:]
	if strings.IndexByte(domain, '.') <= 0 || strings.HasSuffix(domain, ".") {
		return ErrInvalidEmail
	}

	return nil
}
