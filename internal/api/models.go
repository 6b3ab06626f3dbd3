package api

import (
	"time"

	"github.com/jmallory/roster-api/internal/domain"
)

// CreateRecordRequest is the request body for POST /records.
// Age is a pointer because zero is a legitimate age; with a plain int
// the required tag could not tell "age": 0 from a missing field.
type CreateRecordRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age"   validate:"required,gte=0,lte=150"`
}

// Fields converts the request into the domain's field set.
func (req CreateRecordRequest) Fields() domain.RecordFields {
	return domain.RecordFields{
		Name:  req.Name,
		Email: req.Email,
		Age:   *req.Age,
	}
}

// ReplaceRecordRequest is the request body for PUT /records/{id}.
// All mutable fields are required: replace is a full overwrite.
type ReplaceRecordRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age"   validate:"required,gte=0,lte=150"`
}

// Fields converts the request into the domain's field set.
func (req ReplaceRecordRequest) Fields() domain.RecordFields {
	return domain.RecordFields{
		Name:  req.Name,
		Email: req.Email,
		Age:   *req.Age,
	}
}

// PatchRecordRequest is the request body for PATCH /records/{id}.
// Absent fields are left unchanged; present fields are validated
// individually.
type PatchRecordRequest struct {
	Name  *string `json:"name"  validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
	Age   *int    `json:"age"   validate:"omitempty,gte=0,lte=150"`
}

// Patch converts the request into the domain's partial field set.
func (req PatchRecordRequest) Patch() domain.RecordPatch {
	return domain.RecordPatch{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}
}

// RecordResponse represents the response data for a single record.
type RecordResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordListResponse represents the response data for a record listing.
// Total is the number of matches before pagination; Offset and Limit
// echo the effective page bounds after defaults and caps were applied.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
}

// recordToResponse converts a domain.Record to a RecordResponse.
func recordToResponse(record *domain.Record) RecordResponse {
	return RecordResponse{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		Age:       record.Age,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
