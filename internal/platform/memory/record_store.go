package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jmallory/roster-api/internal/domain"
	"github.com/jmallory/roster-api/internal/store"
)

// RecordStore implements the store.RecordStore interface using an
// in-memory collection as the storage backend.
//
// All operations are serialized behind a single mutex; the mutex covers
// the collection, both indexes, and the identifier counter, so the
// uniqueness invariants hold under concurrent callers. The counter only
// ever advances, which guarantees identifiers are strictly increasing
// and never reused after deletion.
type RecordStore struct {
	logger *slog.Logger

	mu      sync.Mutex
	records []*domain.Record // insertion order, live records only
	byID    map[int64]*domain.Record
	byEmail map[string]int64
	lastID  int64

	now func() time.Time
}

// NewRecordStore creates a new in-memory implementation of the
// store.RecordStore interface. If logger is nil, a default logger is used.
func NewRecordStore(logger *slog.Logger) *RecordStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &RecordStore{
		logger:  logger.With(slog.String("component", "record_store")),
		byID:    make(map[int64]*domain.Record),
		byEmail: make(map[string]int64),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Ensure RecordStore implements store.RecordStore interface
var _ store.RecordStore = (*RecordStore)(nil)

// Create implements store.RecordStore.Create
func (s *RecordStore) Create(ctx context.Context, fields domain.RecordFields) (*domain.Record, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[fields.Email]; taken {
		return nil, store.ErrEmailExists
	}

	s.lastID++
	now := s.now()
	record := &domain.Record{
		ID:        s.lastID,
		Name:      fields.Name,
		Email:     fields.Email,
		Age:       fields.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.records = append(s.records, record)
	s.byID[record.ID] = record
	s.byEmail[record.Email] = record.ID

	s.logger.Debug("record created",
		slog.Int64("record_id", record.ID),
		slog.Int("live_records", len(s.records)))

	return copyRecord(record), nil
}

// List implements store.RecordStore.List
func (s *RecordStore) List(ctx context.Context, filter store.ListFilter, page store.PageRequest) (*store.RecordPage, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []*domain.Record
	for _, r := range s.records {
		if filter.Matches(r) {
			matches = append(matches, r)
		}
	}

	result := &store.RecordPage{
		Total:   len(matches),
		Records: []*domain.Record{},
	}

	if page.Offset >= len(matches) {
		return result, nil
	}

	end := page.Offset + page.Limit
	if end > len(matches) {
		end = len(matches)
	}
	for _, r := range matches[page.Offset:end] {
		result.Records = append(result.Records, copyRecord(r))
	}

	return result, nil
}

// GetByID implements store.RecordStore.GetByID
func (s *RecordStore) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}

	return copyRecord(record), nil
}

// Replace implements store.RecordStore.Replace
func (s *RecordStore) Replace(ctx context.Context, id int64, fields domain.RecordFields) (*domain.Record, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}

	if err := s.applyFields(record, fields); err != nil {
		return nil, err
	}

	s.logger.Debug("record replaced", slog.Int64("record_id", id))
	return copyRecord(record), nil
}

// Merge implements store.RecordStore.Merge
func (s *RecordStore) Merge(ctx context.Context, id int64, patch domain.RecordPatch) (*domain.Record, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}

	if err := s.applyFields(record, patch.ApplyTo(record.Fields())); err != nil {
		return nil, err
	}

	s.logger.Debug("record merged", slog.Int64("record_id", id))
	return copyRecord(record), nil
}

// Delete implements store.RecordStore.Delete
func (s *RecordStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok {
		return store.ErrRecordNotFound
	}

	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	delete(s.byID, id)
	delete(s.byEmail, record.Email)

	// The identifier counter is left untouched, so id is retired for good.
	s.logger.Debug("record deleted",
		slog.Int64("record_id", id),
		slog.Int("live_records", len(s.records)))

	return nil
}

// applyFields overwrites the record's mutable fields and refreshes its
// update timestamp, keeping the email index consistent. The caller must
// hold the mutex and have validated fields already.
func (s *RecordStore) applyFields(record *domain.Record, fields domain.RecordFields) error {
	if owner, taken := s.byEmail[fields.Email]; taken && owner != record.ID {
		return store.ErrEmailExists
	}

	if fields.Email != record.Email {
		delete(s.byEmail, record.Email)
		s.byEmail[fields.Email] = record.ID
	}

	record.Name = fields.Name
	record.Email = fields.Email
	record.Age = fields.Age
	record.UpdatedAt = s.now()

	return nil
}

// copyRecord returns a copy so callers can never mutate store state
// through a returned pointer.
func copyRecord(r *domain.Record) *domain.Record {
	out := *r
	return &out
}
