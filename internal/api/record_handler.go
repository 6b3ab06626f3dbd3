package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jmallory/roster-api/internal/api/shared"
	"github.com/jmallory/roster-api/internal/config"
	"github.com/jmallory/roster-api/internal/platform/logger"
	"github.com/jmallory/roster-api/internal/redact"
	"github.com/jmallory/roster-api/internal/store"
)

// RecordHandler handles record-related HTTP requests
type RecordHandler struct {
	recordStore store.RecordStore
	storeConfig config.StoreConfig
	logger      *slog.Logger
}

// NewRecordHandler creates a new RecordHandler
func NewRecordHandler(
	recordStore store.RecordStore,
	storeConfig config.StoreConfig,
	logger *slog.Logger,
) *RecordHandler {
	if recordStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("recordStore cannot be nil for RecordHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RecordHandler")
	}

	return &RecordHandler{
		recordStore: recordStore,
		storeConfig: storeConfig,
		logger:      logger.With(slog.String("component", "record_handler")),
	}
}

// CreateRecord handles POST /records requests.
// It validates the request body and adds a new record to the store.
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	record, err := h.recordStore.Create(r.Context(), req.Fields())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("record created", slog.Int64("record_id", record.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, recordToResponse(record))
}

// ListRecords handles GET /records requests.
// Optional query parameters: min_age, max_age, name_contains, offset, limit.
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	filter, page, err := h.parseListQuery(r)
	if err != nil {
		log.Warn("invalid list query", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid query parameter")
		return
	}

	result, err := h.recordStore.List(r.Context(), filter, page)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := RecordListResponse{
		Records: make([]RecordResponse, 0, len(result.Records)),
		Total:   result.Total,
		Offset:  page.Offset,
		Limit:   page.Limit,
	}
	for _, record := range result.Records {
		response.Records = append(response.Records, recordToResponse(record))
	}

	log.Debug("records listed",
		slog.Int("returned", len(response.Records)),
		slog.Int("total", result.Total))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetRecord handles GET /records/{id} requests.
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.recordIDFromPath(w, r, log)
	if !ok {
		return
	}

	record, err := h.recordStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}

// ReplaceRecord handles PUT /records/{id} requests.
// It overwrites all mutable fields of the record.
func (h *RecordHandler) ReplaceRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.recordIDFromPath(w, r, log)
	if !ok {
		return
	}

	var req ReplaceRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("record_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error",
			slog.String("error", redact.Error(err)),
			slog.Int64("record_id", id))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	record, err := h.recordStore.Replace(r.Context(), id, req.Fields())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("record replaced", slog.Int64("record_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}

// MergeRecord handles PATCH /records/{id} requests.
// It applies only the fields present in the body, leaving others untouched.
func (h *RecordHandler) MergeRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.recordIDFromPath(w, r, log)
	if !ok {
		return
	}

	var req PatchRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("record_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error",
			slog.String("error", redact.Error(err)),
			slog.Int64("record_id", id))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	record, err := h.recordStore.Merge(r.Context(), id, req.Patch())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("record merged", slog.Int64("record_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}

// DeleteRecord handles DELETE /records/{id} requests.
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.recordIDFromPath(w, r, log)
	if !ok {
		return
	}

	if err := h.recordStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("record deleted", slog.Int64("record_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// recordIDFromPath extracts and parses the record ID from the URL path.
// On failure it writes the error response itself and returns ok=false.
func (h *RecordHandler) recordIDFromPath(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (int64, bool) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		log.Warn("record ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Record ID is required")
		return 0, false
	}

	id, err := strconv.ParseInt(pathID, 10, 64)
	if err != nil || id <= 0 {
		log.Warn("invalid record ID format", slog.String("record_id", pathID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid record ID format")
		return 0, false
	}

	return id, true
}

// parseListQuery builds the store filter and page bounds from the request
// query. Limit defaults from config when absent and is capped at the
// configured maximum; a malformed numeric value is an error.
func (h *RecordHandler) parseListQuery(r *http.Request) (store.ListFilter, store.PageRequest, error) {
	var filter store.ListFilter
	query := r.URL.Query()

	if raw := query.Get("min_age"); raw != "" {
		minAge, err := strconv.Atoi(raw)
		if err != nil {
			return filter, store.PageRequest{}, err
		}
		filter.MinAge = &minAge
	}
	if raw := query.Get("max_age"); raw != "" {
		maxAge, err := strconv.Atoi(raw)
		if err != nil {
			return filter, store.PageRequest{}, err
		}
		filter.MaxAge = &maxAge
	}
	filter.NameContains = query.Get("name_contains")

	page := store.PageRequest{Limit: h.storeConfig.DefaultPageLimit}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return filter, store.PageRequest{}, err
		}
		page.Offset = offset
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, store.PageRequest{}, err
		}
		page.Limit = limit
	}
	if page.Limit > h.storeConfig.MaxPageLimit {
		page.Limit = h.storeConfig.MaxPageLimit
	}

	return filter, page, nil
}
