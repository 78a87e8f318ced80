package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/store"
)

type createEntryRequest struct {
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Amount   string    `json:"amount"`
	Date     core.Date `json:"date"`
}

type entryResponse struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Amount   string    `json:"amount"`
	Date     core.Date `json:"date"`
	Color    string    `json:"color"`
}

func toEntryResponse(e core.Entry) entryResponse {
	return entryResponse{
		ID:       e.ID,
		Type:     string(e.Type),
		Category: e.Category,
		Amount:   e.Amount,
		Date:     e.Date,
		Color:    core.ColorFor(e.Category, e.Type),
	}
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListEntries(w, r)
	case http.MethodPost:
		s.handleCreateEntry(w, r)
	case http.MethodDelete:
		s.handleDeleteEntry(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	typ := core.EntryType(strings.TrimSpace(r.URL.Query().Get("type")))
	if err := typ.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "type must be income or expense")
		return
	}

	key := string(typ)
	entries, ok := s.entriesCache.Get(key)
	if !ok {
		var err error
		entries, err = s.ledger.Entries(r.Context(), typ)
		if err != nil {
			slog.ErrorContext(r.Context(), "List entries error", "error", err, "type", typ)
			writeError(w, http.StatusInternalServerError, "could not load entries")
			return
		}
		s.entriesCache.Set(key, entries)
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := s.ledger.CreateEntry(r.Context(), core.EntryType(req.Type), req.Category, req.Amount, req.Date)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Create entry error", "error", err,
			"type", req.Type, "category", req.Category)
		writeError(w, http.StatusInternalServerError, "could not save entry")
		return
	}

	s.invalidate()
	writeJSON(w, http.StatusCreated, toEntryResponse(e))
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	typ := core.EntryType(strings.TrimSpace(r.URL.Query().Get("type")))
	if err := typ.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "type must be income or expense")
		return
	}
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := s.ledger.DeleteEntry(r.Context(), typ, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "entry not found")
			return
		}
		slog.ErrorContext(r.Context(), "Delete entry error", "error", err, "id", id, "type", typ)
		writeError(w, http.StatusInternalServerError, "could not delete entry")
		return
	}

	s.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	now := time.Now()
	key := now.Format(core.DateLayout)
	if summary, ok := s.summaryCache.Get(key); ok {
		writeJSON(w, http.StatusOK, summary)
		return
	}

	summary, err := s.ledger.Summary(r.Context(), now)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary error", "error", err)
		writeError(w, http.StatusInternalServerError, "could not compute summary")
		return
	}
	s.summaryCache.Set(key, summary)
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	events, err := s.ledger.Notifications(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List notifications error", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load notifications")
		return
	}
	if events == nil {
		events = []core.Notification{}
	}
	writeJSON(w, http.StatusOK, events)
}

// invalidate drops cached responses after any entry mutation so the next
// read recomputes from a fresh snapshot.
func (s *Server) invalidate() {
	s.summaryCache.Purge()
	s.entriesCache.Purge()
}

func isValidationError(err error) bool {
	return errors.Is(err, core.ErrInvalidType) ||
		errors.Is(err, core.ErrEmptyCategory) ||
		errors.Is(err, core.ErrEmptyAmount) ||
		errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrZeroDate)
}
