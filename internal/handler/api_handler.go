package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/chemtai/portfolio/internal/model"
	"github.com/chemtai/portfolio/internal/repository"
	"github.com/chemtai/portfolio/internal/service"
)

// listMessagePreview caps the message body length in list payloads.
const listMessagePreview = 100

// APIHandler exposes the operational read surface over stored submissions:
// count, list and mark-processed.
type APIHandler struct {
	contactService service.ContactService
}

// NewAPIHandler creates an APIHandler with the given service.
func NewAPIHandler(contactService service.ContactService) *APIHandler {
	return &APIHandler{contactService: contactService}
}

type countResponse struct {
	TotalMessages       int64  `json:"total_messages"`
	UnprocessedMessages int64  `json:"unprocessed_messages"`
	Timestamp           string `json:"timestamp"`
}

// Count handles GET /api/contact-messages/count.
func (h *APIHandler) Count(w http.ResponseWriter, r *http.Request) {
	counts, err := h.contactService.Count(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(countResponse{
		TotalMessages:       counts.Total,
		UnprocessedMessages: counts.Unprocessed,
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
	})
}

// messageItem is one submission in the list payload. The message body is
// truncated to a preview; the full text stays in the database.
type messageItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	CreatedAt   string `json:"created_at"`
	IPAddress   string `json:"ip_address,omitempty"`
	IsProcessed bool   `json:"is_processed"`
}

type listResponse struct {
	Messages  []messageItem `json:"messages"`
	Total     int           `json:"total"`
	Timestamp string        `json:"timestamp"`
}

// List handles GET /api/contact-messages/list?limit=N. The limit is clamped
// to at most 100 by the repository regardless of what the caller asks for.
func (h *APIHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			limit = n
		}
	}

	subs, err := h.contactService.List(r.Context(), limit)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Return [] not null for empty lists
	messages := make([]messageItem, 0, len(subs))
	for _, s := range subs {
		messages = append(messages, toMessageItem(s))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{
		Messages:  messages,
		Total:     len(messages),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

type markProcessedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// MarkProcessed handles POST /api/contact-messages/{id}/mark-processed.
// Marking an already-processed submission succeeds; only a missing id is 404.
func (h *APIHandler) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := h.contactService.MarkProcessed(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(markProcessedResponse{
				Success:   false,
				Message:   "message not found",
				Timestamp: now,
			})
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(markProcessedResponse{
		Success:   true,
		Message:   "message marked as processed",
		Timestamp: now,
	})
}

func toMessageItem(s *model.ContactSubmission) messageItem {
	msg := s.Message
	if runes := []rune(msg); len(runes) > listMessagePreview {
		msg = string(runes[:listMessagePreview]) + "..."
	}
	return messageItem{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		Subject:     s.Subject,
		Message:     msg,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
		IPAddress:   s.IPAddress,
		IsProcessed: s.IsProcessed,
	}
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
