package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chemtai/portfolio/internal/model"
	"github.com/chemtai/portfolio/internal/repository"
)

func TestAPICount(t *testing.T) {
	mock := &mockContactService{
		countFunc: func(ctx context.Context) (model.SubmissionCounts, error) {
			return model.SubmissionCounts{Total: 42, Unprocessed: 7}, nil
		},
	}
	h := NewAPIHandler(mock)

	req := httptest.NewRequest("GET", "/api/contact-messages/count", nil)
	rec := httptest.NewRecorder()
	h.Count(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp countResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalMessages != 42 || resp.UnprocessedMessages != 7 {
		t.Errorf("unexpected counts: %+v", resp)
	}
	if resp.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestAPICount_StorageError(t *testing.T) {
	mock := &mockContactService{
		countFunc: func(ctx context.Context) (model.SubmissionCounts, error) {
			return model.SubmissionCounts{}, errors.New("db down")
		},
	}
	h := NewAPIHandler(mock)

	req := httptest.NewRequest("GET", "/api/contact-messages/count", nil)
	rec := httptest.NewRecorder()
	h.Count(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db down") {
		t.Error("internal error leaked to client")
	}
}

func TestAPIList(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var gotLimit int
	mock := &mockContactService{
		listFunc: func(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
			gotLimit = limit
			return []*model.ContactSubmission{
				{ID: 2, Name: "Bea", Email: "bea@example.com", Subject: "Hi", Message: "short", CreatedAt: created, IsProcessed: true},
				{ID: 1, Name: "Abe", Email: "abe@example.com", Subject: "Hello", Message: "also short", CreatedAt: created.Add(-time.Hour)},
			}, nil
		},
	}
	h := NewAPIHandler(mock)

	req := httptest.NewRequest("GET", "/api/contact-messages/list?limit=5", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotLimit != 5 {
		t.Errorf("expected limit 5 passed through, got %d", gotLimit)
	}
	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || len(resp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got total=%d len=%d", resp.Total, len(resp.Messages))
	}
	if resp.Messages[0].ID != 2 || resp.Messages[0].Message != "short" {
		t.Errorf("unexpected first message: %+v", resp.Messages[0])
	}
	if !resp.Messages[0].IsProcessed || resp.Messages[1].IsProcessed {
		t.Error("is_processed flags not carried through")
	}
}

func TestAPIList_Empty(t *testing.T) {
	h := NewAPIHandler(&mockContactService{})

	req := httptest.NewRequest("GET", "/api/contact-messages/list", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// Empty result must serialize as [] not null.
	if !strings.Contains(rec.Body.String(), `"messages":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestAPIList_TruncatesMessagePreview(t *testing.T) {
	long := strings.Repeat("x", 150)
	mock := &mockContactService{
		listFunc: func(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
			return []*model.ContactSubmission{{ID: 1, Message: long, CreatedAt: time.Now()}}, nil
		},
	}
	h := NewAPIHandler(mock)

	req := httptest.NewRequest("GET", "/api/contact-messages/list", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := resp.Messages[0].Message
	want := strings.Repeat("x", listMessagePreview) + "..."
	if got != want {
		t.Errorf("expected %d-char preview with ellipsis, got %d chars", listMessagePreview+3, len(got))
	}
}

func TestAPIMarkProcessed(t *testing.T) {
	var gotID int64
	mock := &mockContactService{
		markProcessedFunc: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}
	h := NewAPIHandler(mock)

	req := httptest.NewRequest("POST", "/api/contact-messages/7/mark-processed", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	h.MarkProcessed(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 7 {
		t.Errorf("expected id 7, got %d", gotID)
	}
	var resp markProcessedResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
}

func TestAPIMarkProcessed_NotFound(t *testing.T) {
	mock := &mockContactService{
		markProcessedFunc: func(ctx context.Context, id int64) error {
			return repository.ErrNotFound
		},
	}
	h := NewAPIHandler(mock)

	req := httptest.NewRequest("POST", "/api/contact-messages/999/mark-processed", nil)
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()
	h.MarkProcessed(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp markProcessedResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
}

func TestAPIMarkProcessed_InvalidID(t *testing.T) {
	h := NewAPIHandler(&mockContactService{
		markProcessedFunc: func(ctx context.Context, id int64) error {
			t.Error("service should not be called for an invalid id")
			return nil
		},
	})

	req := httptest.NewRequest("POST", "/api/contact-messages/abc/mark-processed", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.MarkProcessed(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
