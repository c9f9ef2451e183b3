package mailer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/chemtai/portfolio/internal/model"
)

var testSite = SiteInfo{
	SiteName:      "Test Portfolio",
	OwnerName:     "Jane Operator",
	OwnerTitle:    "Consultant",
	OwnerLocation: "Testville",
	OwnerPhone:    "+1 555 0100",
	AdminEmail:    "admin@example.com",
}

func testSubmission() *model.ContactSubmission {
	return &model.ContactSubmission{
		ID:        42,
		Name:      "John Doe",
		Email:     "john@example.com",
		Subject:   "Test Subject",
		Message:   "First line\nSecond line",
		CreatedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestRenderNotification(t *testing.T) {
	subject, body, err := renderNotification(testSite, testSubmission())
	if err != nil {
		t.Fatalf("renderNotification failed: %v", err)
	}
	if subject != "Portfolio Contact: Test Subject" {
		t.Errorf("unexpected subject %q", subject)
	}
	for _, want := range []string{
		"John Doe",
		"john@example.com",
		"Test Subject",
		"42",
		"2025-06-01 12:30:00 UTC",
		"First line<br>Second line<br>",
		"Test Portfolio",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("notification body missing %q", want)
		}
	}
}

func TestRenderNotification_EscapesResidualMarkup(t *testing.T) {
	sub := testSubmission()
	// The pipeline sanitizes before notifying, but the template must not
	// trust its input either.
	sub.Name = "<b>Bold</b>"
	_, body, err := renderNotification(testSite, sub)
	if err != nil {
		t.Fatalf("renderNotification failed: %v", err)
	}
	if strings.Contains(body, "<b>Bold</b>") {
		t.Errorf("raw markup rendered into notification body")
	}
}

func TestRenderAutoReply(t *testing.T) {
	subject, body, err := renderAutoReply(testSite, testSubmission())
	if err != nil {
		t.Fatalf("renderAutoReply failed: %v", err)
	}
	if subject != "Thank you for contacting Jane Operator" {
		t.Errorf("unexpected subject %q", subject)
	}
	for _, want := range []string{
		"Dear John Doe",
		"Jane Operator",
		"Consultant",
		"Testville",
		"+1 555 0100",
		"admin@example.com",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("auto-reply body missing %q", want)
		}
	}
}

func TestDevSender_NeverFails(t *testing.T) {
	d := NewDevSender(testSite)
	sub := testSubmission()
	if err := d.SendNotification(context.Background(), sub); err != nil {
		t.Errorf("SendNotification: %v", err)
	}
	if err := d.SendAutoReply(context.Background(), sub); err != nil {
		t.Errorf("SendAutoReply: %v", err)
	}
}
