package service

import (
	"context"
	"strings"

	"github.com/chemtai/portfolio/internal/model"
)

// Outcome is the single user-facing result of one contact-form submission.
type Outcome int

const (
	// OutcomeSavedNotified: persisted and the operator notification went out.
	OutcomeSavedNotified Outcome = iota + 1
	// OutcomeSavedNotifyFailed: persisted, but the operator notification
	// failed. The submission is durable; the user sees a soft warning.
	OutcomeSavedNotifyFailed
	// OutcomeSaveFailed: persistence failed, nothing was stored and no
	// email was attempted.
	OutcomeSaveFailed
)

// SubmissionInput carries the raw form values and request provenance for
// one contact-form submission.
type SubmissionInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	UserAgent string
}

// ValidationErrors maps field names to user-facing messages. It is returned
// by Submit before anything is persisted or sent.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// ContactService defines the business logic for contact-form submissions
// and the operational read surface over stored submissions.
type ContactService interface {
	// Submit runs the pipeline: validate, sanitize, persist, notify.
	// On validation failure it returns ValidationErrors and nothing is
	// stored. On persistence failure it returns OutcomeSaveFailed with the
	// underlying error. Otherwise the submission pointer is populated and
	// the outcome reports whether the operator notification succeeded.
	Submit(ctx context.Context, in SubmissionInput) (*model.ContactSubmission, Outcome, error)

	Count(ctx context.Context) (model.SubmissionCounts, error)
	List(ctx context.Context, limit int) ([]*model.ContactSubmission, error)
	MarkProcessed(ctx context.Context, id int64) error
}
