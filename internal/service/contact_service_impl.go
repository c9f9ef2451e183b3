package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chemtai/portfolio/internal/mailer"
	"github.com/chemtai/portfolio/internal/model"
	"github.com/chemtai/portfolio/internal/repository"
	"github.com/chemtai/portfolio/internal/sanitize"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.SubmissionRepository
	sender mailer.Sender
}

// NewContactService creates a ContactService backed by the given repository
// and mail sender.
func NewContactService(repo repository.SubmissionRepository, sender mailer.Sender) ContactService {
	return &contactServiceImpl{repo: repo, sender: sender}
}

// Submit runs one contact-form submission end to end. Persistence is the
// durability boundary: once Create succeeds the submission exists no matter
// what the mail transport does afterwards.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmissionInput) (*model.ContactSubmission, Outcome, error) {
	if errs := validate(in); errs != nil {
		slog.WarnContext(ctx, "contact form validation failed", "fields", errs.Error())
		return nil, 0, errs
	}

	// Email is format-validated above and deliberately not sanitized.
	sub := &model.ContactSubmission{
		Name:      sanitize.StripTags(in.Name),
		Email:     in.Email,
		Subject:   sanitize.StripTags(in.Subject),
		Message:   sanitize.StripTags(in.Message),
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		slog.ErrorContext(ctx, "failed to save contact submission", "email", sub.Email, "error", err)
		return nil, OutcomeSaveFailed, fmt.Errorf("save submission: %w", err)
	}
	slog.InfoContext(ctx, "contact submission saved", "submission_id", sub.ID, "email", sub.Email)

	outcome := OutcomeSavedNotified
	if err := s.sender.SendNotification(ctx, sub); err != nil {
		slog.ErrorContext(ctx, "notification email failed", "submission_id", sub.ID, "error", err)
		outcome = OutcomeSavedNotifyFailed
	}

	// Attempted regardless of the notification outcome; failure is logged
	// only and never changes what the user sees.
	if err := s.sender.SendAutoReply(ctx, sub); err != nil {
		slog.WarnContext(ctx, "auto-reply failed", "submission_id", sub.ID, "email", sub.Email, "error", err)
	}

	return sub, outcome, nil
}

func (s *contactServiceImpl) Count(ctx context.Context) (model.SubmissionCounts, error) {
	return s.repo.Count(ctx)
}

func (s *contactServiceImpl) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, limit)
}

func (s *contactServiceImpl) MarkProcessed(ctx context.Context, id int64) error {
	return s.repo.MarkProcessed(ctx, id)
}
