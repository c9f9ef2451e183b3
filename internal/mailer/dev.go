package mailer

import (
	"context"
	"log/slog"

	"github.com/chemtai/portfolio/internal/model"
)

// DevSender is the log-only Sender used when no SMTP server is configured.
// It renders the templates for real (so template errors still surface in
// development) and logs the would-be delivery instead of dialing out.
type DevSender struct {
	site SiteInfo
}

// NewDevSender creates a development sender for the given site identity.
func NewDevSender(site SiteInfo) *DevSender {
	return &DevSender{site: site}
}

var _ Sender = (*DevSender)(nil)

func (d *DevSender) SendNotification(ctx context.Context, sub *model.ContactSubmission) error {
	subject, body, err := renderNotification(d.site, sub)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "dev mailer: notification not sent",
		"to", d.site.AdminEmail,
		"subject", subject,
		"body_bytes", len(body),
	)
	return nil
}

func (d *DevSender) SendAutoReply(ctx context.Context, sub *model.ContactSubmission) error {
	subject, body, err := renderAutoReply(d.site, sub)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "dev mailer: auto-reply not sent",
		"to", sub.Email,
		"subject", subject,
		"body_bytes", len(body),
	)
	return nil
}
