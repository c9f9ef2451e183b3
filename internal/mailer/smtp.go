package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/chemtai/portfolio/internal/config"
	"github.com/chemtai/portfolio/internal/model"
)

// SMTPSender delivers emails over SMTP with STARTTLS.
type SMTPSender struct {
	client *mail.Client
	from   string
	admin  string
	site   SiteInfo
}

// NewSMTPSender creates an SMTP-backed Sender from the mail configuration.
func NewSMTPSender(cfg config.SMTP, site SiteInfo) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPSender{
		client: client,
		from:   cfg.From,
		admin:  cfg.AdminEmail,
		site:   site,
	}, nil
}

var _ Sender = (*SMTPSender)(nil)

// SendNotification emails the operator about a newly persisted submission.
func (s *SMTPSender) SendNotification(ctx context.Context, sub *model.ContactSubmission) error {
	subject, body, err := renderNotification(s.site, sub)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}
	return s.send(ctx, s.admin, subject, body)
}

// SendAutoReply emails the submitter a confirmation with the operator's
// contact details.
func (s *SMTPSender) SendAutoReply(ctx context.Context, sub *model.ContactSubmission) error {
	subject, body, err := renderAutoReply(s.site, sub)
	if err != nil {
		return fmt.Errorf("render auto-reply: %w", err)
	}
	return s.send(ctx, sub.Email, subject, body)
}

func (s *SMTPSender) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", to, err)
	}
	return nil
}
