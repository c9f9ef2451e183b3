// Package mailer sends the two contact-form emails: an operator
// notification and a submitter auto-reply. Each send is independent and
// attempted at most once; there is no retry or queueing.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"strings"

	"github.com/chemtai/portfolio/internal/model"
)

// Sender delivers the two contact-form message templates. A failure on one
// send must not prevent the other, and callers must not treat a send
// failure as a reason to roll back the persisted submission.
type Sender interface {
	SendNotification(ctx context.Context, sub *model.ContactSubmission) error
	SendAutoReply(ctx context.Context, sub *model.ContactSubmission) error
}

// SiteInfo carries the operator identity rendered into email bodies.
type SiteInfo struct {
	SiteName      string
	OwnerName     string
	OwnerTitle    string
	OwnerLocation string
	OwnerPhone    string
	AdminEmail    string
}

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type notificationData struct {
	Site         SiteInfo
	Sub          *model.ContactSubmission
	MessageLines []string
	Timestamp    string
}

type autoReplyData struct {
	Site SiteInfo
	Name string
}

func renderNotification(site SiteInfo, sub *model.ContactSubmission) (subject, body string, err error) {
	data := notificationData{
		Site:         site,
		Sub:          sub,
		MessageLines: strings.Split(sub.Message, "\n"),
		Timestamp:    sub.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "notification.html", data); err != nil {
		return "", "", err
	}
	return "Portfolio Contact: " + sub.Subject, buf.String(), nil
}

func renderAutoReply(site SiteInfo, sub *model.ContactSubmission) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "autoreply.html", autoReplyData{Site: site, Name: sub.Name}); err != nil {
		return "", "", err
	}
	return "Thank you for contacting " + site.OwnerName, buf.String(), nil
}
