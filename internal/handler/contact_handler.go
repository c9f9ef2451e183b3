package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/chemtai/portfolio/internal/service"
)

// ContactHandler serves the contact form and runs the submission pipeline.
type ContactHandler struct {
	contactService service.ContactService
	pages          *Pages
}

// NewContactHandler creates a ContactHandler with the given service and
// page renderer.
func NewContactHandler(contactService service.ContactService, pages *Pages) *ContactHandler {
	return &ContactHandler{contactService: contactService, pages: pages}
}

// Show handles GET /contact: renders the form, consuming any flash left by
// a previous redirect.
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	data := h.pages.data()
	data.Flash = popFlash(w, r)
	h.pages.render(w, http.StatusOK, "contact.html", data)
}

// Submit handles POST /contact. Validation failures re-render the form with
// per-field errors; everything else redirects back with a flash so a reload
// cannot repost the form.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := service.SubmissionInput{
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		Subject:   r.PostFormValue("subject"),
		Message:   r.PostFormValue("message"),
		IPAddress: ClientIP(r),
		UserAgent: UserAgentOrUnknown(r),
	}

	_, outcome, err := h.contactService.Submit(r.Context(), in)

	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		data := h.pages.data()
		data.Form = map[string]string{
			"name":    in.Name,
			"email":   in.Email,
			"subject": in.Subject,
			"message": in.Message,
		}
		data.Errors = verrs
		h.pages.render(w, http.StatusUnprocessableEntity, "contact.html", data)
		return

	case outcome == service.OutcomeSaveFailed:
		setFlash(w, Flash{
			Category: "danger",
			Message:  "Your message could not be saved due to a server error. Please try again later.",
		})

	case outcome == service.OutcomeSavedNotifyFailed:
		setFlash(w, Flash{
			Category: "warning",
			Message:  "Your message was saved but we encountered an issue sending the notification. We will still get back to you soon.",
		})

	default:
		setFlash(w, Flash{
			Category: "success",
			Message:  "Your message has been sent successfully! I will get back to you soon.",
		})
	}

	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

// RateLimitExceeded redirects a rate-limited browser back to the form with
// a warning flash instead of serving a raw 429 page.
func (h *ContactHandler) RateLimitExceeded(w http.ResponseWriter, r *http.Request, _ time.Duration) {
	setFlash(w, Flash{Category: "warning", Message: "Too many requests. Please try again later."})
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
