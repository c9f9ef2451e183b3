package model

import "time"

// ContactSubmission represents one entry submitted via the contact form.
// Name, Subject and Message are stored post-sanitization and never contain
// markup; Email is format-validated instead and stored as received.
type ContactSubmission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	IPAddress   string    `json:"ip_address,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	IsProcessed bool      `json:"is_processed"`
}

// SubmissionCounts carries the totals returned by the count operation.
type SubmissionCounts struct {
	Total       int64
	Unprocessed int64
}
