package service

import (
	"net/mail"
	"regexp"
)

// namePattern permits letters, spaces, hyphens, apostrophes and periods.
var namePattern = regexp.MustCompile(`^[A-Za-z\s\-'.]+$`)

// validate checks every raw field against its constraint and returns all
// violations at once, keyed by field name. Lengths are counted in runes.
func validate(in SubmissionInput) ValidationErrors {
	errs := ValidationErrors{}

	switch n := len([]rune(in.Name)); {
	case n == 0:
		errs["name"] = "Please enter your name"
	case n < 2 || n > 100:
		errs["name"] = "Name must be between 2 and 100 characters"
	case !namePattern.MatchString(in.Name):
		errs["name"] = "Name can only contain letters, spaces, hyphens, and apostrophes"
	}

	switch n := len([]rune(in.Email)); {
	case n == 0:
		errs["email"] = "Please enter your email address"
	case n > 100:
		errs["email"] = "Email must be less than 100 characters"
	case !validEmail(in.Email):
		errs["email"] = "Please enter a valid email address"
	}

	switch n := len([]rune(in.Subject)); {
	case n == 0:
		errs["subject"] = "Please enter a subject"
	case n < 5 || n > 200:
		errs["subject"] = "Subject must be between 5 and 200 characters"
	}

	switch n := len([]rune(in.Message)); {
	case n == 0:
		errs["message"] = "Please enter your message"
	case n < 10 || n > 2000:
		errs["message"] = "Message must be between 10 and 2000 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validEmail accepts a bare addr-spec only; display names are rejected so
// the stored value is exactly the address that was validated.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
