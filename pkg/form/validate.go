// Package form implements the client side of the contact form: local
// field validation, the submission HTTP client, and the form state
// machine driving them.
package form

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Data holds the user-editable fields of the contact form.
type Data struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
)

// Validate checks every field independently and returns a map from field
// name to a human-readable message. A field absent from the map is
// valid. Local validation is a UX convenience only; the server enforces
// the same rules independently.
func Validate(d Data) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case utf8.RuneCountInString(name) < 2:
		errs["name"] = "Name must be at least 2 characters"
	}

	email := strings.TrimSpace(d.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}

	phone := strings.TrimSpace(d.Phone)
	switch {
	case phone == "":
		errs["phone"] = "Phone is required"
	case !phonePattern.MatchString(phone):
		errs["phone"] = "Please enter a valid phone number"
	}

	message := strings.TrimSpace(d.Message)
	switch {
	case message == "":
		errs["message"] = "Message is required"
	case utf8.RuneCountInString(message) < 10:
		errs["message"] = "Message must be at least 10 characters"
	}

	return errs
}
