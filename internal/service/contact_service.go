package service

import (
	"context"
	"errors"
	"strings"

	"github.com/contactly/backend/internal/model"
)

var (
	// ErrInvalidID is returned when an id is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid contact id")

	// ErrInvalidStatus is returned when a status transition targets a
	// value outside the known enum.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrDuplicateSubmission is returned when the same (email, message)
	// pair was already submitted within the duplicate window.
	ErrDuplicateSubmission = errors.New("duplicate submission")
)

// ValidationError reports every field that failed server-side validation.
type ValidationError struct {
	// Fields maps field name ("name", "email", "phone", "message") to a
	// human-readable message.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the field error messages in a stable field order.
func (e *ValidationError) Messages() []string {
	var msgs []string
	for _, f := range []string{"name", "email", "phone", "message"} {
		if m, ok := e.Fields[f]; ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// SubmitInput carries a contact-form submission into the service.
// IPAddress and UserAgent come from the request, never from the client
// payload.
type SubmitInput struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	IPAddress string
	UserAgent string
}

// ListInput carries pagination and filter parameters for listing contacts.
type ListInput struct {
	Page   int
	Limit  int
	Status string
	Search string
}

// ContactService defines the business logic around contact inquiries.
type ContactService interface {
	// Submit validates, spam-guards and persists a new inquiry. Returns
	// *ValidationError when fields are malformed and
	// ErrDuplicateSubmission when the 24h duplicate guard trips.
	Submit(ctx context.Context, in SubmitInput) (*model.Contact, error)

	// List returns a page of inquiries plus pagination metadata.
	List(ctx context.Context, in ListInput) ([]*model.Contact, *model.Pagination, error)

	// Get returns a single inquiry by id.
	Get(ctx context.Context, id string) (*model.Contact, error)

	// UpdateStatus transitions an inquiry to a new status and returns
	// the updated record.
	UpdateStatus(ctx context.Context, id string, status string) (*model.Contact, error)

	// Delete removes an inquiry by id.
	Delete(ctx context.Context, id string) error

	// Stats returns aggregate counts.
	Stats(ctx context.Context) (*model.ContactStats, error)
}
