package service

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/contactly/backend/internal/model"
	"github.com/contactly/backend/internal/repository"
	"github.com/google/uuid"
)

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	messageMinLen = 10
	messageMaxLen = 1000

	// duplicateWindow is how long an identical (email, message) pair
	// blocks re-submission.
	duplicateWindow = 24 * time.Hour

	defaultLimit = 10
	maxLimit     = 100
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// normalize trims every field and lowercases the email, in place.
func (in *SubmitInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
}

// validate checks every field independently and collects all violations.
// Inputs are assumed normalized.
func validate(in SubmitInput) *ValidationError {
	fields := make(map[string]string)

	switch n := utf8.RuneCountInString(in.Name); {
	case n < nameMinLen:
		fields["name"] = "Name must be at least 2 characters"
	case n > nameMaxLen:
		fields["name"] = "Name must be at most 100 characters"
	}

	if !emailPattern.MatchString(in.Email) {
		fields["email"] = "Please enter a valid email address"
	}

	if !phonePattern.MatchString(in.Phone) {
		fields["phone"] = "Please enter a valid phone number"
	}

	switch n := utf8.RuneCountInString(in.Message); {
	case n < messageMinLen:
		fields["message"] = "Message must be at least 10 characters"
	case n > messageMaxLen:
		fields["message"] = "Message must be at most 1000 characters"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Submit validates and persists a new inquiry with status "new".
//
// The duplicate check and the insert are two round trips, not a
// transaction: two identical submissions racing through the window can
// both persist. Accepted best-effort behavior for a spam guard.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmitInput) (*model.Contact, error) {
	in.normalize()
	if verr := validate(in); verr != nil {
		return nil, verr
	}

	dup, err := s.repo.HasRecentDuplicate(ctx, in.Email, in.Message, time.Now().Add(-duplicateWindow))
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateSubmission
	}

	c := &model.Contact{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Status:    model.StatusNew,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List applies paging defaults, fetches a page and computes metadata.
func (s *contactServiceImpl) List(ctx context.Context, in ListInput) ([]*model.Contact, *model.Pagination, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	contacts, total, err := s.repo.List(ctx, model.ContactListOptions{
		Status: in.Status,
		Search: in.Search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, nil, err
	}

	pages := (total + limit - 1) / limit
	return contacts, &model.Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}, nil
}

// Get returns a single inquiry. Malformed ids fail before touching the
// database.
func (s *contactServiceImpl) Get(ctx context.Context, id string) (*model.Contact, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus transitions an inquiry to the given status.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id string, status string) (*model.Contact, error) {
	if !model.ValidStatus(model.Status(status)) {
		return nil, ErrInvalidStatus
	}
	if err := parseID(id); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, model.Status(status))
}

// Delete removes an inquiry.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Stats returns aggregate counts straight from the repository.
func (s *contactServiceImpl) Stats(ctx context.Context) (*model.ContactStats, error) {
	return s.repo.Stats(ctx)
}

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
