package model

import "time"

// Status is the lifecycle state of a contact inquiry.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}

// Contact represents an inquiry submitted via the contact form.
// IPAddress and UserAgent are captured server-side at submission time
// and may be empty.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactListOptions carries filter and pagination parameters for listing contacts.
type ContactListOptions struct {
	// Status filters by inquiry status. Empty string and "all" return
	// all statuses.
	Status string
	// Search matches name, email or message by case-insensitive
	// substring. Empty string disables the filter.
	Search string
	Limit  int
	Offset int
}

// ContactStats is the aggregate returned by the stats endpoint.
// Archived inquiries only contribute to Total.
type ContactStats struct {
	Total    int `json:"total"`
	New      int `json:"new"`
	Read     int `json:"read"`
	Replied  int `json:"replied"`
	LastWeek int `json:"last_week"`
}

// Pagination is the page metadata attached to list responses.
type Pagination struct {
	Current int  `json:"current"`
	Pages   int  `json:"pages"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}
