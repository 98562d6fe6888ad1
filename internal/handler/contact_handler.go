package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/contactly/backend/internal/model"
	"github.com/contactly/backend/internal/repository"
	"github.com/contactly/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// ContactHandler handles contact-form submission and admin endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact-us.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// submitResponse echoes only a subset of the created record. Message,
// phone, status and captured metadata stay server-side.
type submitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Submit handles POST /api/contact-us.
// All four fields are required; deeper format validation happens in the
// service, which enforces the same rules as the client independently.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"message", req.Message},
	} {
		if f.value == "" {
			missing = append(missing, f.name+" is required")
		}
	}
	if len(missing) > 0 {
		respondFieldErrors(w, "Missing required fields", missing)
		return
	}

	contact, err := h.contactService.Submit(r.Context(), service.SubmitInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			respondFieldErrors(w, "Validation failed", verr.Messages())
		case errors.Is(err, service.ErrDuplicateSubmission):
			respondError(w, http.StatusTooManyRequests,
				"This message was submitted recently. Please wait 24 hours before trying again.")
		default:
			slog.Error("contact submission failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Thank you for reaching out. We will get back to you soon.",
		Data: submitResponse{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			CreatedAt: contact.CreatedAt,
		},
	})
}

// List handles GET /api/contacts.
// Query params: page (default 1), limit (default 10), status (all =
// no filter), search.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	in := service.ListInput{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			in.Page = n
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			in.Limit = n
		}
	}

	contacts, pagination, err := h.contactService.List(r.Context(), in)
	if err != nil {
		slog.Error("contact list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}

	// Return [] not null for empty pages
	if contacts == nil {
		contacts = []*model.Contact{}
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: contacts, Pagination: pagination})
}

// Get handles GET /api/contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondLookupError(w, err, "fetch")
		return
	}
	respondData(w, http.StatusOK, contact)
}

// statusRequest is the expected JSON body for PATCH /api/contacts/{id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/contacts/{id}/status.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.contactService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			respondError(w, http.StatusBadRequest,
				"Status must be one of: new, read, replied, archived")
			return
		}
		h.respondLookupError(w, err, "update")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: fmt.Sprintf("Contact marked as %s", contact.Status),
		Data:    contact,
	})
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondLookupError(w, err, "delete")
		return
	}
	respondMessage(w, http.StatusOK, "Contact deleted successfully")
}

// Stats handles GET /api/contacts/stats/summary.
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactService.Stats(r.Context())
	if err != nil {
		slog.Error("contact stats failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	respondData(w, http.StatusOK, stats)
}

// respondLookupError maps the shared id-lookup failure modes.
func (h *ContactHandler) respondLookupError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "Invalid contact id")
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "Contact not found")
	default:
		slog.Error("contact "+op+" failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}
}

// clientIP extracts the caller address. The RealIP middleware has
// already resolved proxy headers into RemoteAddr; direct connections
// still carry a port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
