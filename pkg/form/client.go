package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrDuplicateSubmission is returned when the server rejects a
// submission because the same message was sent within the last 24 hours.
var ErrDuplicateSubmission = errors.New("message already submitted recently")

// SubmitError carries the server-side field validation messages from a
// rejected submission.
type SubmitError struct {
	Messages []string
}

func (e *SubmitError) Error() string {
	return "submission rejected: " + strings.Join(e.Messages, "; ")
}

// SubmitResult is the subset of the created record echoed by the server.
type SubmitResult struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Client posts contact-form submissions to the backend. Uses a raw HTTP
// client, no SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API at baseURL (without the /api
// suffix).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// submitEnvelope mirrors the server response body.
type submitEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *SubmitResult `json:"data"`
	Errors  []string      `json:"errors"`
}

// Submit posts the form data to /api/contact-us and decodes the result.
// Returns *SubmitError on validation rejection and
// ErrDuplicateSubmission when the duplicate guard trips.
func (c *Client) Submit(ctx context.Context, d Data) (*SubmitResult, error) {
	payload, err := json.Marshal(map[string]string{
		"name":    d.Name,
		"email":   d.Email,
		"phone":   d.Phone,
		"message": d.Message,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/contact-us", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body submitEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		if body.Data == nil {
			return nil, errors.New("missing data in response")
		}
		return body.Data, nil
	case http.StatusBadRequest:
		msgs := body.Errors
		if len(msgs) == 0 && body.Message != "" {
			msgs = []string{body.Message}
		}
		return nil, &SubmitError{Messages: msgs}
	case http.StatusTooManyRequests:
		return nil, ErrDuplicateSubmission
	default:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body.Message)
	}
}
