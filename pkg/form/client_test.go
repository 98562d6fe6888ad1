package form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Submit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/contact-us" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.com" {
			t.Errorf("expected email forwarded, got %q", body["email"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"abc","name":"Al","email":"a@b.com","created_at":"2026-08-27T10:00:00Z"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Submit(context.Background(), validData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "abc" || res.Name != "Al" || res.Email != "a@b.com" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestClient_Submit_ValidationRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Validation failed","errors":["Please enter a valid email address"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Submit(context.Background(), validData())

	var serr *SubmitError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SubmitError, got %v", err)
	}
	if len(serr.Messages) != 1 || serr.Messages[0] != "Please enter a valid email address" {
		t.Errorf("unexpected messages: %v", serr.Messages)
	}
}

func TestClient_Submit_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"success":false,"message":"submitted recently"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Submit(context.Background(), validData())
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Errorf("expected ErrDuplicateSubmission, got %v", err)
	}
}

func TestClient_Submit_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Something went wrong"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Submit(context.Background(), validData())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	var serr *SubmitError
	if errors.As(err, &serr) || errors.Is(err, ErrDuplicateSubmission) {
		t.Errorf("500 must map to a generic error, got %v", err)
	}
}
