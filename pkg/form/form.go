package form

import (
	"context"
	"errors"
)

// Submitter sends a validated form to the backend. *Client implements it.
type Submitter interface {
	Submit(ctx context.Context, d Data) (*SubmitResult, error)
}

// User-facing status messages.
const (
	successMessage   = "Your message has been sent. Thank you!"
	failureMessage   = "Failed to send your message. Please try again."
	duplicateMessage = "You already sent this message recently. Please wait 24 hours."
)

// Form is the contact form state machine: field values, per-field
// errors, an in-flight flag and a single status message.
//
// Form models a single-threaded UI event loop and is not safe for
// concurrent use.
type Form struct {
	submitter Submitter

	data          Data
	fieldErrors   map[string]string
	submitting    bool
	statusMessage string
}

// New creates an empty form submitting through s.
func New(s Submitter) *Form {
	return &Form{
		submitter:   s,
		fieldErrors: make(map[string]string),
	}
}

// setField updates a field value and clears that field's error, if any.
// Errors on other fields persist until their own re-validation.
func (f *Form) setField(field string, dst *string, value string) {
	*dst = value
	delete(f.fieldErrors, field)
}

func (f *Form) SetName(v string)    { f.setField("name", &f.data.Name, v) }
func (f *Form) SetEmail(v string)   { f.setField("email", &f.data.Email, v) }
func (f *Form) SetPhone(v string)   { f.setField("phone", &f.data.Phone, v) }
func (f *Form) SetMessage(v string) { f.setField("message", &f.data.Message, v) }

// Submit runs local validation and, if it passes, sends the form.
// On validation errors it sets the per-field errors and returns without
// a network call. On success the fields reset to empty; on failure they
// are kept so the user can correct and resubmit. The in-flight flag is
// always cleared when the call settles.
//
// CanSubmit is the disable signal for the submit control; Submit does
// not re-check it, so a bypassed guard fires a second request.
func (f *Form) Submit(ctx context.Context) {
	if errs := Validate(f.data); len(errs) > 0 {
		f.fieldErrors = errs
		return
	}

	f.submitting = true
	f.statusMessage = ""
	defer func() { f.submitting = false }()

	_, err := f.submitter.Submit(ctx, f.data)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateSubmission):
			f.statusMessage = duplicateMessage
		default:
			f.statusMessage = failureMessage
		}
		return
	}

	f.statusMessage = successMessage
	f.data = Data{}
}

// Data returns the current field values.
func (f *Form) Data() Data { return f.data }

// FieldError returns the error message for a field, if any.
func (f *Form) FieldError(field string) (string, bool) {
	msg, ok := f.fieldErrors[field]
	return msg, ok
}

// IsSubmitting reports whether a submission is in flight.
func (f *Form) IsSubmitting() bool { return f.submitting }

// CanSubmit reports whether the submit control should be enabled.
func (f *Form) CanSubmit() bool { return !f.submitting }

// StatusMessage returns the current form-level status message.
func (f *Form) StatusMessage() string { return f.statusMessage }
