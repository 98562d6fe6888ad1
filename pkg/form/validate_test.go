package form

import "testing"

func validData() Data {
	return Data{
		Name:    "Al",
		Email:   "a@b.com",
		Phone:   "+15551234567",
		Message: "Hello there, need help",
	}
}

func TestValidate_ValidData_NoErrors(t *testing.T) {
	errs := Validate(validData())
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_Name(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"single char", "A", true},
		{"two chars", "Al", false},
		{"padded two chars", "  Al  ", false},
		{"long name", "Alexander Hamilton", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			d.Name = tt.value
			_, got := Validate(d)["name"]
			if got != tt.wantErr {
				t.Errorf("Name=%q: error=%v, want %v", tt.value, got, tt.wantErr)
			}
		})
	}
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"no at sign", "invalid", true},
		{"no domain", "a@", true},
		{"no tld", "a@b", true},
		{"spaces inside", "a b@c.com", true},
		{"valid", "a@b.com", false},
		{"valid subdomain", "user@mail.example.org", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			d.Email = tt.value
			_, got := Validate(d)["email"]
			if got != tt.wantErr {
				t.Errorf("Email=%q: error=%v, want %v", tt.value, got, tt.wantErr)
			}
		})
	}
}

func TestValidate_Phone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"leading zero", "0551234567", true},
		{"letters", "555abc", true},
		{"plus only", "+", true},
		{"too long", "+12345678901234567", true},
		{"valid with plus", "+15551234567", false},
		{"valid without plus", "15551234567", false},
		{"single digit", "5", false},
		{"sixteen digits", "1234567890123456", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			d.Phone = tt.value
			_, got := Validate(d)["phone"]
			if got != tt.wantErr {
				t.Errorf("Phone=%q: error=%v, want %v", tt.value, got, tt.wantErr)
			}
		})
	}
}

func TestValidate_Message(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"nine chars", "123456789", true},
		{"nine chars padded", "  123456789  ", true},
		{"ten chars", "1234567890", false},
		{"normal message", "Hello there, need help", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			d.Message = tt.value
			_, got := Validate(d)["message"]
			if got != tt.wantErr {
				t.Errorf("Message=%q: error=%v, want %v", tt.value, got, tt.wantErr)
			}
		})
	}
}

// TestValidate_AllFieldsReported verifies that validation does not
// short-circuit: every invalid field gets its own message.
func TestValidate_AllFieldsReported(t *testing.T) {
	errs := Validate(Data{})
	for _, f := range []string{"name", "email", "phone", "message"} {
		if errs[f] == "" {
			t.Errorf("expected an error message for %q, got none", f)
		}
	}
	if len(errs) != 4 {
		t.Errorf("expected 4 errors, got %d: %v", len(errs), errs)
	}
}
