package validator_test

import (
	"strings"
	"testing"

	"hotelier/shared/validator"
)

type stayRequest struct {
	Name    string `json:"name"     validate:"required,max=100"`
	Email   string `json:"email"    validate:"required,email"`
	CheckIn string `json:"check_in" validate:"required,dateonly"`
	Guests  int    `json:"guests"   validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		errContains string
	}{
		{
			name: "valid body",
			body: `{"name":"John","email":"john@example.com","check_in":"2025-06-01","guests":2}`,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
			errContains: "failed to decode request body",
		},
		{
			name:        "missing required field",
			body:        `{"email":"john@example.com","check_in":"2025-06-01","guests":2}`,
			expectError: true,
			errContains: "Name is required",
		},
		{
			name:        "invalid email",
			body:        `{"name":"John","email":"not-an-email","check_in":"2025-06-01","guests":2}`,
			expectError: true,
			errContains: "Email must be a valid email address",
		},
		{
			name:        "invalid calendar date",
			body:        `{"name":"John","email":"john@example.com","check_in":"06/01/2025","guests":2}`,
			expectError: true,
			errContains: "CheckIn must be a calendar date in YYYY-MM-DD format",
		},
		{
			name:        "zero guests",
			body:        `{"name":"John","email":"john@example.com","check_in":"2025-06-01","guests":0}`,
			expectError: true,
			errContains: "Guests must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if !tt.expectError {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := stayRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		CheckIn: "2025-06-01",
		Guests:  1,
	}

	if err := validator.ValidateStruct(&valid); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	invalid := stayRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		CheckIn: "not-a-date",
		Guests:  1,
	}

	if err := validator.ValidateStruct(&invalid); err == nil {
		t.Error("expected error for invalid date, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2025-06-01", "dateonly"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("tomorrow", "dateonly"); err == nil {
		t.Error("expected error for non-date string, got nil")
	}
}
