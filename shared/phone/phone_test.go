package phone_test

import (
	"net/http"
	"testing"

	"krown/shared/failure"
	"krown/shared/phone"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare ten digits",
			input:    "9876543210",
			expected: "+919876543210",
		},
		{
			name:     "plus country code prefix",
			input:    "+919876543210",
			expected: "+919876543210",
		},
		{
			name:     "country code without plus",
			input:    "919876543210",
			expected: "+919876543210",
		},
		{
			name:     "spaces and hyphens stripped",
			input:    "+91 98765-43210",
			expected: "+919876543210",
		},
		{
			name:     "hyphenated without prefix",
			input:    "98765-43210",
			expected: "+919876543210",
		},
		{
			name:    "too short",
			input:   "98765",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "98765432101",
			wantErr: true,
		},
		{
			name:    "non-digit characters",
			input:   "98765abcde",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "only country code",
			input:   "+91",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := phone.Normalize(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for input %q, got %q", tt.input, got)
				}

				if code := failure.GetCode(err); code != http.StatusUnprocessableEntity {
					t.Errorf("expected 422 failure, got %d", code)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Normalizing an already-normalized number must be a no-op, so that the
// initiate and lookup paths agree on the stored form.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"9876543210", "+91 98765 43210", "919876543210"}

	for _, input := range inputs {
		first, err := phone.Normalize(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}

		second, err := phone.Normalize(first)
		if err != nil {
			t.Fatalf("unexpected error re-normalizing %q: %v", first, err)
		}

		if first != second {
			t.Errorf("normalize not idempotent: %q -> %q -> %q", input, first, second)
		}
	}
}
