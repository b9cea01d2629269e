package validator

import "testing"

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+15551234567", true},
		{"15551234567", true},
		{"+1 555-123-4567", true},
		{"977 9841234567", true},
		{"abc", false},
		{"", false},
		{"+0123456", false},
		{"+1", false},
		{"+123456789012345678", false},
		{"555 123 4567 ext 2", false},
	}

	for _, tt := range tests {
		if got := IsValidPhone(tt.phone); got != tt.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+1 555-123-4567", "+15551234567"},
		{"555 123 4567", "5551234567"},
		{"+15551234567", "+15551234567"},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.org", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestCustomTags(t *testing.T) {
	type payload struct {
		Photo string `validate:"httpurl"`
		Time  string `validate:"timeslot"`
	}

	v := NewValidator()

	tests := []struct {
		name   string
		in     payload
		wantOK bool
	}{
		{"valid", payload{Photo: "https://example.com/p.jpg", Time: "09:30"}, true},
		{"http also accepted", payload{Photo: "http://example.com/p.jpg", Time: "23:59"}, true},
		{"bad scheme", payload{Photo: "ftp://example.com/p.jpg", Time: "09:30"}, false},
		{"hour out of range", payload{Photo: "https://example.com/p.jpg", Time: "24:00"}, false},
		{"minutes out of range", payload{Photo: "https://example.com/p.jpg", Time: "09:60"}, false},
		{"missing leading zero", payload{Photo: "https://example.com/p.jpg", Time: "9:30"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.in)
			if tt.wantOK && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("Validate() error = nil, want error")
			}
		})
	}
}
