package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"Valid email", "warden@example.com", true},
		{"Valid with surrounding space", "  warden@example.com  ", true},
		{"Empty", "", false},
		{"Missing domain", "warden@", false},
		{"Missing at sign", "warden.example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateEmail(tt.email); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Warden@Example.COM "); got != "warden@example.com" {
		t.Errorf("NormalizeEmail = %q, want %q", got, "warden@example.com")
	}
}

func TestPasswordMinLength(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"Default", "", 10},
		{"Override", "12", 12},
		{"Below floor falls back", "4", 10},
		{"Garbage falls back", "ten", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PASSWORD_MIN_LENGTH", tt.env)
			if got := PasswordMinLength(); got != tt.want {
				t.Errorf("PasswordMinLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizeNotificationMessage(t *testing.T) {
	t.Setenv("MAX_NOTIFICATION_LENGTH", "")

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		message string
		want    string
		wantOK  bool
	}{
		{"Fits", "Water outage in block C", "Water outage in block C", true},
		{"Trimmed then fits", "  hello  ", "hello", true},
		{"Minimum length", "12345", "12345", true},
		{"Too short after trim", "  hi  ", "hi", false},
		{"Empty", "", "", false},
		{"Whitespace only", "    ", "", false},
		{"Over the cap", string(long), string(long), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeNotificationMessage(tt.message)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NormalizeNotificationMessage(%q) = (%q, %v), want (%q, %v)", tt.message, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMaxNotificationLength(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"Default", "", 255},
		{"Override", "500", 500},
		{"Below minimum falls back", "2", 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAX_NOTIFICATION_LENGTH", tt.env)
			if got := MaxNotificationLength(); got != tt.want {
				t.Errorf("MaxNotificationLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   uint
		wantOK bool
	}{
		{"Valid", "42", 42, true},
		{"With space", " 7 ", 7, true},
		{"Zero", "0", 0, false},
		{"Negative", "-1", 0, false},
		{"Not a number", "abc", 0, false},
		{"Empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseID(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Valid v4", "3f6c1f0a-9c2b-4d8e-a1b2-0c9d8e7f6a5b", true},
		{"Trimmed", " 3f6c1f0a-9c2b-4d8e-a1b2-0c9d8e7f6a5b ", true},
		{"Not a uuid", "broadcast-123", false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateUUID(tt.input); got != tt.want {
				t.Errorf("ValidateUUID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimAndLimit(t *testing.T) {
	if got := TrimAndLimit("  hello world  ", 5); got != "hello" {
		t.Errorf("TrimAndLimit = %q, want %q", got, "hello")
	}
	if got := TrimAndLimit("short", 0); got != "short" {
		t.Errorf("TrimAndLimit with no cap = %q, want %q", got, "short")
	}
}
