package validation

import (
	"net/mail"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func PasswordMinLength() int {
	minStr := os.Getenv("PASSWORD_MIN_LENGTH")
	if minStr == "" {
		return 10
	}
	min, err := strconv.Atoi(minStr)
	if err != nil || min < 8 {
		return 10
	}
	return min
}

func ValidatePassword(password string) bool {
	return len(password) >= PasswordMinLength()
}

// Notification messages must be 5-255 characters after trimming.
const MinNotificationLength = 5

func MaxNotificationLength() int {
	maxStr := os.Getenv("MAX_NOTIFICATION_LENGTH")
	if maxStr == "" {
		return 255
	}
	max, err := strconv.Atoi(maxStr)
	if err != nil || max < MinNotificationLength {
		return 255
	}
	return max
}

// NormalizeNotificationMessage trims the message and reports whether it fits
// the length constraints.
func NormalizeNotificationMessage(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < MinNotificationLength || len(s) > MaxNotificationLength() {
		return s, false
	}
	return s, true
}

func TrimAndLimit(s string, max int) string {
	s = strings.TrimSpace(s)
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

// ParseID parses a positive integer route parameter.
func ParseID(s string) (uint, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// ValidateUUID reports whether s is a well-formed UUID string.
func ValidateUUID(s string) bool {
	_, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil
}
