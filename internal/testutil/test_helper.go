package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
)

// TestHelper provides utility functions for tests
type TestHelper struct {
	t *testing.T
}

func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// CreateTestStudent creates a test student with default values
func (h *TestHelper) CreateTestStudent(id uint, fullName, email string) *models.Student {
	if id == 0 {
		id = 1
	}
	if fullName == "" {
		fullName = "Test Student"
	}
	if email == "" {
		email = "student@example.com"
	}

	return &models.Student{
		ID:            id,
		FullName:      fullName,
		StudentNumber: "2021000001",
		Email:         email,
		PasswordHash:  "hashed_password_123",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// CreateTestOutbound creates a test sent notification with default values
func (h *TestHelper) CreateTestOutbound(id, adminID, studentID uint, message string) *models.OutboundNotification {
	if message == "" {
		message = "Test notification"
	}
	return &models.OutboundNotification{
		ID:        id,
		AdminID:   adminID,
		StudentID: studentID,
		Message:   message,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// CreateTestInbound creates a test received notification with default values
func (h *TestHelper) CreateTestInbound(id, adminID, studentID uint, message string) *models.InboundNotification {
	if message == "" {
		message = "Test notification"
	}
	return &models.InboundNotification{
		ID:        id,
		AdminID:   adminID,
		StudentID: studentID,
		Message:   message,
		Status:    models.StatusUnread,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// SetupTestEnv sets up required environment variables for testing
func (h *TestHelper) SetupTestEnv() {
	os.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	os.Setenv("PASSWORD_MIN_LENGTH", "10")
}

// TeardownTestEnv cleans up environment variables after testing
func (h *TestHelper) TeardownTestEnv() {
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("PASSWORD_MIN_LENGTH")
}
