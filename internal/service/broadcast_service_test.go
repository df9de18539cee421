package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/apperr"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/testutil"
)

func newBroadcastService(outbound *MockOutboundRepository, students *MockStudentRepository) *BroadcastService {
	return NewBroadcastService(outbound, students, nil, zerolog.Nop())
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		name       string
		adminID    uint
		message    string
		studentIDs []uint
		wantErr    apperr.Kind
		wantCount  int
	}{
		{
			name:       "Broadcast to three students",
			adminID:    42,
			message:    "System down",
			studentIDs: []uint{1, 2, 3},
			wantCount:  3,
		},
		{
			name:       "Duplicate recipients collapse to a set",
			adminID:    42,
			message:    "Water maintenance",
			studentIDs: []uint{1, 1, 2},
			wantCount:  2,
		},
		{
			name:       "Empty recipient set",
			adminID:    42,
			message:    "Nobody home",
			studentIDs: nil,
			wantErr:    apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outbound := NewMockOutboundRepository()
			svc := newBroadcastService(outbound, NewMockStudentRepository())

			result, err := svc.Broadcast(tt.adminID, tt.message, tt.studentIDs)
			if tt.wantErr != apperr.KindUnknown {
				if apperr.KindOf(err) != tt.wantErr {
					t.Fatalf("Broadcast error kind = %v, want %v", apperr.KindOf(err), tt.wantErr)
				}
				if len(outbound.notifications) != 0 {
					t.Errorf("Broadcast wrote %d rows on failure, want 0", len(outbound.notifications))
				}
				return
			}
			if err != nil {
				t.Fatalf("Broadcast unexpected error: %v", err)
			}
			if result.Delivered != tt.wantCount {
				t.Errorf("Broadcast delivered %d, want %d", result.Delivered, tt.wantCount)
			}
			if len(outbound.notifications) != tt.wantCount {
				t.Errorf("Broadcast wrote %d rows, want %d", len(outbound.notifications), tt.wantCount)
			}
			for _, n := range outbound.notifications {
				if !n.IsBroadcast {
					t.Errorf("broadcast row %d not flagged as broadcast", n.ID)
				}
				if n.BroadcastID == nil || *n.BroadcastID != result.BroadcastID {
					t.Errorf("broadcast row %d has wrong group id", n.ID)
				}
				if n.Message != tt.message {
					t.Errorf("broadcast row %d message = %q, want %q", n.ID, n.Message, tt.message)
				}
				if n.AdminID != tt.adminID {
					t.Errorf("broadcast row %d admin = %d, want %d", n.ID, n.AdminID, tt.adminID)
				}
			}
		})
	}
}

func TestBroadcastGroupIDsAreUnique(t *testing.T) {
	outbound := NewMockOutboundRepository()
	svc := newBroadcastService(outbound, NewMockStudentRepository())

	first, err := svc.Broadcast(1, "First round", []uint{1, 2})
	if err != nil {
		t.Fatalf("first Broadcast failed: %v", err)
	}
	second, err := svc.Broadcast(1, "Second round", []uint{1, 2})
	if err != nil {
		t.Fatalf("second Broadcast failed: %v", err)
	}
	if first.BroadcastID == second.BroadcastID {
		t.Errorf("two broadcasts shared group id %s", first.BroadcastID)
	}
}

func TestBroadcastStoreFailureLeavesNoRows(t *testing.T) {
	outbound := NewMockOutboundRepository()
	outbound.failWith = errors.New("connection reset")
	svc := newBroadcastService(outbound, NewMockStudentRepository())

	_, err := svc.Broadcast(1, "Doomed", []uint{1, 2, 3})
	if apperr.KindOf(err) != apperr.KindStore {
		t.Fatalf("Broadcast error kind = %v, want store failure", apperr.KindOf(err))
	}
	if len(outbound.notifications) != 0 {
		t.Errorf("failed broadcast left %d rows behind", len(outbound.notifications))
	}
}

func TestSendToStudent(t *testing.T) {
	students := NewMockStudentRepository()
	students.Create(testutil.NewTestHelper(t).CreateTestStudent(7, "Chipo Banda", "chipo@example.com"))

	tests := []struct {
		name      string
		studentID uint
		wantErr   apperr.Kind
	}{
		{"Send to existing student", 7, apperr.KindUnknown},
		{"Send to missing student", 999, apperr.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outbound := NewMockOutboundRepository()
			svc := newBroadcastService(outbound, students)

			n, err := svc.SendToStudent(42, tt.studentID, "hi there")
			if tt.wantErr != apperr.KindUnknown {
				if apperr.KindOf(err) != tt.wantErr {
					t.Fatalf("SendToStudent error kind = %v, want %v", apperr.KindOf(err), tt.wantErr)
				}
				if len(outbound.notifications) != 0 {
					t.Errorf("SendToStudent wrote a row despite missing student")
				}
				return
			}
			if err != nil {
				t.Fatalf("SendToStudent unexpected error: %v", err)
			}
			if n.IsBroadcast {
				t.Error("direct send flagged as broadcast")
			}
			if n.BroadcastID != nil {
				t.Error("direct send carries a broadcast id")
			}
			if n.StudentID != tt.studentID || n.AdminID != 42 {
				t.Errorf("SendToStudent row addressed to (%d,%d), want (%d,42)", n.StudentID, n.AdminID, tt.studentID)
			}
		})
	}
}

func TestResolveAllStudents(t *testing.T) {
	students := NewMockStudentRepository()
	students.Create(&models.Student{FullName: "A", Email: "a@example.com"})
	students.Create(&models.Student{FullName: "B", Email: "b@example.com"})

	svc := newBroadcastService(NewMockOutboundRepository(), students)
	ids, err := svc.ResolveAllStudents()
	if err != nil {
		t.Fatalf("ResolveAllStudents failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("ResolveAllStudents returned %d ids, want 2", len(ids))
	}
}
