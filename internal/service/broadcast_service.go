package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/apperr"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/cache"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/repository"
)

// BroadcastService writes outbound notifications: group fan-out to many
// students and direct sends to one.
type BroadcastService struct {
	outboundRepo repository.OutboundNotificationRepositoryInterface
	studentRepo  repository.StudentRepositoryInterface
	cache        *cache.NotificationCache
	log          zerolog.Logger
}

func NewBroadcastService(
	outboundRepo repository.OutboundNotificationRepositoryInterface,
	studentRepo repository.StudentRepositoryInterface,
	cache *cache.NotificationCache,
	log zerolog.Logger,
) *BroadcastService {
	return &BroadcastService{
		outboundRepo: outboundRepo,
		studentRepo:  studentRepo,
		cache:        cache,
		log:          log,
	}
}

type BroadcastResult struct {
	BroadcastID string `json:"broadcast_id"`
	Delivered   int    `json:"delivered"`
}

// Broadcast fans message out to every student in studentIDs under one fresh
// broadcast id. The whole group is written atomically: either every student
// gets a row or none do.
func (s *BroadcastService) Broadcast(adminID uint, message string, studentIDs []uint) (*BroadcastResult, error) {
	const op = "notifications.broadcast"

	recipients := dedupeIDs(studentIDs)
	if len(recipients) == 0 {
		return nil, apperr.NotFound(op, "No eligible recipients found")
	}

	broadcastID := uuid.NewString()
	rows := make([]models.OutboundNotification, 0, len(recipients))
	for _, studentID := range recipients {
		rows = append(rows, models.OutboundNotification{
			StudentID:   studentID,
			AdminID:     adminID,
			Message:     message,
			IsBroadcast: true,
			BroadcastID: &broadcastID,
		})
	}

	if err := s.outboundRepo.CreateBatch(rows); err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Int("recipients", len(recipients)).Msg("broadcast insert failed")
		return nil, apperr.Store(op, err)
	}

	_ = s.cache.InvalidateSent(adminID)

	return &BroadcastResult{BroadcastID: broadcastID, Delivered: len(rows)}, nil
}

// ResolveAllStudents returns every registered student id, the default
// recipient set for a broadcast.
func (s *BroadcastService) ResolveAllStudents() ([]uint, error) {
	const op = "notifications.resolve_recipients"

	ids, err := s.studentRepo.ListIDs()
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("student id listing failed")
		return nil, apperr.Store(op, err)
	}
	return ids, nil
}

// SendToStudent delivers one message to one student, without a broadcast id.
// The student must exist before the insert happens.
func (s *BroadcastService) SendToStudent(adminID, studentID uint, message string) (*models.OutboundNotification, error) {
	const op = "notifications.send_to_student"

	exists, err := s.studentRepo.Exists(studentID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Msg("student existence check failed")
		return nil, apperr.Store(op, err)
	}
	if !exists {
		return nil, apperr.NotFound(op, "Student not found")
	}

	n := &models.OutboundNotification{
		StudentID:   studentID,
		AdminID:     adminID,
		Message:     message,
		IsBroadcast: false,
	}
	if err := s.outboundRepo.Create(n); err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Uint("student_id", studentID).Msg("notification insert failed")
		return nil, apperr.Store(op, err)
	}

	_ = s.cache.InvalidateSent(adminID)

	return n, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
