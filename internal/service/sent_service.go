package service

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/apperr"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/cache"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/repository"
)

// SentNotificationService mutates and lists notifications an admin has sent.
// Every mutation is scoped by the admin id so one admin can never touch
// another admin's rows.
type SentNotificationService struct {
	outboundRepo repository.OutboundNotificationRepositoryInterface
	cache        *cache.NotificationCache
	log          zerolog.Logger
}

func NewSentNotificationService(
	outboundRepo repository.OutboundNotificationRepositoryInterface,
	cache *cache.NotificationCache,
	log zerolog.Logger,
) *SentNotificationService {
	return &SentNotificationService{outboundRepo: outboundRepo, cache: cache, log: log}
}

func (s *SentNotificationService) ListSent(adminID uint) ([]models.OutboundNotification, error) {
	const op = "notifications.list_sent"

	if cached, ok := s.cache.GetSentList(adminID); ok {
		if len(cached) == 0 {
			return nil, apperr.NotFound(op, "No sent notifications found")
		}
		return cached, nil
	}

	ns, err := s.outboundRepo.ListByAdmin(adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Msg("sent listing failed")
		return nil, apperr.Store(op, err)
	}
	if len(ns) == 0 {
		return nil, apperr.NotFound(op, "No sent notifications found")
	}

	_ = s.cache.SetSentList(adminID, ns)

	return ns, nil
}

func (s *SentNotificationService) ListSentToStudent(adminID, studentID uint) ([]models.OutboundNotification, error) {
	const op = "notifications.list_sent_to_student"

	ns, err := s.outboundRepo.ListByAdminAndStudent(adminID, studentID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Uint("student_id", studentID).Msg("sent listing failed")
		return nil, apperr.Store(op, err)
	}
	if len(ns) == 0 {
		return nil, apperr.NotFound(op, "No notifications sent to this student")
	}
	return ns, nil
}

// EditOne rewrites the message of exactly one sent notification, matched by
// (id, student, admin).
func (s *SentNotificationService) EditOne(adminID, notificationID, studentID uint, message string) error {
	const op = "notifications.edit_one"

	affected, err := s.outboundRepo.UpdateMessage(notificationID, studentID, adminID, message)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Uint("notification_id", notificationID).Msg("edit failed")
		return apperr.Store(op, err)
	}
	if affected == 0 {
		return apperr.NotFound(op, "No matching sent notification found")
	}

	_ = s.cache.InvalidateSent(adminID)

	return nil
}

// EditBroadcast rewrites every row of one broadcast group owned by the admin
// and reports how many rows changed. A zero count means the group does not
// exist for this admin and is reported as not found, never as silent success.
func (s *SentNotificationService) EditBroadcast(adminID uint, broadcastID string, message string) (int64, error) {
	const op = "notifications.edit_broadcast"

	affected, err := s.outboundRepo.UpdateMessageByBroadcast(adminID, broadcastID, message)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Str("broadcast_id", broadcastID).Msg("group edit failed")
		return 0, apperr.Store(op, err)
	}
	if affected == 0 {
		return 0, apperr.NotFound(op, "No broadcast with that id found")
	}

	_ = s.cache.InvalidateSent(adminID)

	return affected, nil
}

// DeleteOne looks the row up to discover its student, then deletes by the
// (id, student, admin) triple.
func (s *SentNotificationService) DeleteOne(adminID, notificationID uint) error {
	const op = "notifications.delete_sent"

	n, err := s.outboundRepo.FindOwned(notificationID, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(op, "No sent notification with that id found")
		}
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Uint("notification_id", notificationID).Msg("lookup failed")
		return apperr.Store(op, err)
	}

	affected, err := s.outboundRepo.Delete(notificationID, n.StudentID, adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Uint("notification_id", notificationID).Msg("delete failed")
		return apperr.Store(op, err)
	}
	if affected == 0 {
		return apperr.NotFound(op, "No sent notification with that id found")
	}

	_ = s.cache.InvalidateSent(adminID)

	return nil
}

// DeleteAll removes every notification the admin has sent. The count is
// checked first so an empty account fails with not found instead of
// reporting a zero-row delete as success.
func (s *SentNotificationService) DeleteAll(adminID uint) (int64, error) {
	const op = "notifications.delete_all_sent"

	count, err := s.outboundRepo.CountByAdmin(adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Msg("count failed")
		return 0, apperr.Store(op, err)
	}
	if count == 0 {
		return 0, apperr.NotFound(op, "No sent notifications found")
	}

	deleted, err := s.outboundRepo.DeleteAllByAdmin(adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Msg("delete failed")
		return 0, apperr.Store(op, err)
	}

	_ = s.cache.InvalidateSent(adminID)

	return deleted, nil
}
