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

// InboxService manages the admin's inbound mailbox: listing, read-state, and
// removal of notifications students have sent in.
type InboxService struct {
	inboundRepo repository.InboundNotificationRepositoryInterface
	cache       *cache.NotificationCache
	log         zerolog.Logger
}

func NewInboxService(
	inboundRepo repository.InboundNotificationRepositoryInterface,
	cache *cache.NotificationCache,
	log zerolog.Logger,
) *InboxService {
	return &InboxService{inboundRepo: inboundRepo, cache: cache, log: log}
}

func (s *InboxService) ListInbound(adminID uint) ([]models.InboundNotification, error) {
	const op = "inbox.list"

	if cached, ok := s.cache.GetInboundList(adminID); ok {
		if len(cached) == 0 {
			return nil, apperr.NotFound(op, "No notifications found")
		}
		return cached, nil
	}

	ns, err := s.inboundRepo.ListByAdmin(adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Msg("inbox listing failed")
		return nil, apperr.Store(op, err)
	}
	if len(ns) == 0 {
		return nil, apperr.NotFound(op, "No notifications found")
	}

	_ = s.cache.SetInboundList(adminID, ns)

	return ns, nil
}

// UnreadCount reports how many inbound notifications are still unread.
func (s *InboxService) UnreadCount(adminID uint) (int64, error) {
	const op = "inbox.unread_count"

	if count, ok := s.cache.GetUnreadCount(adminID); ok {
		return count, nil
	}

	count, err := s.inboundRepo.CountUnread(adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Msg("unread count failed")
		return 0, apperr.Store(op, err)
	}

	_ = s.cache.SetUnreadCount(adminID, count)

	return count, nil
}

// MarkRead flips one notification to read. The originating student id comes
// from the row itself and is re-checked on the update predicate.
func (s *InboxService) MarkRead(adminID, notificationID uint) error {
	const op = "inbox.mark_read"

	n, err := s.inboundRepo.FindOwned(notificationID, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(op, "No notification with that id found")
		}
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Uint("notification_id", notificationID).Msg("lookup failed")
		return apperr.Store(op, err)
	}

	affected, err := s.inboundRepo.MarkRead(notificationID, n.StudentID, adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Uint("notification_id", notificationID).Msg("mark read failed")
		return apperr.Store(op, err)
	}
	if affected == 0 {
		return apperr.NotFound(op, "No notification with that id found")
	}

	_ = s.cache.InvalidateInbound(adminID)

	return nil
}

// MarkAllRead flips every unread notification for the admin. A second call
// finds nothing unread and fails not found, which makes the operation
// idempotent in effect.
func (s *InboxService) MarkAllRead(adminID uint) error {
	const op = "inbox.mark_all_read"

	affected, err := s.inboundRepo.MarkAllRead(adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Msg("mark all read failed")
		return apperr.Store(op, err)
	}
	if affected == 0 {
		return apperr.NotFound(op, "No unread notifications found")
	}

	_ = s.cache.InvalidateInbound(adminID)

	return nil
}

// DeleteOne removes one inbound notification matched by (id, student, admin).
func (s *InboxService) DeleteOne(adminID, notificationID, studentID uint) error {
	const op = "inbox.delete"

	affected, err := s.inboundRepo.Delete(notificationID, studentID, adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Uint("notification_id", notificationID).Msg("delete failed")
		return apperr.Store(op, err)
	}
	if affected == 0 {
		return apperr.NotFound(op, "No notification with that id found")
	}

	_ = s.cache.InvalidateInbound(adminID)

	return nil
}

// DeleteAll clears the admin's mailbox and reports how many rows went.
func (s *InboxService) DeleteAll(adminID uint) (int64, error) {
	const op = "inbox.delete_all"

	deleted, err := s.inboundRepo.DeleteAllByAdmin(adminID)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("admin_id", adminID).Msg("delete all failed")
		return 0, apperr.Store(op, err)
	}
	if deleted == 0 {
		return 0, apperr.NotFound(op, "No notifications found")
	}

	_ = s.cache.InvalidateInbound(adminID)

	return deleted, nil
}
