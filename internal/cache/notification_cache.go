package cache

import (
	"fmt"
	"time"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// TTL constants for different cache types
const (
	SentListTTL    = 5 * time.Minute
	InboundListTTL = 5 * time.Minute
	UnreadCountTTL = 1 * time.Minute
)

// NotificationCache caches per-admin notification listings. All methods are
// nil-safe so the app can run without Redis.
type NotificationCache struct {
	redis *RedisCache
}

func NewNotificationCache(redis *RedisCache) *NotificationCache {
	return &NotificationCache{redis: redis}
}

func sentKey(adminID uint) string {
	return fmt.Sprintf("sent:%d", adminID)
}

func inboundKey(adminID uint) string {
	return fmt.Sprintf("inbound:%d", adminID)
}

func unreadKey(adminID uint) string {
	return fmt.Sprintf("unread:%d", adminID)
}

// GetSentList retrieves the cached sent-notification list for an admin
func (nc *NotificationCache) GetSentList(adminID uint) ([]models.OutboundNotification, bool) {
	if nc == nil || nc.redis == nil {
		return nil, false
	}
	data, err := nc.redis.Get(sentKey(adminID))
	if err != nil || data == nil {
		return nil, false
	}

	var ns []models.OutboundNotification
	if err := msgpack.Unmarshal(data, &ns); err != nil {
		return nil, false
	}
	return ns, true
}

// SetSentList caches the sent-notification list for an admin
func (nc *NotificationCache) SetSentList(adminID uint, ns []models.OutboundNotification) error {
	if nc == nil || nc.redis == nil {
		return nil
	}
	data, err := msgpack.Marshal(ns)
	if err != nil {
		return err
	}
	return nc.redis.Set(sentKey(adminID), data, SentListTTL)
}

// GetInboundList retrieves the cached inbound mailbox for an admin
func (nc *NotificationCache) GetInboundList(adminID uint) ([]models.InboundNotification, bool) {
	if nc == nil || nc.redis == nil {
		return nil, false
	}
	data, err := nc.redis.Get(inboundKey(adminID))
	if err != nil || data == nil {
		return nil, false
	}

	var ns []models.InboundNotification
	if err := msgpack.Unmarshal(data, &ns); err != nil {
		return nil, false
	}
	return ns, true
}

// SetInboundList caches the inbound mailbox for an admin
func (nc *NotificationCache) SetInboundList(adminID uint, ns []models.InboundNotification) error {
	if nc == nil || nc.redis == nil {
		return nil
	}
	data, err := msgpack.Marshal(ns)
	if err != nil {
		return err
	}
	return nc.redis.Set(inboundKey(adminID), data, InboundListTTL)
}

// GetUnreadCount retrieves the cached unread count for an admin
func (nc *NotificationCache) GetUnreadCount(adminID uint) (int64, bool) {
	if nc == nil || nc.redis == nil {
		return 0, false
	}
	data, err := nc.redis.Get(unreadKey(adminID))
	if err != nil || data == nil {
		return 0, false
	}

	var count int64
	if err := msgpack.Unmarshal(data, &count); err != nil {
		return 0, false
	}
	return count, true
}

// SetUnreadCount caches the unread count for an admin
func (nc *NotificationCache) SetUnreadCount(adminID uint, count int64) error {
	if nc == nil || nc.redis == nil {
		return nil
	}
	data, err := msgpack.Marshal(count)
	if err != nil {
		return err
	}
	return nc.redis.Set(unreadKey(adminID), data, UnreadCountTTL)
}

// InvalidateSent drops the sent list after any outbound mutation
func (nc *NotificationCache) InvalidateSent(adminID uint) error {
	if nc == nil || nc.redis == nil {
		return nil
	}
	return nc.redis.Delete(sentKey(adminID))
}

// InvalidateInbound drops the mailbox and unread count after any inbound mutation
func (nc *NotificationCache) InvalidateInbound(adminID uint) error {
	if nc == nil || nc.redis == nil {
		return nil
	}
	return nc.redis.Delete(inboundKey(adminID), unreadKey(adminID))
}
