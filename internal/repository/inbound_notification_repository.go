package repository

import (
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"gorm.io/gorm"
)

type InboundNotificationRepository struct {
	db *gorm.DB
}

func NewInboundNotificationRepository(db *gorm.DB) *InboundNotificationRepository {
	return &InboundNotificationRepository{db: db}
}

func (r *InboundNotificationRepository) Create(n *models.InboundNotification) error {
	return r.db.Create(n).Error
}

func (r *InboundNotificationRepository) FindOwned(id, adminID uint) (*models.InboundNotification, error) {
	var n models.InboundNotification
	err := r.db.Where("id = ? AND admin_id = ?", id, adminID).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *InboundNotificationRepository) ListByAdmin(adminID uint) ([]models.InboundNotification, error) {
	var ns []models.InboundNotification
	err := r.db.Where("admin_id = ?", adminID).Order("created_at DESC").Find(&ns).Error
	return ns, err
}

func (r *InboundNotificationRepository) CountUnread(adminID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.InboundNotification{}).
		Where("admin_id = ? AND status = ?", adminID, models.StatusUnread).
		Count(&count).Error
	return count, err
}

// MarkRead re-validates the originating student on the update predicate.
func (r *InboundNotificationRepository) MarkRead(id, studentID, adminID uint) (int64, error) {
	res := r.db.Model(&models.InboundNotification{}).
		Where("id = ? AND student_id = ? AND admin_id = ?", id, studentID, adminID).
		Update("status", models.StatusRead)
	return res.RowsAffected, res.Error
}

// MarkAllRead flips every unread row for the admin in a single statement;
// the returned count is zero when there was nothing to do.
func (r *InboundNotificationRepository) MarkAllRead(adminID uint) (int64, error) {
	res := r.db.Model(&models.InboundNotification{}).
		Where("admin_id = ? AND status = ?", adminID, models.StatusUnread).
		Update("status", models.StatusRead)
	return res.RowsAffected, res.Error
}

func (r *InboundNotificationRepository) Delete(id, studentID, adminID uint) (int64, error) {
	res := r.db.Where("id = ? AND student_id = ? AND admin_id = ?", id, studentID, adminID).
		Delete(&models.InboundNotification{})
	return res.RowsAffected, res.Error
}

func (r *InboundNotificationRepository) DeleteAllByAdmin(adminID uint) (int64, error) {
	res := r.db.Where("admin_id = ?", adminID).Delete(&models.InboundNotification{})
	return res.RowsAffected, res.Error
}
