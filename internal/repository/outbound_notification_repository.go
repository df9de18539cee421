package repository

import (
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"gorm.io/gorm"
)

type OutboundNotificationRepository struct {
	db *gorm.DB
}

func NewOutboundNotificationRepository(db *gorm.DB) *OutboundNotificationRepository {
	return &OutboundNotificationRepository{db: db}
}

func (r *OutboundNotificationRepository) Create(n *models.OutboundNotification) error {
	return r.db.Create(n).Error
}

// CreateBatch writes a whole broadcast group in one transaction so a reader
// never observes a partial group.
func (r *OutboundNotificationRepository) CreateBatch(ns []models.OutboundNotification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ns).Error
	})
}

func (r *OutboundNotificationRepository) FindOwned(id, adminID uint) (*models.OutboundNotification, error) {
	var n models.OutboundNotification
	err := r.db.Where("id = ? AND admin_id = ?", id, adminID).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *OutboundNotificationRepository) UpdateMessage(id, studentID, adminID uint, message string) (int64, error) {
	res := r.db.Model(&models.OutboundNotification{}).
		Where("id = ? AND student_id = ? AND admin_id = ?", id, studentID, adminID).
		Update("message", message)
	return res.RowsAffected, res.Error
}

func (r *OutboundNotificationRepository) UpdateMessageByBroadcast(adminID uint, broadcastID string, message string) (int64, error) {
	res := r.db.Model(&models.OutboundNotification{}).
		Where("admin_id = ? AND is_broadcast = ? AND broadcast_id = ?", adminID, true, broadcastID).
		Update("message", message)
	return res.RowsAffected, res.Error
}

func (r *OutboundNotificationRepository) Delete(id, studentID, adminID uint) (int64, error) {
	res := r.db.Where("id = ? AND student_id = ? AND admin_id = ?", id, studentID, adminID).
		Delete(&models.OutboundNotification{})
	return res.RowsAffected, res.Error
}

func (r *OutboundNotificationRepository) DeleteAllByAdmin(adminID uint) (int64, error) {
	res := r.db.Where("admin_id = ?", adminID).Delete(&models.OutboundNotification{})
	return res.RowsAffected, res.Error
}

func (r *OutboundNotificationRepository) CountByAdmin(adminID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.OutboundNotification{}).Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}

func (r *OutboundNotificationRepository) ListByAdmin(adminID uint) ([]models.OutboundNotification, error) {
	var ns []models.OutboundNotification
	err := r.db.Where("admin_id = ?", adminID).Order("created_at DESC").Find(&ns).Error
	return ns, err
}

func (r *OutboundNotificationRepository) ListByAdminAndStudent(adminID, studentID uint) ([]models.OutboundNotification, error) {
	var ns []models.OutboundNotification
	err := r.db.Where("admin_id = ? AND student_id = ?", adminID, studentID).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}
