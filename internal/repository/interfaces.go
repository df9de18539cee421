package repository

import (
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
)

// OutboundNotificationRepositoryInterface is the store contract for
// notifications sent by admins. Mutations return the number of rows affected
// so callers can distinguish a miss from a hit.
type OutboundNotificationRepositoryInterface interface {
	Create(n *models.OutboundNotification) error
	CreateBatch(ns []models.OutboundNotification) error
	FindOwned(id, adminID uint) (*models.OutboundNotification, error)
	UpdateMessage(id, studentID, adminID uint, message string) (int64, error)
	UpdateMessageByBroadcast(adminID uint, broadcastID string, message string) (int64, error)
	Delete(id, studentID, adminID uint) (int64, error)
	DeleteAllByAdmin(adminID uint) (int64, error)
	CountByAdmin(adminID uint) (int64, error)
	ListByAdmin(adminID uint) ([]models.OutboundNotification, error)
	ListByAdminAndStudent(adminID, studentID uint) ([]models.OutboundNotification, error)
}

// InboundNotificationRepositoryInterface is the store contract for the
// admin's inbound mailbox.
type InboundNotificationRepositoryInterface interface {
	Create(n *models.InboundNotification) error
	FindOwned(id, adminID uint) (*models.InboundNotification, error)
	ListByAdmin(adminID uint) ([]models.InboundNotification, error)
	CountUnread(adminID uint) (int64, error)
	MarkRead(id, studentID, adminID uint) (int64, error)
	MarkAllRead(adminID uint) (int64, error)
	Delete(id, studentID, adminID uint) (int64, error)
	DeleteAllByAdmin(adminID uint) (int64, error)
}

// StudentRepositoryInterface defines the contract for student lookups
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	FindByID(id uint) (*models.Student, error)
	FindByEmail(email string) (*models.Student, error)
	Exists(id uint) (bool, error)
	ListIDs() ([]uint, error)
}

// AdminRepositoryInterface defines the contract for admin lookups
type AdminRepositoryInterface interface {
	Create(admin *models.Admin) error
	FindByID(id uint) (*models.Admin, error)
	FindByEmail(email string) (*models.Admin, error)
	FindByUsername(username string) (*models.Admin, error)
}

// RefreshTokenRepositoryInterface defines the contract for refresh token operations
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	FindValidByHash(tokenHash string) (*models.RefreshToken, error)
	RevokeByHash(tokenHash string) error
}

// HostelRepositoryInterface defines the contract for hostel inventory
type HostelRepositoryInterface interface {
	Create(hostel *models.Hostel) error
	FindByID(id uint) (*models.Hostel, error)
	List() ([]models.Hostel, error)
	AddRoom(room *models.Room) error
	UpdateImageKey(id uint, key string) (int64, error)
}
