package models

import (
	"time"
)

type NotificationStatus string

const (
	StatusUnread NotificationStatus = "unread"
	StatusRead   NotificationStatus = "read"
)

// OutboundNotification is a message an admin sent to a student. Rows created
// by one broadcast share a BroadcastID; direct sends carry none.
type OutboundNotification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentID uint    `gorm:"not null;index" json:"student_id"`
	Student   Student `gorm:"foreignKey:StudentID" json:"-"`
	AdminID   uint    `gorm:"not null;index" json:"admin_id"`
	Admin     Admin   `gorm:"foreignKey:AdminID" json:"-"`

	Message     string  `gorm:"type:varchar(255);not null" json:"message"`
	IsBroadcast bool    `gorm:"not null;default:false" json:"is_broadcast"`
	BroadcastID *string `gorm:"type:varchar(36);index" json:"broadcast_id"`
}

func (OutboundNotification) TableName() string {
	return "notifications"
}

// InboundNotification is a message a student sent to an admin. It lives in a
// separate table with its own lifecycle; read-state belongs to the admin and
// only ever moves unread -> read.
type InboundNotification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentID uint    `gorm:"not null;index" json:"student_id"`
	Student   Student `gorm:"foreignKey:StudentID" json:"-"`
	AdminID   uint    `gorm:"not null;index" json:"admin_id"`
	Admin     Admin   `gorm:"foreignKey:AdminID" json:"-"`

	Message string             `gorm:"type:varchar(255);not null" json:"message"`
	Status  NotificationStatus `gorm:"type:varchar(10);not null;default:'unread';index" json:"status"`
}

func (InboundNotification) TableName() string {
	return "admin_notifications"
}

type OutboundNotificationResponse struct {
	ID          uint      `json:"id"`
	StudentID   uint      `json:"student_id"`
	AdminID     uint      `json:"admin_id"`
	Message     string    `json:"message"`
	IsBroadcast bool      `json:"is_broadcast"`
	BroadcastID *string   `json:"broadcast_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (n *OutboundNotification) ToResponse() OutboundNotificationResponse {
	return OutboundNotificationResponse{
		ID:          n.ID,
		StudentID:   n.StudentID,
		AdminID:     n.AdminID,
		Message:     n.Message,
		IsBroadcast: n.IsBroadcast,
		BroadcastID: n.BroadcastID,
		CreatedAt:   n.CreatedAt,
	}
}

type InboundNotificationResponse struct {
	ID        uint               `json:"id"`
	StudentID uint               `json:"student_id"`
	AdminID   uint               `json:"admin_id"`
	Message   string             `json:"message"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

func (n *InboundNotification) ToResponse() InboundNotificationResponse {
	return InboundNotificationResponse{
		ID:        n.ID,
		StudentID: n.StudentID,
		AdminID:   n.AdminID,
		Message:   n.Message,
		Status:    n.Status,
		CreatedAt: n.CreatedAt,
	}
}
