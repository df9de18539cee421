package models

import (
	"time"

	"gorm.io/gorm"
)

// RefreshToken stores the hash of a long-lived refresh token for either an
// admin or a student account.
type RefreshToken struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AccountID uint `gorm:"index;not null" json:"account_id"`
	Role      Role `gorm:"type:varchar(10);not null" json:"role"`

	TokenHash string     `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time  `gorm:"index;not null" json:"expires_at"`
	RevokedAt *time.Time `gorm:"index" json:"-"`
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
