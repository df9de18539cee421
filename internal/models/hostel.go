package models

import (
	"time"

	"gorm.io/gorm"
)

// Hostel is a managed accommodation block.
type Hostel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Location string `gorm:"not null" json:"location"`
	Gender   string `json:"gender"`
	// ImageKey is the object-storage key of the hostel photo, empty when
	// no photo has been uploaded.
	ImageKey string `json:"image_key"`

	Rooms []Room `gorm:"foreignKey:HostelID" json:"rooms,omitempty"`
}

type Room struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HostelID      uint    `gorm:"not null;index" json:"hostel_id"`
	RoomNumber    string  `gorm:"not null" json:"room_number"`
	Capacity      int     `gorm:"not null" json:"capacity"`
	PricePerMonth float64 `json:"price_per_month"`
}

type HostelResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Gender   string `json:"gender"`
	ImageKey string `json:"image_key"`
	Rooms    []Room `json:"rooms,omitempty"`
}

func (h *Hostel) ToResponse() HostelResponse {
	return HostelResponse{
		ID:       h.ID,
		Name:     h.Name,
		Location: h.Location,
		Gender:   h.Gender,
		ImageKey: h.ImageKey,
		Rooms:    h.Rooms,
	}
}
