package repository

import (
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"gorm.io/gorm"
)

type HostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(db *gorm.DB) *HostelRepository {
	return &HostelRepository{db: db}
}

func (r *HostelRepository) Create(hostel *models.Hostel) error {
	return r.db.Create(hostel).Error
}

func (r *HostelRepository) FindByID(id uint) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := r.db.Preload("Rooms").First(&hostel, id).Error; err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (r *HostelRepository) List() ([]models.Hostel, error) {
	var hostels []models.Hostel
	err := r.db.Preload("Rooms").Order("name").Find(&hostels).Error
	return hostels, err
}

func (r *HostelRepository) AddRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *HostelRepository) UpdateImageKey(id uint, key string) (int64, error) {
	res := r.db.Model(&models.Hostel{}).Where("id = ?", id).Update("image_key", key)
	return res.RowsAffected, res.Error
}
