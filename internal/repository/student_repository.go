package repository

import (
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"gorm.io/gorm"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

func (r *StudentRepository) FindByID(id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, id).Error
	return &student, err
}

func (r *StudentRepository) FindByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("email = ?", email).First(&student).Error
	return &student, err
}

func (r *StudentRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Student{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListIDs returns every student id; broadcast fan-out resolves its recipient
// set from this.
func (r *StudentRepository) ListIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Student{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}
