package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a hostel administrator: the only principal allowed to operate the
// notification routes.
type Admin struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

type AdminResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     RoleAdmin,
	}
}

// Student is a hostel resident and the recipient of outbound notifications.
type Student struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName       string `gorm:"not null" json:"full_name"`
	StudentNumber  string `gorm:"uniqueIndex;not null" json:"student_number"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	ProgramOfStudy string `json:"program_of_study"`
	YearOfStudy    int    `json:"year_of_study"`
	PhoneNumber    string `json:"phone_number"`
}

type StudentResponse struct {
	ID             uint   `json:"id"`
	FullName       string `json:"full_name"`
	StudentNumber  string `json:"student_number"`
	Email          string `json:"email"`
	ProgramOfStudy string `json:"program_of_study"`
	YearOfStudy    int    `json:"year_of_study"`
	Role           Role   `json:"role"`
}

func (s *Student) ToResponse() StudentResponse {
	return StudentResponse{
		ID:             s.ID,
		FullName:       s.FullName,
		StudentNumber:  s.StudentNumber,
		Email:          s.Email,
		ProgramOfStudy: s.ProgramOfStudy,
		YearOfStudy:    s.YearOfStudy,
		Role:           RoleStudent,
	}
}
