package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/apperr"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/repository"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/storage"
)

// HostelService manages hostel inventory and hostel photos. Photos go to
// S3-compatible object storage; the service degrades to metadata-only when
// storage is not configured.
type HostelService struct {
	hostelRepo repository.HostelRepositoryInterface
	store      *storage.S3Storage
	log        zerolog.Logger
}

func NewHostelService(hostelRepo repository.HostelRepositoryInterface, store *storage.S3Storage, log zerolog.Logger) *HostelService {
	return &HostelService{hostelRepo: hostelRepo, store: store, log: log}
}

type CreateHostelInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Gender   string `json:"gender"`
}

func (s *HostelService) Create(input CreateHostelInput) (*models.Hostel, error) {
	const op = "hostels.create"

	hostel := &models.Hostel{
		Name:     input.Name,
		Location: input.Location,
		Gender:   input.Gender,
	}
	if err := s.hostelRepo.Create(hostel); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("hostel insert failed")
		return nil, apperr.Store(op, err)
	}
	return hostel, nil
}

func (s *HostelService) Get(id uint) (*models.Hostel, error) {
	const op = "hostels.get"

	hostel, err := s.hostelRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(op, "No hostel with that id found")
		}
		s.log.Error().Err(err).Str("op", op).Uint("hostel_id", id).Msg("lookup failed")
		return nil, apperr.Store(op, err)
	}
	return hostel, nil
}

func (s *HostelService) List() ([]models.Hostel, error) {
	const op = "hostels.list"

	hostels, err := s.hostelRepo.List()
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("listing failed")
		return nil, apperr.Store(op, err)
	}
	if len(hostels) == 0 {
		return nil, apperr.NotFound(op, "No hostels found")
	}
	return hostels, nil
}

func (s *HostelService) AddRoom(hostelID uint, roomNumber string, capacity int, price float64) (*models.Room, error) {
	const op = "hostels.add_room"

	if _, err := s.Get(hostelID); err != nil {
		return nil, err
	}

	room := &models.Room{
		HostelID:      hostelID,
		RoomNumber:    roomNumber,
		Capacity:      capacity,
		PricePerMonth: price,
	}
	if err := s.hostelRepo.AddRoom(room); err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("hostel_id", hostelID).Msg("room insert failed")
		return nil, apperr.Store(op, err)
	}
	return room, nil
}

// UploadImage stores a hostel photo and records its object key.
func (s *HostelService) UploadImage(ctx context.Context, hostelID uint, body io.Reader, size int64, contentType string) (string, error) {
	const op = "hostels.upload_image"

	if s.store == nil {
		return "", apperr.Validation(op, "Image storage is not configured")
	}

	if _, err := s.Get(hostelID); err != nil {
		return "", err
	}

	key, err := storage.SafeJoinObjectPath("hostels", fmt.Sprintf("%d/cover", hostelID))
	if err != nil {
		return "", apperr.Validation(op, "Invalid image key")
	}

	if _, err := s.store.PutObject(ctx, key, body, size, contentType); err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("hostel_id", hostelID).Msg("image upload failed")
		return "", apperr.Store(op, err)
	}

	if affected, err := s.hostelRepo.UpdateImageKey(hostelID, key); err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("hostel_id", hostelID).Msg("image key update failed")
		return "", apperr.Store(op, err)
	} else if affected == 0 {
		return "", apperr.NotFound(op, "No hostel with that id found")
	}

	return key, nil
}
