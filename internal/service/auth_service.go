package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/apperr"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/repository"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	adminRepo   repository.AdminRepositoryInterface
	studentRepo repository.StudentRepositoryInterface
	refreshRepo repository.RefreshTokenRepositoryInterface
	log         zerolog.Logger
}

func NewAuthService(
	adminRepo repository.AdminRepositoryInterface,
	studentRepo repository.StudentRepositoryInterface,
	refreshRepo repository.RefreshTokenRepositoryInterface,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{adminRepo: adminRepo, studentRepo: studentRepo, refreshRepo: refreshRepo, log: log}
}

type RegisterInput struct {
	Role     models.Role `json:"role"`
	Email    string      `json:"email"`
	Password string      `json:"password"`

	// Admin fields
	Username string `json:"username"`

	// Student fields
	FullName       string `json:"full_name"`
	StudentNumber  string `json:"student_number"`
	ProgramOfStudy string `json:"program_of_study"`
	YearOfStudy    int    `json:"year_of_study"`
	PhoneNumber    string `json:"phone_number"`
}

type LoginInput struct {
	Role     models.Role `json:"role"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
}

type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	Account      interface{} `json:"account"`
}

// Register creates an account. Each role carries its own required-field
// schema, dispatched exhaustively on the closed role set.
func (s *AuthService) Register(input RegisterInput) (*AuthResponse, error) {
	const op = "auth.register"

	switch input.Role {
	case models.RoleAdmin:
		return s.registerAdmin(op, input)
	case models.RoleStudent:
		return s.registerStudent(op, input)
	default:
		return nil, apperr.Validation(op, "Unknown role")
	}
}

func (s *AuthService) registerAdmin(op string, input RegisterInput) (*AuthResponse, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperr.Validation(op, "Username, email, and password are required")
	}

	if _, err := s.adminRepo.FindByEmail(input.Email); err == nil {
		return nil, apperr.Conflict(op, "Admin already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Store(op, err)
	}

	admin := &models.Admin{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(admin); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("admin insert failed")
		return nil, apperr.Store(op, err)
	}

	return s.issueTokens(op, admin.ID, admin.Email, models.RoleAdmin, admin.ToResponse())
}

func (s *AuthService) registerStudent(op string, input RegisterInput) (*AuthResponse, error) {
	if input.FullName == "" || input.StudentNumber == "" || input.Email == "" || input.Password == "" {
		return nil, apperr.Validation(op, "Full name, student number, email, and password are required")
	}

	if _, err := s.studentRepo.FindByEmail(input.Email); err == nil {
		return nil, apperr.Conflict(op, "Student already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Store(op, err)
	}

	student := &models.Student{
		FullName:       input.FullName,
		StudentNumber:  input.StudentNumber,
		Email:          input.Email,
		PasswordHash:   string(hash),
		ProgramOfStudy: input.ProgramOfStudy,
		YearOfStudy:    input.YearOfStudy,
		PhoneNumber:    input.PhoneNumber,
	}
	if err := s.studentRepo.Create(student); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("student insert failed")
		return nil, apperr.Store(op, err)
	}

	return s.issueTokens(op, student.ID, student.Email, models.RoleStudent, student.ToResponse())
}

func (s *AuthService) Login(input LoginInput) (*AuthResponse, error) {
	const op = "auth.login"

	switch input.Role {
	case models.RoleAdmin:
		admin, err := s.adminRepo.FindByEmail(input.Email)
		if err != nil {
			return nil, apperr.Unauthorized(op, "Invalid credentials")
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
			return nil, apperr.Unauthorized(op, "Invalid credentials")
		}
		return s.issueTokens(op, admin.ID, admin.Email, models.RoleAdmin, admin.ToResponse())
	case models.RoleStudent:
		student, err := s.studentRepo.FindByEmail(input.Email)
		if err != nil {
			return nil, apperr.Unauthorized(op, "Invalid credentials")
		}
		if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(input.Password)) != nil {
			return nil, apperr.Unauthorized(op, "Invalid credentials")
		}
		return s.issueTokens(op, student.ID, student.Email, models.RoleStudent, student.ToResponse())
	default:
		return nil, apperr.Validation(op, "Unknown role")
	}
}

// Refresh rotates a valid refresh token: the old token is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(rawToken string) (*AuthResponse, error) {
	const op = "auth.refresh"

	stored, err := s.refreshRepo.FindValidByHash(hashToken(rawToken))
	if err != nil {
		return nil, apperr.Unauthorized(op, "Invalid or expired refresh token")
	}

	if err := s.refreshRepo.RevokeByHash(stored.TokenHash); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("refresh token revoke failed")
		return nil, apperr.Store(op, err)
	}

	switch stored.Role {
	case models.RoleAdmin:
		admin, err := s.adminRepo.FindByID(stored.AccountID)
		if err != nil {
			return nil, apperr.Unauthorized(op, "Account no longer exists")
		}
		return s.issueTokens(op, admin.ID, admin.Email, models.RoleAdmin, admin.ToResponse())
	case models.RoleStudent:
		student, err := s.studentRepo.FindByID(stored.AccountID)
		if err != nil {
			return nil, apperr.Unauthorized(op, "Account no longer exists")
		}
		return s.issueTokens(op, student.ID, student.Email, models.RoleStudent, student.ToResponse())
	default:
		return nil, apperr.Unauthorized(op, "Invalid refresh token")
	}
}

func (s *AuthService) Logout(rawToken string) error {
	const op = "auth.logout"

	if rawToken == "" {
		return nil
	}
	if err := s.refreshRepo.RevokeByHash(hashToken(rawToken)); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("refresh token revoke failed")
		return apperr.Store(op, err)
	}
	return nil
}

func (s *AuthService) issueTokens(op string, accountID uint, email string, role models.Role, account interface{}) (*AuthResponse, error) {
	access, err := generateAccessToken(accountID, email, role)
	if err != nil {
		return nil, apperr.Store(op, err)
	}

	raw, err := newRefreshToken()
	if err != nil {
		return nil, apperr.Store(op, err)
	}
	record := &models.RefreshToken{
		AccountID: accountID,
		Role:      role,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshRepo.Create(record); err != nil {
		s.log.Error().Err(err).Str("op", op).Uint("account_id", accountID).Msg("refresh token insert failed")
		return nil, apperr.Store(op, err)
	}

	return &AuthResponse{AccessToken: access, RefreshToken: raw, Account: account}, nil
}

func generateAccessToken(accountID uint, email string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": accountID,
		"email":   email,
		"role":    role.String(),
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
