package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
)

// MockOutboundRepository is an in-memory OutboundNotificationRepositoryInterface.
// Setting failWith makes every operation return that error, for exercising
// store-failure paths.
type MockOutboundRepository struct {
	notifications map[uint]*models.OutboundNotification
	nextID        uint
	failWith      error
}

func NewMockOutboundRepository() *MockOutboundRepository {
	return &MockOutboundRepository{
		notifications: make(map[uint]*models.OutboundNotification),
		nextID:        1,
	}
}

func (m *MockOutboundRepository) Create(n *models.OutboundNotification) error {
	if m.failWith != nil {
		return m.failWith
	}
	if n.ID == 0 {
		n.ID = m.nextID
		m.nextID++
	}
	m.notifications[n.ID] = n
	return nil
}

func (m *MockOutboundRepository) CreateBatch(ns []models.OutboundNotification) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i := range ns {
		n := ns[i]
		if n.ID == 0 {
			n.ID = m.nextID
			m.nextID++
		}
		m.notifications[n.ID] = &n
	}
	return nil
}

func (m *MockOutboundRepository) FindOwned(id, adminID uint) (*models.OutboundNotification, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if n, ok := m.notifications[id]; ok && n.AdminID == adminID {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockOutboundRepository) UpdateMessage(id, studentID, adminID uint, message string) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if n, ok := m.notifications[id]; ok && n.StudentID == studentID && n.AdminID == adminID {
		n.Message = message
		return 1, nil
	}
	return 0, nil
}

func (m *MockOutboundRepository) UpdateMessageByBroadcast(adminID uint, broadcastID string, message string) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var affected int64
	for _, n := range m.notifications {
		if n.AdminID == adminID && n.IsBroadcast && n.BroadcastID != nil && *n.BroadcastID == broadcastID {
			n.Message = message
			affected++
		}
	}
	return affected, nil
}

func (m *MockOutboundRepository) Delete(id, studentID, adminID uint) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if n, ok := m.notifications[id]; ok && n.StudentID == studentID && n.AdminID == adminID {
		delete(m.notifications, id)
		return 1, nil
	}
	return 0, nil
}

func (m *MockOutboundRepository) DeleteAllByAdmin(adminID uint) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var deleted int64
	for id, n := range m.notifications {
		if n.AdminID == adminID {
			delete(m.notifications, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MockOutboundRepository) CountByAdmin(adminID uint) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var count int64
	for _, n := range m.notifications {
		if n.AdminID == adminID {
			count++
		}
	}
	return count, nil
}

func (m *MockOutboundRepository) ListByAdmin(adminID uint) ([]models.OutboundNotification, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.OutboundNotification
	for _, n := range m.notifications {
		if n.AdminID == adminID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *MockOutboundRepository) ListByAdminAndStudent(adminID, studentID uint) ([]models.OutboundNotification, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.OutboundNotification
	for _, n := range m.notifications {
		if n.AdminID == adminID && n.StudentID == studentID {
			out = append(out, *n)
		}
	}
	return out, nil
}

// MockInboundRepository is an in-memory InboundNotificationRepositoryInterface.
type MockInboundRepository struct {
	notifications map[uint]*models.InboundNotification
	nextID        uint
	failWith      error
}

func NewMockInboundRepository() *MockInboundRepository {
	return &MockInboundRepository{
		notifications: make(map[uint]*models.InboundNotification),
		nextID:        1,
	}
}

func (m *MockInboundRepository) Create(n *models.InboundNotification) error {
	if m.failWith != nil {
		return m.failWith
	}
	if n.ID == 0 {
		n.ID = m.nextID
		m.nextID++
	}
	if n.Status == "" {
		n.Status = models.StatusUnread
	}
	m.notifications[n.ID] = n
	return nil
}

func (m *MockInboundRepository) FindOwned(id, adminID uint) (*models.InboundNotification, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if n, ok := m.notifications[id]; ok && n.AdminID == adminID {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockInboundRepository) ListByAdmin(adminID uint) ([]models.InboundNotification, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.InboundNotification
	for _, n := range m.notifications {
		if n.AdminID == adminID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *MockInboundRepository) CountUnread(adminID uint) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var count int64
	for _, n := range m.notifications {
		if n.AdminID == adminID && n.Status == models.StatusUnread {
			count++
		}
	}
	return count, nil
}

func (m *MockInboundRepository) MarkRead(id, studentID, adminID uint) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if n, ok := m.notifications[id]; ok && n.StudentID == studentID && n.AdminID == adminID {
		n.Status = models.StatusRead
		return 1, nil
	}
	return 0, nil
}

func (m *MockInboundRepository) MarkAllRead(adminID uint) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var affected int64
	for _, n := range m.notifications {
		if n.AdminID == adminID && n.Status == models.StatusUnread {
			n.Status = models.StatusRead
			affected++
		}
	}
	return affected, nil
}

func (m *MockInboundRepository) Delete(id, studentID, adminID uint) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if n, ok := m.notifications[id]; ok && n.StudentID == studentID && n.AdminID == adminID {
		delete(m.notifications, id)
		return 1, nil
	}
	return 0, nil
}

func (m *MockInboundRepository) DeleteAllByAdmin(adminID uint) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var deleted int64
	for id, n := range m.notifications {
		if n.AdminID == adminID {
			delete(m.notifications, id)
			deleted++
		}
	}
	return deleted, nil
}

// MockStudentRepository is an in-memory StudentRepositoryInterface.
type MockStudentRepository struct {
	students map[uint]*models.Student
	nextID   uint
	failWith error
}

func NewMockStudentRepository() *MockStudentRepository {
	return &MockStudentRepository{
		students: make(map[uint]*models.Student),
		nextID:   1,
	}
}

func (m *MockStudentRepository) Create(student *models.Student) error {
	if m.failWith != nil {
		return m.failWith
	}
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	m.students[student.ID] = student
	return nil
}

func (m *MockStudentRepository) FindByID(id uint) (*models.Student, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockStudentRepository) FindByEmail(email string) (*models.Student, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockStudentRepository) Exists(id uint) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	_, ok := m.students[id]
	return ok, nil
}

func (m *MockStudentRepository) ListIDs() ([]uint, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var ids []uint
	for id := range m.students {
		ids = append(ids, id)
	}
	return ids, nil
}

// MockAdminRepository is an in-memory AdminRepositoryInterface.
type MockAdminRepository struct {
	admins   map[uint]*models.Admin
	nextID   uint
	failWith error
}

func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{
		admins: make(map[uint]*models.Admin),
		nextID: 1,
	}
}

func (m *MockAdminRepository) Create(admin *models.Admin) error {
	if m.failWith != nil {
		return m.failWith
	}
	if admin.ID == 0 {
		admin.ID = m.nextID
		m.nextID++
	}
	m.admins[admin.ID] = admin
	return nil
}

func (m *MockAdminRepository) FindByID(id uint) (*models.Admin, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if a, ok := m.admins[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAdminRepository) FindByEmail(email string) (*models.Admin, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAdminRepository) FindByUsername(username string) (*models.Admin, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, a := range m.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// MockRefreshTokenRepository is an in-memory RefreshTokenRepositoryInterface.
type MockRefreshTokenRepository struct {
	tokens map[string]*models.RefreshToken
	nextID uint
}

func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{
		tokens: make(map[string]*models.RefreshToken),
		nextID: 1,
	}
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	if token.ID == 0 {
		token.ID = m.nextID
		m.nextID++
	}
	m.tokens[token.TokenHash] = token
	return nil
}

func (m *MockRefreshTokenRepository) FindValidByHash(tokenHash string) (*models.RefreshToken, error) {
	if t, ok := m.tokens[tokenHash]; ok && !t.IsRevoked() {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockRefreshTokenRepository) RevokeByHash(tokenHash string) error {
	if t, ok := m.tokens[tokenHash]; ok {
		now := time.Now()
		t.RevokedAt = &now
	}
	return nil
}
