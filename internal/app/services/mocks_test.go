package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type mockUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (m *mockUserRepo) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	} else if user.ID >= m.nextID {
		m.nextID = user.ID + 1
	}
	m.users[user.ID] = user
	return user
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}
	m.add(user)
	return user.ID, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := m.GetByUsername(ctx, username)
	if err != nil || !user.IsActive {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) FindActiveUsernames(_ context.Context, name, phoneNumber string) ([]string, error) {
	var usernames []string
	for _, u := range m.users {
		if u.IsActive && u.Name == name && u.PhoneNumber == phoneNumber {
			usernames = append(usernames, u.Username)
		}
	}
	return usernames, nil
}

func (m *mockUserRepo) FindActiveForRecovery(_ context.Context, username, name, phoneNumber string) (*models.User, error) {
	for _, u := range m.users {
		if u.IsActive && u.Username == username && u.Name == name && u.PhoneNumber == phoneNumber {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	user, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = passwordHash
	return nil
}

func (m *mockUserRepo) UpdateAddress(_ context.Context, userID int64, homeAddress, officeAddress string) error {
	user, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.HomeAddress = &homeAddress
	user.OfficeAddress = &officeAddress
	return nil
}

func (m *mockUserRepo) SetActive(_ context.Context, userID int64, isActive bool) error {
	user, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.IsActive = isActive
	return nil
}

func (m *mockUserRepo) SetRole(_ context.Context, userID int64, role models.RoleType) error {
	user, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (m *mockUserRepo) List(_ context.Context, _ uint64, _ int) ([]*models.User, error) {
	var users []*models.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type storedToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type mockTokenRepo struct {
	tokens map[string]*storedToken
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: map[string]*storedToken{}}
}

func (m *mockTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	m.tokens[token] = &storedToken{userID: userID, expiry: expiryDate}
	return nil
}

func (m *mockTokenRepo) GetTokenByValue(_ context.Context, token string) (int64, time.Time, error) {
	stored, ok := m.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if stored.revoked {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	if stored.expiry.Before(time.Now()) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}
	return stored.userID, stored.expiry, nil
}

func (m *mockTokenRepo) RevokeToken(_ context.Context, token string) error {
	stored, ok := m.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.revoked = true
	return nil
}

func (m *mockTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for _, stored := range m.tokens {
		if stored.userID == userID {
			stored.revoked = true
		}
	}
	return nil
}

func (m *mockTokenRepo) CleanupExpiredTokens(_ context.Context) (int64, error) {
	var removed int64
	for token, stored := range m.tokens {
		if stored.expiry.Before(time.Now()) {
			delete(m.tokens, token)
			removed++
		}
	}
	return removed, nil
}

func (m *mockTokenRepo) activeTokensFor(userID int64) int {
	count := 0
	for _, stored := range m.tokens {
		if stored.userID == userID && !stored.revoked {
			count++
		}
	}
	return count
}

type storedResetToken struct {
	userID int64
	expiry time.Time
	used   bool
}

type mockResetRepo struct {
	tokens map[string]*storedResetToken
}

func newMockResetRepo() *mockResetRepo {
	return &mockResetRepo{tokens: map[string]*storedResetToken{}}
}

func (m *mockResetRepo) CreateToken(_ context.Context, userID int64, token string, expiryDate time.Time) error {
	m.tokens[token] = &storedResetToken{userID: userID, expiry: expiryDate}
	return nil
}

func (m *mockResetRepo) GetTokenInfo(_ context.Context, token string) (int64, time.Time, bool, error) {
	stored, ok := m.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	return stored.userID, stored.expiry, stored.used, nil
}

func (m *mockResetRepo) MarkTokenAsUsed(_ context.Context, token string) error {
	stored, ok := m.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.used = true
	return nil
}

func (m *mockResetRepo) DeleteTokensByUserID(_ context.Context, userID int64) error {
	for token, stored := range m.tokens {
		if stored.userID == userID {
			delete(m.tokens, token)
		}
	}
	return nil
}

func (m *mockResetRepo) DeleteExpiredTokens(_ context.Context) error {
	for token, stored := range m.tokens {
		if stored.expiry.Before(time.Now()) {
			delete(m.tokens, token)
		}
	}
	return nil
}

type mockSchoolRepo struct {
	schools map[int64]*models.School
	nextID  int64
}

func newMockSchoolRepo() *mockSchoolRepo {
	return &mockSchoolRepo{schools: map[int64]*models.School{}, nextID: 1}
}

func (m *mockSchoolRepo) add(school *models.School) *models.School {
	if school.ID == 0 {
		school.ID = m.nextID
		m.nextID++
	} else if school.ID >= m.nextID {
		m.nextID = school.ID + 1
	}
	m.schools[school.ID] = school
	return school
}

func (m *mockSchoolRepo) Create(_ context.Context, school *models.School) (int64, error) {
	for _, s := range m.schools {
		if s.Name == school.Name {
			return 0, apperrors.ErrSchoolAlreadyExists
		}
	}
	m.add(school)
	return school.ID, nil
}

func (m *mockSchoolRepo) GetByID(_ context.Context, id int64) (*models.School, error) {
	school, ok := m.schools[id]
	if !ok {
		return nil, apperrors.ErrSchoolNotFound
	}
	return school, nil
}

func (m *mockSchoolRepo) GetAll(_ context.Context) ([]*models.School, error) {
	var schools []*models.School
	for _, s := range m.schools {
		schools = append(schools, s)
	}
	return schools, nil
}

func (m *mockSchoolRepo) Update(_ context.Context, school *models.School) error {
	if _, ok := m.schools[school.ID]; !ok {
		return apperrors.ErrSchoolNotFound
	}
	m.schools[school.ID] = school
	return nil
}

func (m *mockSchoolRepo) UpdateAddress(_ context.Context, id int64, address string) error {
	school, ok := m.schools[id]
	if !ok {
		return apperrors.ErrSchoolNotFound
	}
	school.Address = address
	return nil
}

func (m *mockSchoolRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.schools[id]; !ok {
		return apperrors.ErrSchoolNotFound
	}
	delete(m.schools, id)
	return nil
}

type mockScheduleRepo struct {
	schedules map[int64]*models.Schedule
	nextID    int64
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: map[int64]*models.Schedule{}, nextID: 1}
}

func (m *mockScheduleRepo) add(schedule *models.Schedule) *models.Schedule {
	if schedule.ID == 0 {
		schedule.ID = m.nextID
		m.nextID++
	} else if schedule.ID >= m.nextID {
		m.nextID = schedule.ID + 1
	}
	m.schedules[schedule.ID] = schedule
	return schedule
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *models.Schedule) (int64, error) {
	m.add(schedule)
	return schedule.ID, nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id int64) (*models.Schedule, error) {
	schedule, ok := m.schedules[id]
	if !ok {
		return nil, apperrors.ErrScheduleNotFound
	}
	return schedule, nil
}

func (m *mockScheduleRepo) Find(_ context.Context, filter *dto.ScheduleFilter) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	for _, s := range m.schedules {
		if filter != nil {
			if filter.UserID != nil && s.UserID != *filter.UserID {
				continue
			}
			if filter.SchoolID != nil && s.SchoolID != *filter.SchoolID {
				continue
			}
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *models.Schedule) error {
	existing, ok := m.schedules[schedule.ID]
	if !ok {
		return apperrors.ErrScheduleNotFound
	}
	schedule.UserID = existing.UserID
	m.schedules[schedule.ID] = schedule
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.schedules[id]; !ok {
		return apperrors.ErrScheduleNotFound
	}
	delete(m.schedules, id)
	return nil
}

type mockTravelTimeRepo struct {
	rows   map[int64]*models.TravelTime
	nextID int64
}

func newMockTravelTimeRepo() *mockTravelTimeRepo {
	return &mockTravelTimeRepo{rows: map[int64]*models.TravelTime{}, nextID: 1}
}

func (m *mockTravelTimeRepo) Upsert(_ context.Context, travelTime *models.TravelTime) (int64, error) {
	existing, ok := m.rows[travelTime.ScheduleID]
	if ok {
		travelTime.ID = existing.ID
	} else {
		travelTime.ID = m.nextID
		m.nextID++
	}
	travelTime.UpdatedAt = time.Now()
	m.rows[travelTime.ScheduleID] = travelTime
	return travelTime.ID, nil
}

func (m *mockTravelTimeRepo) GetByScheduleID(_ context.Context, scheduleID int64) (*models.TravelTime, error) {
	row, ok := m.rows[scheduleID]
	if !ok {
		return nil, apperrors.ErrTravelTimeNotFound
	}
	return row, nil
}

type mockMaterialRepo struct {
	materials map[int64]*models.Material
	nextID    int64
	createErr error
}

func newMockMaterialRepo() *mockMaterialRepo {
	return &mockMaterialRepo{materials: map[int64]*models.Material{}, nextID: 1}
}

func (m *mockMaterialRepo) Create(_ context.Context, material *models.Material) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	material.ID = m.nextID
	m.nextID++
	m.materials[material.ID] = material
	return material.ID, nil
}

func (m *mockMaterialRepo) GetByID(_ context.Context, id int64) (*models.Material, error) {
	material, ok := m.materials[id]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	return material, nil
}

func (m *mockMaterialRepo) List(_ context.Context, category string, _ uint64, _ int) ([]*models.Material, error) {
	var materials []*models.Material
	for _, mat := range m.materials {
		if category != "" && mat.Category != category {
			continue
		}
		materials = append(materials, mat)
	}
	return materials, nil
}

func (m *mockMaterialRepo) Count(_ context.Context, category string) (int64, error) {
	materials, _ := m.List(context.Background(), category, 0, 0)
	return int64(len(materials)), nil
}

func (m *mockMaterialRepo) Update(_ context.Context, material *models.Material) error {
	existing, ok := m.materials[material.ID]
	if !ok {
		return apperrors.ErrMaterialNotFound
	}
	material.UploaderID = existing.UploaderID
	m.materials[material.ID] = material
	return nil
}

func (m *mockMaterialRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.materials[id]; !ok {
		return apperrors.ErrMaterialNotFound
	}
	delete(m.materials, id)
	return nil
}

// fakeFileStorage records stored and deleted paths without touching disk
type fakeFileStorage struct {
	saved   int
	deleted []string
}

func (f *fakeFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return f.SaveFileWithPath(fileHeader, "")
}

func (f *fakeFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	f.saved++
	return fmt.Sprintf("uploads/%s/%d-%s", subPath, f.saved, fileHeader.Filename), nil
}

func (f *fakeFileStorage) DeleteFile(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}

func (f *fakeFileStorage) GetFullPath(fileURL string) string {
	return fileURL
}
