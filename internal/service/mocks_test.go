package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cityeyes/internal/model"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) SearchByName(ctx context.Context, query string, limit int) ([]model.Profile, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileRepository) GrantVerifiedAdmin(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) IncrementScores(ctx context.Context, id uuid.UUID, trustDelta, creditsDelta int64) (int64, error) {
	args := m.Called(ctx, id, trustDelta, creditsDelta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, preferences string) error {
	args := m.Called(ctx, id, preferences)
	return args.Error(0)
}

// MockLandmarkRepository is a mock implementation of LandmarkRepository.
type MockLandmarkRepository struct {
	mock.Mock
}

func (m *MockLandmarkRepository) Create(ctx context.Context, landmark *model.Landmark) error {
	args := m.Called(ctx, landmark)
	return args.Error(0)
}

func (m *MockLandmarkRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Landmark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Landmark), args.Error(1)
}

func (m *MockLandmarkRepository) MarkVerified(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLandmarkRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLandmarkRepository) ListVerified(ctx context.Context) ([]model.Landmark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Landmark), args.Error(1)
}

func (m *MockLandmarkRepository) ListUnverified(ctx context.Context) ([]model.Landmark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Landmark), args.Error(1)
}

func (m *MockLandmarkRepository) ListBySubmitter(ctx context.Context, submitter uuid.UUID) ([]model.Landmark, error) {
	args := m.Called(ctx, submitter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Landmark), args.Error(1)
}

// MockIncidentRepository is a mock implementation of IncidentRepository.
type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) Create(ctx context.Context, incident *model.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}

func (m *MockIncidentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Incident), args.Error(1)
}

func (m *MockIncidentRepository) Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID, now time.Time) (int64, error) {
	args := m.Called(ctx, id, resolvedBy, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIncidentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIncidentRepository) ListLive(ctx context.Context, now time.Time) ([]model.Incident, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Incident), args.Error(1)
}

func (m *MockIncidentRepository) ListByReporter(ctx context.Context, reporter uuid.UUID) ([]model.Incident, error) {
	args := m.Called(ctx, reporter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Incident), args.Error(1)
}

// MockRewardEventRepository is a mock implementation of RewardEventRepository.
type MockRewardEventRepository struct {
	mock.Mock
}

func (m *MockRewardEventRepository) Create(ctx context.Context, event *model.RewardEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockRewardEventRepository) CreateBatch(ctx context.Context, events []model.RewardEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockRewardEventRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]model.RewardEvent, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RewardEvent), args.Error(1)
}

// MockRewardService is a mock implementation of RewardService.
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Apply(ctx context.Context, beneficiary uuid.UUID, cause model.RewardCause, subjectID uuid.UUID) error {
	args := m.Called(ctx, beneficiary, cause, subjectID)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, profileID uuid.UUID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, profileID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
