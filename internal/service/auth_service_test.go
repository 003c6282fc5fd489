package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cityeyes/internal/auth"
	"cityeyes/internal/model"
)

func newJWTServiceForTest() *auth.JWTService {
	return auth.NewJWTService("test-secret")
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		requestedRole string
		setupMock     func(*MockProfileRepository)
		wantErr       error
		wantRole      model.ProfileRole
	}{
		{
			name:  "registers a new user",
			email: "Ama@Example.Com",
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByEmail", mock.Anything, "ama@example.com").
					Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).
					Return(nil)
			},
			wantRole: model.ProfileRoleUser,
		},
		{
			name:          "admin request is stored but never pre-verified",
			email:         "yaw@example.com",
			requestedRole: "admin",
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByEmail", mock.Anything, "yaw@example.com").
					Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
					return p.Role == model.ProfileRoleAdmin && !p.AdminVerified
				})).Return(nil)
			},
			wantRole: model.ProfileRoleAdmin,
		},
		{
			name:          "unknown requested role falls back to user",
			email:         "kofi@example.com",
			requestedRole: "emperor",
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByEmail", mock.Anything, "kofi@example.com").
					Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).
					Return(nil)
			},
			wantRole: model.ProfileRoleUser,
		},
		{
			name:  "duplicate email",
			email: "ama@example.com",
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByEmail", mock.Anything, "ama@example.com").
					Return(&model.Profile{ID: uuid.New()}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProfileRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, newJWTServiceForTest(), new(MockTokenStore))
			profile, err := svc.Register(context.Background(), tt.email, "password123", "Test User", tt.requestedRole)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRole, profile.Role)
				assert.False(t, profile.AdminVerified)
				assert.NotEqual(t, "password123", profile.PasswordHash)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	profileID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	profile := &model.Profile{
		ID:           profileID,
		Email:        "ama@example.com",
		PasswordHash: string(hash),
	}

	t.Run("returns tokens for valid credentials", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockStore := new(MockTokenStore)
		mockRepo.On("FindByEmail", mock.Anything, "ama@example.com").Return(profile, nil)
		mockStore.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"), profileID, "ama@example.com", auth.RefreshTokenExpiry).
			Return(nil)

		svc := NewAuthService(mockRepo, newJWTServiceForTest(), mockStore)
		accessToken, refreshToken, got, err := svc.Login(context.Background(), "ama@example.com", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, profile, got)
		mockStore.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ama@example.com").Return(profile, nil)

		svc := NewAuthService(mockRepo, newJWTServiceForTest(), new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "ama@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mockRepo, newJWTServiceForTest(), new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	profileID := uuid.New()
	jwtService := newJWTServiceForTest()

	t.Run("issues a new access token for a stored refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(profileID, "ama@example.com")
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(profileID, "ama@example.com", nil)

		svc := NewAuthService(new(MockProfileRepository), jwtService, mockStore)
		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		mockStore.AssertExpectations(t)
	})

	t.Run("rejects a token missing from the store", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(profileID, "ama@example.com")
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(uuid.Nil, "", assert.AnError)

		svc := NewAuthService(new(MockProfileRepository), jwtService, mockStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("rejects a token whose stored identity differs", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(profileID, "ama@example.com")
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(uuid.New(), "ama@example.com", nil)

		svc := NewAuthService(new(MockProfileRepository), jwtService, mockStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		svc := NewAuthService(new(MockProfileRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	profileID := uuid.New()
	jwtService := newJWTServiceForTest()

	t.Run("deletes the refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(profileID, "ama@example.com")
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

		svc := NewAuthService(new(MockProfileRepository), jwtService, mockStore)
		err = svc.Logout(context.Background(), refreshToken, "")

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
	})

	t.Run("blacklists the access token for its remaining lifetime", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(profileID, "ama@example.com")
		assert.NoError(t, err)
		accessToken, err := jwtService.GenerateAccessToken(profileID, "ama@example.com")
		assert.NoError(t, err)
		claims, err := jwtService.ValidateToken(accessToken)
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)
		mockStore.On("BlacklistAccessToken", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 0 && ttl <= auth.AccessTokenExpiry
		})).Return(nil)

		svc := NewAuthService(new(MockProfileRepository), jwtService, mockStore)
		err = svc.Logout(context.Background(), refreshToken, accessToken)

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
	})

	t.Run("garbage access token still logs out", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(profileID, "ama@example.com")
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

		svc := NewAuthService(new(MockProfileRepository), jwtService, mockStore)
		err = svc.Logout(context.Background(), refreshToken, "not-a-jwt")

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "BlacklistAccessToken")
	})
}
