package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/core/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/platform/config"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	cfg      *config.Config
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.cfg = &config.Config{SessionSecret: "test-secret", SessionExpiryDuration: time.Hour, SessionIssuer: "contapyme"}
	suite.service = services.NewAuthService(suite.cfg, suite.mockRepo)
}

func (suite *AuthServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()
	var saved domain.User
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{Email: " Ana@Example.CL ", Password: "supersecret", Name: "Ana"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ana@example.cl", user.Email)
	assert.Equal(suite.T(), domain.RoleClient, user.Role)
	assert.NotEqual(suite.T(), "supersecret", saved.PasswordHash)
	assert.True(suite.T(), utils.CheckPasswordHash("supersecret", saved.PasswordHash))
}

func (suite *AuthServiceTestSuite) TestLogin_IssuesVerifiableToken() {
	ctx := context.Background()
	hash, err := utils.HashPassword("supersecret")
	require.NoError(suite.T(), err)
	stored := &domain.User{UserID: "user-1", Email: "ana@example.cl", Role: domain.RoleAccountant, Status: "active", PasswordHash: hash}
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.cl").Return(stored, nil).Once()

	user, token, err := suite.service.Login(ctx, "ana@example.cl", "supersecret")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", user.UserID)
	session, err := utils.ParseSessionToken(token, suite.cfg.SessionSecret)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", session.UserID)
	assert.Equal(suite.T(), domain.RoleAccountant, session.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_Rejects() {
	ctx := context.Background()
	hash, err := utils.HashPassword("supersecret")
	require.NoError(suite.T(), err)
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.cl").
		Return(&domain.User{UserID: "user-1", Status: "active", PasswordHash: hash}, nil)
	suite.mockRepo.On("FindUserByEmail", ctx, "nadie@example.cl").Return(nil, apperrors.ErrNotFound)
	suite.mockRepo.On("FindUserByEmail", ctx, "baja@example.cl").
		Return(&domain.User{UserID: "user-2", Status: "suspended", PasswordHash: hash}, nil)

	_, _, err = suite.service.Login(ctx, "ana@example.cl", "wrong-password")
	assert.Equal(suite.T(), 401, apperrors.StatusCode(err))

	_, _, err = suite.service.Login(ctx, "nadie@example.cl", "supersecret")
	assert.Equal(suite.T(), 401, apperrors.StatusCode(err))

	_, _, err = suite.service.Login(ctx, "baja@example.cl", "supersecret")
	assert.Equal(suite.T(), 403, apperrors.StatusCode(err))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestAccountingConfigService(t *testing.T) {
	svc := services.NewAccountingConfigService()
	ctx := context.Background()

	cfg := svc.GetCentralizedConfig(ctx)
	assert.NotEmpty(t, cfg)

	saved := svc.SaveCentralizedConfig(ctx, map[string]any{"payroll": map[string]any{"afp": "2.1.06"}})
	assert.Contains(t, saved, "payroll")
	stamp, ok := saved["updated_at"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, stamp)
	assert.NoError(t, err)

	wrapped := svc.SaveCentralizedConfig(ctx, []any{"2.1.06"})
	assert.Equal(t, []any{"2.1.06"}, wrapped["config"])
	assert.Contains(t, wrapped, "updated_at")
}
