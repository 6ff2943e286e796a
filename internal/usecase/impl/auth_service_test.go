package impl

import (
	"context"
	"testing"
	"time"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	mockRepo "shelf/internal/mocks/repository"
	mockSvc "shelf/internal/mocks/service"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	fx.hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().FindByEmail(ctx, "reader@example.com").Return(nil, domainerrors.ErrUserNotFound)
		txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
			Return(nil)
	})
	fx.tokenService.EXPECT().GenerateToken(userID).Return("token", expiresAt, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Reader",
		Email:    " Reader@Example.com ",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, "reader@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.PasswordHash)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().FindByEmail(ctx, "reader@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	})

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Reader",
		Email:    "reader@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Reader",
		Email:    "reader@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "reader@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "reader@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateToken(user.ID).Return("token", time.Now(), nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "reader@example.com", Password: "Password123!"})

		require.NoError(t, err)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "reader@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "reader@example.com", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123!").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("rehashed", nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "Password123!",
		NewPassword:     "NewPassword123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "rehashed", user.PasswordHash)
}

func TestAuthService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "old@example.com", Name: "Reader"}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		txUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	})

	_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Name: "Reader", Email: "taken@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}
