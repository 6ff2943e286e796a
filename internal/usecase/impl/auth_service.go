package impl

import (
	"context"
	"log/slog"
	"strings"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Register creates the account and signs the user in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, domainerrors.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing user")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return srv.issue(user)
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.userRepo.FindByID(ctx, userID)
}

func (srv *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}

		email := normalizeEmail(input.Email)
		if email != user.Email {
			other, findErr := userRepo.FindByEmail(ctx, email)
			if findErr == nil && other.ID != user.ID {
				return domainerrors.ErrUserAlreadyExists
			}
			if findErr != nil && !errors.Is(findErr, domainerrors.ErrUserNotFound) {
				return errors.Wrap(findErr, "failed to check existing user")
			}
		}

		user.Name = strings.TrimSpace(input.Name)
		user.Email = email
		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("current password does not match")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", userID.String()))

	return nil
}

// DeleteAccount removes the user and everything they own.
func (srv *authService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	srv.log(ctx).Info("Account deleted", slog.String("userID", userID.String()))

	return nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
