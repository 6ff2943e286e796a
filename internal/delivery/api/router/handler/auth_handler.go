package handler

import (
	"net/http"
	"time"

	"shelf/internal/delivery/api/response"
	"shelf/internal/domain/entity"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthHandler serves registration, login and account management.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *entity.User `json:"user"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(out))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out))
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.Me(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), uid, &usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err = h.authUC.ChangePassword(c.Request().Context(), uid, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.DeleteAccount(c.Request().Context(), uid); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func toAuthResponse(out *usecase.AuthOutput) authResponse {
	return authResponse{Token: out.Token, ExpiresAt: out.ExpiresAt, User: out.User}
}
