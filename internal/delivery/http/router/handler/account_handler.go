// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"shiptrack/internal/delivery/http/middleware"
	"shiptrack/internal/delivery/http/response"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// The validation messages are endpoint-specific and part of the API contract.
const (
	signupFieldsRequiredMessage = "All fields are required"
	loginFieldsRequiredMessage  = "Username and password are required"
)

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the outward shape of an account. It has no slot for the
// password hash, so the hash cannot leak through this endpoint by construction.
type accountResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account registration request.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(signupFieldsRequiredMessage)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(signupFieldsRequiredMessage)
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, output.Message)
}

// Login handles the authentication request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError(loginFieldsRequiredMessage)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError(loginFieldsRequiredMessage)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.LoginBody{
		Message: output.Message,
		Token:   output.Token,
	})
}

// Me returns the authenticated account's public fields.
func (h *AccountHandler) Me(c echo.Context) error {
	accountID, ok := c.Get(middleware.ContextAccountIDKey).(uuid.UUID)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, accountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
