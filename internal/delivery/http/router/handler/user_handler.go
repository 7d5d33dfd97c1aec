// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	deliverycontext "userauth/internal/delivery/context"
	"userauth/internal/delivery/http/response"
	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/errors"
	"userauth/internal/usecase"
)

// CredentialsRequest is the body of login and register.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required" example:"admin@gmail.com"`
	Password string `json:"password" validate:"required" example:"admin"`
}

// UpdateUserRequest is the body of a partial user update. Absent fields stay unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" example:"new@gmail.com"`
	Password *string `json:"password,omitempty" example:"new-password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// UserRecordResponse is the stored record, returned after update and delete.
type UserRecordResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateTokenResponse reports the identity behind a valid token.
type ValidateTokenResponse struct {
	Valid bool                     `json:"valid"`
	User  deliverycontext.Identity `json:"user"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description An unknown email answers 201 with an error body.
// @Tags users
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Success 201 {object} response.ErrorResponse "Unknown email"
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, LoginResponse{
		Token:  output.Token,
		UserID: output.UserID,
	})
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Param request body CredentialsRequest true "New account credentials"
// @Success 201 "Created"
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrMissingRequiredFields, err.Error())
	}

	if _, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusCreated)
}

// ValidateToken godoc
// @Summary Validate the bearer token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ValidateTokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users/validateToken [post]
func (h *UserHandler) ValidateToken(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	return response.JSON(c, http.StatusOK, ValidateTokenResponse{
		Valid: true,
		User:  identity,
	})
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, UserResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

// UpdateUser godoc
// @Summary Update a user's email and/or password
// @Description Fields present in the body are applied, even when empty. A new password is re-hashed.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} UserRecordResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), &usecase.UpdateUserInput{
		ID: id,
		Changes: entity.UserChanges{
			Email:    req.Email,
			Password: req.Password,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toUserRecord(user))
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserRecordResponse "The deleted record"
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toUserRecord(user))
}

// parseUserID reads the :id path parameter before any store access.
func parseUserID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrInvalidUserID, err.Error())
	}

	return id, nil
}

// bindBody decodes the JSON body only; path and query parameters are read explicitly.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}

	return nil
}

func toUserRecord(user *entity.User) UserRecordResponse {
	return UserRecordResponse{
		ID:       user.ID,
		Email:    user.Email,
		Password: user.PasswordHash,
	}
}
