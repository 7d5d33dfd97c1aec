package errors

import (
	"net/http"
	"testing"

	"userauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrUserAlreadyExists.WrapMessage("register")

	assert.True(t, errors.Is(err, ErrUserAlreadyExists))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "Email already exists", appErr.Message())
}

func TestLoginErrorsShareBodyButNotStatus(t *testing.T) {
	assert.Equal(t, ErrUnknownIdentifier.Message(), ErrInvalidCredentials.Message())
	assert.Equal(t, http.StatusCreated, ErrUnknownIdentifier.HTTPCode())
	assert.Equal(t, http.StatusBadRequest, ErrInvalidCredentials.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "find user"), "get user")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "Database error", appErr.Message())
	assert.Equal(t, "find user", appErr.Details())
	assert.True(t, errors.Is(err, cause))
	assert.NotContains(t, appErr.Message(), "connection reset")
}
