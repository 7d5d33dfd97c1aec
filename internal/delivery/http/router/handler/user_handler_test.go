package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "userauth/internal/delivery/context"
	httpmiddleware "userauth/internal/delivery/http/middleware"
	"userauth/internal/delivery/http/validator"
	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/errors"
	mockUsecase "userauth/internal/mocks/usecase"
	"userauth/internal/usecase"
)

type handlerFixtures struct {
	echo    *echo.Echo
	usecase *mockUsecase.MockUserUsecase
}

// createTestUserHandler wires the handler without the auth gate; identity is injected directly.
func createTestUserHandler(t *testing.T) handlerFixtures {
	uc := mockUsecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewUserHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	withIdentity := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetIdentity(c, deliverycontext.Identity{ID: 99})

			return next(c)
		}
	}

	e.POST("/users/login", h.Login)
	e.POST("/users", h.Register)
	e.POST("/users/validateToken", h.ValidateToken, withIdentity)
	e.GET("/users/:id", h.GetUser)
	e.PATCH("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)

	return handlerFixtures{echo: e, usecase: uc}
}

func (fx handlerFixtures) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "a@b.c", Password: "pw"}).
			Return(&usecase.LoginOutput{Token: "jwt", UserID: 3}, nil)

		rec := fx.do(http.MethodPost, "/users/login", `{"email":"a@b.c","password":"pw"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"jwt","userId":3}`, rec.Body.String())
	})

	t.Run("unknown email answers 201", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUnknownIdentifier)

		rec := fx.do(http.MethodPost, "/users/login", `{"email":"ghost@b.c","password":"pw"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid identifiers"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

		rec := fx.do(http.MethodPost, "/users/login", `{"email":"a@b.c","password":"bad"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid identifiers"}`, rec.Body.String())
	})

	t.Run("store fault", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "find"))

		rec := fx.do(http.MethodPost, "/users/login", `{"email":"a@b.c","password":"pw"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Database error"}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		fx := createTestUserHandler(t)

		rec := fx.do(http.MethodPost, "/users/login", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	})
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("created with empty body", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{Email: "new@b.c", Password: "pw"}).
			Return(&entity.User{ID: 1, Email: "new@b.c"}, nil)

		rec := fx.do(http.MethodPost, "/users", `{"email":"new@b.c","password":"pw"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("missing fields never reach the use case", func(t *testing.T) {
		for _, body := range []string{`{"email":"a@b.c"}`, `{"password":"pw"}`, `{"email":"","password":""}`, `{}`} {
			fx := createTestUserHandler(t)

			rec := fx.do(http.MethodPost, "/users", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.JSONEq(t, `{"error":"Please enter all required information"}`, rec.Body.String())
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := fx.do(http.MethodPost, "/users", `{"email":"taken@b.c","password":"pw"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"Email already exists"}`, rec.Body.String())
	})
}

func TestUserHandler_ValidateToken(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := fx.do(http.MethodPost, "/users/validateToken", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true,"user":{"id":99}}`, rec.Body.String())
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("found hides password", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().GetUser(mock.Anything, int64(5)).
			Return(&entity.User{ID: 5, Email: "a@b.c", PasswordHash: "$2a$10$secret"}, nil)

		rec := fx.do(http.MethodGet, "/users/5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":5,"email":"a@b.c"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().GetUser(mock.Anything, int64(5)).Return(nil, domainerrors.ErrUserLookupNotFound)

		rec := fx.do(http.MethodGet, "/users/5", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"User not found."}`, rec.Body.String())
	})
}

func TestUserHandler_InvalidUserID(t *testing.T) {
	tests := []struct {
		method string
		body   string
	}{
		{method: http.MethodGet},
		{method: http.MethodPatch, body: `{"email":"x@y.z"}`},
		{method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			fx := createTestUserHandler(t)

			rec := fx.do(tt.method, "/users/abc", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid User ID"}`, rec.Body.String())
		})
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("returns updated record", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().
			UpdateUser(mock.Anything, mock.MatchedBy(func(input *usecase.UpdateUserInput) bool {
				return input.ID == 7 && input.Changes.Email != nil && *input.Changes.Email == "new@b.c" && input.Changes.Password == nil
			})).
			Return(&entity.User{ID: 7, Email: "new@b.c", PasswordHash: "hash"}, nil)

		rec := fx.do(http.MethodPatch, "/users/7", `{"email":"new@b.c"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7,"email":"new@b.c","password":"hash"}`, rec.Body.String())
	})

	t.Run("empty string is supplied", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().
			UpdateUser(mock.Anything, mock.MatchedBy(func(input *usecase.UpdateUserInput) bool {
				return input.Changes.Email != nil && *input.Changes.Email == ""
			})).
			Return(&entity.User{ID: 7}, nil)

		rec := fx.do(http.MethodPatch, "/users/7", `{"email":""}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no data", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().
			UpdateUser(mock.Anything, mock.MatchedBy(func(input *usecase.UpdateUserInput) bool {
				return input.Changes.IsEmpty()
			})).
			Return(nil, domainerrors.ErrNoUpdateData)

		rec := fx.do(http.MethodPatch, "/users/7", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"No data provided to update"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().UpdateUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserNotFound)

		rec := fx.do(http.MethodPatch, "/users/7", `{"password":"pw"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
	})
}

func TestUserHandler_UpdateUser_EmailTakenIsDatabaseError(t *testing.T) {
	fx := createTestUserHandler(t)
	fx.usecase.EXPECT().UpdateUser(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(errors.New("duplicate key"), "failed to update user"), "update"))

	rec := fx.do(http.MethodPatch, "/users/7", `{"email":"taken@b.c"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database error"}`, rec.Body.String())
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("returns deleted record", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().DeleteUser(mock.Anything, int64(4)).
			Return(&entity.User{ID: 4, Email: "a@b.c", PasswordHash: "hash"}, nil)

		rec := fx.do(http.MethodDelete, "/users/4", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":4,"email":"a@b.c","password":"hash"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.usecase.EXPECT().DeleteUser(mock.Anything, int64(4)).Return(nil, domainerrors.ErrUserNotFound)

		rec := fx.do(http.MethodDelete, "/users/4", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
	})
}

func TestUserHandler_RequestContextReachesUsecase(t *testing.T) {
	fx := createTestUserHandler(t)

	type ctxKey struct{}
	fx.echo.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), ctxKey{}, "marker")))

			return next(c)
		}
	})

	fx.usecase.EXPECT().
		GetUser(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Value(ctxKey{}) == "marker" }), int64(1)).
		Return(&entity.User{ID: 1}, nil)

	rec := fx.do(http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
