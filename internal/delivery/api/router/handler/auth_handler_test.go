package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	mockUsecase "inventory/internal/mocks/usecase"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho(entity.Principal{})
	e.POST("/auth/signup", h.Signup)
	e.POST("/auth/login", h.Login)

	return e, userUC
}

func TestAuthHandler_Signup(t *testing.T) {
	e, userUC := createTestAuthHandler(t)
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed",
		Role:         entity.RoleSeller,
		IsActive:     true,
		Level:        entity.MinLevel,
		CreatedAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	userUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Username: "alice", Password: "pw-123456", Role: entity.RoleSeller}).
		Return(user, nil)

	rec := doRequest(e, http.MethodPost, "/auth/signup", `{"username":"alice","password":"pw-123456","role":"Seller"}`)

	assertStatus(t, rec, http.StatusCreated)
	assert.NotContains(t, rec.Body.String(), "hashed")

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "Seller", resp.Role)
}

func TestAuthHandler_Signup_Rejected(t *testing.T) {
	t.Run("admin role", func(t *testing.T) {
		e, _ := createTestAuthHandler(t)

		rec := doRequest(e, http.MethodPost, "/auth/signup", `{"username":"alice","password":"pw","role":"Admin"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("taken", func(t *testing.T) {
		e, userUC := createTestAuthHandler(t)
		userUC.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := doRequest(e, http.MethodPost, "/auth/signup", `{"username":"alice","password":"pw-123456"}`)

		assertStatus(t, rec, domainerrors.ErrUserAlreadyExists.HTTPCode())
		assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), decodeError(t, rec).Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	e, userUC := createTestAuthHandler(t)
	user := &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleCustomer, IsActive: true}

	userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "pw"}).
		Return(&usecase.LoginOutput{AccessToken: "jwt-token", User: user}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"pw"}`)

	assertStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"token":"jwt-token","role":"Customer","id":"`+user.ID.String()+`"}`, rec.Body.String())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, userUC := createTestAuthHandler(t)
	userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"bad"}`)

	assertStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), decodeError(t, rec).Code)
}
