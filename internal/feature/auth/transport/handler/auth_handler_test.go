package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/shared/apperr"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of AuthUsecase.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	LoginFunc    func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return nil, errors.New("register not configured")
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, errors.New("login not configured")
}

// envelope mirrors api.Envelope with a generic body for assertions.
type envelope struct {
	Success bool           `json:"success"`
	Status  int            `json:"status"`
	Body    map[string]any `json:"body"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func authResult() *usecase.AuthResult {
	return &usecase.AuthResult{
		Token: "dummy-jwt-token",
		User: &entity.User{
			ID:           "u-1",
			Email:        "test@example.com",
			Name:         "Test",
			Tel:          "111",
			PasswordHash: []byte("hash"),
			Salt:         []byte("salt"),
		},
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	validBody := gin.H{"email": "test@example.com", "password": "password123", "name": "Test", "tel": "111"}

	tests := []struct {
		name           string
		requestBody    gin.H
		registerFunc   func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success: user registration",
			requestBody: validBody,
			registerFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
				return authResult(), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123", "name": "Test", "tel": "111"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "success: short password is accepted",
			requestBody: gin.H{"email": "a@x.com", "password": "pw123", "name": "A", "tel": "1"},
			registerFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
				if in.Password != "pw123" {
					return nil, errors.New("unexpected password")
				}
				return authResult(), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com", "name": "Test", "tel": "111"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123", "tel": "111"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "failure: duplicate email",
			requestBody: validBody,
			registerFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
				return nil, usecase.ErrDuplicateEmail
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "email already registered",
		},
		{
			name:        "failure: crypto error is hidden",
			requestBody: validBody,
			registerFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
				return nil, apperr.Crypto(errors.New("entropy source unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
		{
			name:        "failure: persistence error is hidden",
			requestBody: validBody,
			registerFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
				return nil, apperr.Persistence("create user", errors.New("pq: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.registerFunc})
			router := gin.New()
			router.POST("/auth/signup", h.Signup)

			w, env := doJSON(t, router, http.MethodPost, "/auth/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedStatus, env.Status)
			assert.Equal(t, tt.expectedStatus < 400, env.Success)
			if tt.expectedMsg != "" {
				assert.Contains(t, env.Body["message"], tt.expectedMsg)
			}
			assert.NotContains(t, w.Body.String(), "connection refused")
			assert.NotContains(t, w.Body.String(), "entropy")
		})
	}
}

// TestAuthHandler_Signup_SanitizedUser はレスポンスに資格情報が含まれないことを検証します。
func TestAuthHandler_Signup_SanitizedUser(t *testing.T) {
	var got usecase.RegisterInput
	h := NewAuthHandler(&mockAuthUsecase{RegisterFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
		got = in
		return authResult(), nil
	}})
	router := gin.New()
	router.POST("/auth/signup", h.Signup)

	w, env := doJSON(t, router, http.MethodPost, "/auth/signup",
		gin.H{"email": "test@example.com", "password": "password123", "name": "Test", "tel": "111"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecase.RegisterInput{Email: "test@example.com", Password: "password123", Name: "Test", Tel: "111"}, got)
	assert.Equal(t, "dummy-jwt-token", env.Body["token"])
	user, ok := env.Body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u-1", user["id"])
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, user, "PasswordHash")
	assert.NotContains(t, user, "salt")
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		loginFunc      func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "success: user login",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			loginFunc:      func(ctx context.Context, email, password string) (*usecase.AuthResult, error) { return authResult(), nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "failure: unknown email",
			requestBody: gin.H{"email": "wrong@example.com", "password": "password123"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    msgInvalidCredentials,
		},
		{
			name:        "failure: wrong password",
			requestBody: gin.H{"email": "test@example.com", "password": "wrong-password"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, usecase.ErrInvalidPassword
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    msgInvalidCredentials,
		},
		{
			name:        "failure: store error",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, apperr.Persistence("find user", errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.loginFunc})
			router := gin.New()
			router.POST("/auth/login", h.Login)

			w, env := doJSON(t, router, http.MethodPost, "/auth/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedStatus, env.Status)
			if tt.expectedMsg != "" {
				assert.Contains(t, env.Body["message"], tt.expectedMsg)
			} else {
				assert.Equal(t, "dummy-jwt-token", env.Body["token"])
			}
		})
	}
}
