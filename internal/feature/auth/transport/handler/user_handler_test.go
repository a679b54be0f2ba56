package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/shared/apperr"
)

type mockUserUsecase struct {
	ListFunc   func(ctx context.Context) ([]entity.UserSummary, error)
	UpdateFunc func(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockUserUsecase) ListUsers(ctx context.Context) ([]entity.UserSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserUsecase) UpdateUser(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockUserUsecase) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func userRouter(uc UserUsecase) *gin.Engine {
	h := NewUserHandler(uc)
	r := gin.New()
	r.GET("/users", h.List)
	r.PUT("/users/:id", h.Update)
	r.DELETE("/users/:id", h.Delete)
	return r
}

func TestUserHandler_List(t *testing.T) {
	t.Run("projection only", func(t *testing.T) {
		uc := &mockUserUsecase{ListFunc: func(ctx context.Context) ([]entity.UserSummary, error) {
			return []entity.UserSummary{{ID: "u-1", Tel: "111", Name: "Ana", Email: "ana@example.com"}}, nil
		}}

		w, _ := doJSON(t, userRouter(uc), http.MethodGet, "/users", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"success":true,"status":200,"body":[{"id":"u-1","tel":"111","name":"Ana","email":"ana@example.com"}]}`,
			w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		uc := &mockUserUsecase{ListFunc: func(ctx context.Context) ([]entity.UserSummary, error) {
			return nil, apperr.Persistence("list users", errors.New("boom"))
		}}

		w, env := doJSON(t, userRouter(uc), http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, env.Success)
	})
}

func TestUserHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		updateFunc     func(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error)
		expectedStatus int
	}{
		{
			name: "success",
			body: gin.H{"name": "Ana Maria", "password": "new-password"},
			updateFunc: func(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error) {
				if id != "u-1" || patch.Name == nil || *patch.Name != "Ana Maria" || patch.Password == nil || patch.Email != nil {
					return nil, errors.New("unexpected patch")
				}
				return &entity.User{ID: id, Name: *patch.Name, Email: "ana@example.com"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed email",
			body:           gin.H{"email": "nope"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "short password is accepted",
			body: gin.H{"password": "pw1"},
			updateFunc: func(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error) {
				if patch.Password == nil || *patch.Password != "pw1" {
					return nil, errors.New("unexpected patch")
				}
				return &entity.User{ID: id, Email: "ana@example.com"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "empty password",
			body: gin.H{"password": ""},
			updateFunc: func(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error) {
				return nil, apperr.Validation("password must not be empty")
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: gin.H{"email": "bia@example.com"},
			updateFunc: func(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error) {
				return nil, usecase.ErrDuplicateEmail
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing user",
			body:           gin.H{"name": "X"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, userRouter(&mockUserUsecase{UpdateFunc: tt.updateFunc}), http.MethodPut, "/users/u-1", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedStatus, env.Status)
			assert.NotContains(t, w.Body.String(), "new-password")
		})
	}
}

func TestUserHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"deleted", nil, http.StatusOK},
		{"missing", usecase.ErrUserNotFound, http.StatusNotFound},
		{"store failure", apperr.Persistence("delete user", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			uc := &mockUserUsecase{DeleteFunc: func(ctx context.Context, id string) error {
				gotID = id
				return tt.err
			}}

			w, _ := doJSON(t, userRouter(uc), http.MethodDelete, "/users/u-7", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "u-7", gotID)
		})
	}
}
