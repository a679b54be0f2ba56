package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/auth/credential"
	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/shared/apperr"
)

func strPtr(s string) *string { return &s }

func existingUser() *entity.User {
	return &entity.User{
		ID:           "u-1",
		Email:        "ana@example.com",
		Name:         "Ana",
		Tel:          "111",
		PasswordHash: []byte("hash(password123)"),
		Salt:         []byte{9},
	}
}

func TestUserUsecase_ListUsers(t *testing.T) {
	t.Run("returns projection", func(t *testing.T) {
		want := []entity.UserSummary{{ID: "u-1", Tel: "111", Name: "Ana", Email: "ana@example.com"}}
		repo := &mockUserRepository{ListFunc: func() ([]entity.UserSummary, error) { return want, nil }}

		got, err := NewUserUsecase(repo, &fakeCredentials{}).ListUsers(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &mockUserRepository{ListFunc: func() ([]entity.UserSummary, error) { return nil, errors.New("boom") }}

		_, err := NewUserUsecase(repo, &fakeCredentials{}).ListUsers(context.Background())

		assert.ErrorIs(t, err, apperr.ErrPersistence)
	})
}

func TestUserUsecase_DeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		repoErr error
		wantErr error
	}{
		{"deleted", "u-1", nil, nil},
		{"missing", "u-2", ErrUserNotFound, ErrUserNotFound},
		{"empty id", "", nil, apperr.ErrValidation},
		{"store failure", "u-1", errors.New("boom"), apperr.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{DeleteFunc: func(id string) error { return tt.repoErr }}

			err := NewUserUsecase(repo, &fakeCredentials{}).DeleteUser(context.Background(), tt.id)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserUsecase_UpdateUser(t *testing.T) {
	t.Run("profile fields", func(t *testing.T) {
		var saved *entity.User
		repo := &mockUserRepository{
			FindByIDFunc: func(id string) (*entity.User, error) { return existingUser(), nil },
			UpdateFunc: func(user *entity.User) error {
				saved = user
				return nil
			},
		}

		got, err := NewUserUsecase(repo, &fakeCredentials{}).UpdateUser(context.Background(), "u-1", UserPatch{
			Name: strPtr("Ana Maria"),
			Tel:  strPtr("222"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", got.Name)
		assert.Equal(t, "222", got.Tel)
		assert.Equal(t, []byte("hash(password123)"), saved.PasswordHash, "password untouched")
	})

	t.Run("password change re-derives with fresh salt", func(t *testing.T) {
		creds := &fakeCredentials{}
		repo := &mockUserRepository{FindByIDFunc: func(id string) (*entity.User, error) { return existingUser(), nil }}

		got, err := NewUserUsecase(repo, creds).UpdateUser(context.Background(), "u-1", UserPatch{Password: strPtr("new-password")})

		require.NoError(t, err)
		assert.Equal(t, []byte("hash(new-password)"), got.PasswordHash)
		assert.NotEqual(t, []byte{9}, got.Salt)
		assert.Equal(t, 1, creds.derived)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByIDFunc:    func(id string) (*entity.User, error) { return existingUser(), nil },
			FindByEmailFunc: func(email string) (*entity.User, error) { return &entity.User{ID: "u-2", Email: email}, nil },
		}

		_, err := NewUserUsecase(repo, &fakeCredentials{}).UpdateUser(context.Background(), "u-1", UserPatch{Email: strPtr("bia@example.com")})

		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("email change to a free address", func(t *testing.T) {
		repo := &mockUserRepository{FindByIDFunc: func(id string) (*entity.User, error) { return existingUser(), nil }}

		got, err := NewUserUsecase(repo, &fakeCredentials{}).UpdateUser(context.Background(), "u-1", UserPatch{Email: strPtr("ana.new@example.com")})

		require.NoError(t, err)
		assert.Equal(t, "ana.new@example.com", got.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := NewUserUsecase(&mockUserRepository{}, &fakeCredentials{}).UpdateUser(context.Background(), "u-9", UserPatch{Name: strPtr("X")})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("invalid fields", func(t *testing.T) {
		tests := []struct {
			name  string
			patch UserPatch
		}{
			{"empty password", UserPatch{Password: strPtr("")}},
			{"empty name", UserPatch{Name: strPtr("")}},
			{"empty tel", UserPatch{Tel: strPtr(" ")}},
			{"malformed email", UserPatch{Email: strPtr("nope")}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &mockUserRepository{FindByIDFunc: func(id string) (*entity.User, error) { return existingUser(), nil }}

				_, err := NewUserUsecase(repo, &fakeCredentials{}).UpdateUser(context.Background(), "u-1", tt.patch)

				assert.ErrorIs(t, err, apperr.ErrValidation)
			})
		}
	})
}

// TestUserUsecase_PasswordChangeVerifiesWithSameManager はパスワード変更後の資格情報がログイン時と同じ長さで検証できることを検証します。
func TestUserUsecase_PasswordChangeVerifiesWithSameManager(t *testing.T) {
	m := credential.New()
	repo := &mockUserRepository{FindByIDFunc: func(id string) (*entity.User, error) { return existingUser(), nil }}

	got, err := NewUserUsecase(repo, m).UpdateUser(context.Background(), "u-1", UserPatch{Password: strPtr("brand-new-pass")})

	require.NoError(t, err)
	assert.Len(t, got.PasswordHash, credential.DefaultKeyLength)
	assert.True(t, m.Verify("brand-new-pass", got.PasswordHash, got.Salt))
}
