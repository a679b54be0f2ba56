package usecase

import (
	"context"
	"errors"
	"strings"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/shared/apperr"
)

// UserPatch lists the fields UpdateUser may change. Nil means unchanged.
type UserPatch struct {
	Email    *string
	Name     *string
	Tel      *string
	Password *string
}

type userUsecase struct {
	users UserRepository
	creds CredentialManager
}

// NewUserUsecase returns the user administration usecase.
func NewUserUsecase(users UserRepository, creds CredentialManager) *userUsecase {
	return &userUsecase{users: users, creds: creds}
}

// ListUsers returns every user projected to id, tel, name and email.
func (u *userUsecase) ListUsers(ctx context.Context) ([]entity.UserSummary, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

// DeleteUser removes the user with id.
func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validation("id is required")
	}
	if err := u.users.Delete(ctx, id); err != nil {
		return storeError("delete user", err)
	}
	return nil
}

// UpdateUser applies patch to the user with id.
// A new password gets a fresh salt and is derived with the same parameters as at registration.
func (u *userUsecase) UpdateUser(ctx context.Context, id string, patch UserPatch) (*entity.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Validation("id is required")
	}

	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find user", err)
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if !strings.Contains(*patch.Email, "@") {
			return nil, apperr.Validation("email is malformed")
		}
		other, err := u.users.FindByEmail(ctx, *patch.Email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, ErrDuplicateEmail
		case err != nil && !errors.Is(err, ErrUserNotFound):
			return nil, storeError("find user by email", err)
		}
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.Validation("name must not be empty")
		}
		user.Name = *patch.Name
	}
	if patch.Tel != nil {
		if strings.TrimSpace(*patch.Tel) == "" {
			return nil, apperr.Validation("tel must not be empty")
		}
		user.Tel = *patch.Tel
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, apperr.Validation("password must not be empty")
		}
		cred, err := u.creds.Derive(*patch.Password, nil)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = cred.Hash
		user.Salt = cred.Salt
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, storeError("update user", err)
	}
	return user, nil
}
