package adapters

import (
	"context"
	"errors"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	authusecase "shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/feature/orders/usecase"
)

// UserLookup は auth の UserRepository のうち注文で使う部分です。
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*authentity.User, error)
}

// clientFinder translates a missing user into usecase.ErrClientNotFound.
type clientFinder struct {
	users UserLookup
}

var _ usecase.UserFinder = (*clientFinder)(nil)

// NewClientFinder wraps users for the order assembler.
func NewClientFinder(users UserLookup) *clientFinder {
	return &clientFinder{users: users}
}

func (f *clientFinder) FindByID(ctx context.Context, id string) (*authentity.User, error) {
	u, err := f.users.FindByID(ctx, id)
	if errors.Is(err, authusecase.ErrUserNotFound) {
		return nil, usecase.ErrClientNotFound
	}
	return u, err
}
