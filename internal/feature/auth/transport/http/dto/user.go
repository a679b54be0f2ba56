// Package dto はauthフィーチャーのエンティティとAPI型の変換を定義します。
package dto

import (
	"shop_backend/internal/api"
	"shop_backend/internal/feature/auth/domain/entity"
)

// ToUser projects a user to its public form. Credential fields are never copied.
func ToUser(u *entity.User) api.User {
	return api.User{
		Id:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Tel:       u.Tel,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserSummaries converts the listing projection.
func ToUserSummaries(in []entity.UserSummary) []api.UserSummary {
	out := make([]api.UserSummary, 0, len(in))
	for _, s := range in {
		out = append(out, api.UserSummary{Id: s.ID, Tel: s.Tel, Name: s.Name, Email: s.Email})
	}
	return out
}
