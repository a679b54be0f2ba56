// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"shop_backend/internal/feature/auth/credential"
	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/shared/apperr"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化し、IDを割り当てます。
	// メールアドレスが重複する場合は ErrDuplicateEmail を返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスの完全一致でユーザーを取得します。存在しない場合は ErrUserNotFound。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDでユーザーを取得します。存在しない場合は ErrUserNotFound。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// List は全ユーザーの id, tel, name, email のみを返します。
	List(ctx context.Context) ([]entity.UserSummary, error)

	// Update は既存ユーザーの全フィールドを書き戻します。
	Update(ctx context.Context, user *entity.User) error

	// Delete はユーザーを削除します。存在しない場合は ErrUserNotFound。
	Delete(ctx context.Context, id string) error
}

// CredentialManager derives and verifies stored password credentials.
type CredentialManager interface {
	Derive(password string, salt []byte) (credential.Credential, error)
	Verify(password string, hash, salt []byte) bool
	Params() credential.Params
}

// TokenIssuer はセッショントークン生成のインターフェースを定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID, email string) (string, error)
}

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Tel      string
}

// AuthResult is returned by Register and Login. User must be serialized through a sanitizing DTO.
type AuthResult struct {
	Token string
	User  *entity.User
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	creds  CredentialManager
	tokens TokenIssuer

	// dummySalt はユーザー未検出時のダミー検証に使います。
	dummySalt []byte
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, creds CredentialManager, tokens TokenIssuer) *authUsecase {
	salt := make([]byte, creds.Params().SaltLength)
	rand.Read(salt)
	return &authUsecase{
		users:     users,
		creds:     creds,
		tokens:    tokens,
		dummySalt: salt,
	}
}

func validateRegister(in RegisterInput) error {
	switch {
	case strings.TrimSpace(in.Email) == "":
		return apperr.Validation("email is required")
	case !strings.Contains(in.Email, "@"):
		return apperr.Validation("email is malformed")
	case strings.TrimSpace(in.Name) == "":
		return apperr.Validation("name is required")
	case strings.TrimSpace(in.Tel) == "":
		return apperr.Validation("tel is required")
	case in.Password == "":
		// 長さの下限は設けない
		return apperr.Validation("password is required")
	}
	return nil
}

// Register は新規ユーザーを登録し、トークンとユーザーを返します。
// メールアドレスは正規化せず、完全一致で重複を判定します。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validateRegister(in); err != nil {
		return nil, err
	}

	_, err := u.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case !errors.Is(err, ErrUserNotFound):
		return nil, storeError("find user by email", err)
	}

	cred, err := u.creds.Derive(in.Password, nil)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        in.Email,
		Name:         in.Name,
		Tel:          in.Tel,
		PasswordHash: cred.Hash,
		Salt:         cred.Salt,
	}
	// 同時登録の競合はユニーク制約で ErrDuplicateEmail になる
	if err := u.users.Create(ctx, user); err != nil {
		return nil, storeError("create user", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login はユーザーを認証し、成功時にトークンを返します。
// タイミング攻撃を緩和するため、ユーザーが存在しない場合でも鍵導出を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			u.creds.Verify(password, nil, u.dummySalt)
			return nil, ErrUserNotFound
		}
		return nil, storeError("find user by email", err)
	}

	if !u.creds.Verify(password, user.PasswordHash, user.Salt) {
		return nil, ErrInvalidPassword
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// storeError passes feature sentinels through and classifies anything else as a persistence failure.
func storeError(op string, err error) error {
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrDuplicateEmail) {
		return err
	}
	slog.Error("user store failure", "op", op, "error", err)
	return apperr.Persistence(op, err)
}
