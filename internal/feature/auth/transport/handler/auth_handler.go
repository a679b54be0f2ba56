// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、トークンを発行します。
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	// Login はユーザーを認証し、成功時にトークンを返します。
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時はトークンとユーザー（資格情報なし）付きで201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, "signup", err)
		return
	}

	res, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    string(req.Email),
		Password: req.Password,
		Name:     req.Name,
		Tel:      req.Tel,
	})
	if err != nil {
		writeError(c, "signup", err, "email", req.Email)
		return
	}

	slog.Info("user signup successful", "email", req.Email, "user_id", res.User.ID, "remote_addr", c.ClientIP())
	api.Respond(c, http.StatusCreated, api.AuthResponse{Token: res.Token, User: dto.ToUser(res.User)})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 未登録メールとパスワード不一致はどちらも同じ401メッセージで返却します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, "login", err)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), string(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) || errors.Is(err, usecase.ErrInvalidPassword) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			api.Fail(c, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		writeError(c, "login", err, "email", req.Email)
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	api.Respond(c, http.StatusOK, api.AuthResponse{Token: res.Token, User: dto.ToUser(res.User)})
}
