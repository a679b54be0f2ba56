package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
)

// UserUsecase is the user administration surface the handler needs.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.UserSummary, error)
	UpdateUser(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserHandler serves /users.
type UserHandler struct {
	users UserUsecase
}

func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, "list users", err)
		return
	}
	api.Respond(c, http.StatusOK, dto.ToUserSummaries(users))
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req api.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, "update user", err)
		return
	}

	patch := usecase.UserPatch{Name: req.Name, Tel: req.Tel, Password: req.Password}
	if req.Email != nil {
		email := string(*req.Email)
		patch.Email = &email
	}

	user, err := h.users.UpdateUser(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, "update user", err, "user_id", id)
		return
	}
	slog.Info("user updated", "user_id", id, "password_changed", req.Password != nil, "remote_addr", c.ClientIP())
	api.Respond(c, http.StatusOK, dto.ToUser(user))
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, "delete user", err, "user_id", id)
		return
	}
	slog.Info("user deleted", "user_id", id, "remote_addr", c.ClientIP())
	api.Respond(c, http.StatusOK, api.Message{Message: "user deleted"})
}
