package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/shared/apperr"
)

const msgInvalidCredentials = "invalid email or password"

// writeError maps usecase errors to an envelope. Store and crypto details stay in the log.
func writeError(c *gin.Context, op string, err error, attrs ...any) {
	status, msg := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status, msg = http.StatusBadRequest, apperr.Reason(err)
	case errors.Is(err, usecase.ErrDuplicateEmail):
		status, msg = http.StatusConflict, "email already registered"
	case errors.Is(err, usecase.ErrUserNotFound):
		status, msg = http.StatusNotFound, "user not found"
	}

	args := append([]any{"error", err, "status", status, "remote_addr", c.ClientIP()}, attrs...)
	if status >= http.StatusInternalServerError {
		slog.Error(op+" failed", args...)
	} else {
		slog.Warn(op+" failed", args...)
	}
	api.Fail(c, status, msg)
}

func writeBindError(c *gin.Context, op string, err error) {
	slog.Warn(op+" validation failed", "error", err, "remote_addr", c.ClientIP())
	api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
}
