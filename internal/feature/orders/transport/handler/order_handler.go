// Package handler はordersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/transport/http/dto"
	"shop_backend/internal/feature/orders/usecase"
	"shop_backend/internal/shared/apperr"
)

// HeaderIdempotencyKey は注文の再送を検知するためのリクエストヘッダーです。
const HeaderIdempotencyKey = "Idempotency-Key"

// OrderUsecase は注文操作のユースケースを定義します。
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, key string, in usecase.AssembleInput) (*entity.Order, error)
	ListAll(ctx context.Context) ([]entity.Order, error)
	ListActive(ctx context.Context) ([]entity.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]entity.Order, error)
	UpdateOrder(ctx context.Context, id string, patch usecase.OrderPatch) (*entity.Order, error)
}

// OrderHandler serves /orders.
type OrderHandler struct {
	orders OrderUsecase
}

// NewOrderHandler はOrderHandlerの新しいインスタンスを生成します。
func NewOrderHandler(orders OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ListAll handles GET /orders.
func (h *OrderHandler) ListAll(c *gin.Context) {
	list, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, "list orders", err)
		return
	}
	api.Respond(c, http.StatusOK, dto.ToOrders(list))
}

// ListActive handles GET /orders/active.
func (h *OrderHandler) ListActive(c *gin.Context) {
	list, err := h.orders.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, "list active orders", err)
		return
	}
	api.Respond(c, http.StatusOK, dto.ToOrders(list))
}

// ListByClient handles GET /orders/:id, where :id is the client id.
func (h *OrderHandler) ListByClient(c *gin.Context) {
	clientID := c.Param("id")
	list, err := h.orders.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		writeError(c, "list client orders", err, "client_id", clientID)
		return
	}
	api.Respond(c, http.StatusOK, dto.ToOrders(list))
}

// Place handles POST /orders/new.
func (h *OrderHandler) Place(c *gin.Context) {
	var req api.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("place order validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	in := dto.FromPlaceOrderRequest(req)
	o, err := h.orders.PlaceOrder(c.Request.Context(), c.GetHeader(HeaderIdempotencyKey), in)
	if err != nil {
		writeError(c, "place order", err, "client_id", in.ClientID)
		return
	}
	slog.Info("order placed",
		"order_id", o.ID,
		"client_id", o.Client.ID,
		"lines", len(o.Lines),
		"total", o.TotalAmount.StringFixed(2),
		"remote_addr", c.ClientIP(),
	)
	api.Respond(c, http.StatusCreated, dto.ToOrder(o))
}

// Update handles PUT /orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req api.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update order validation failed", "error", err, "order_id", id, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	o, err := h.orders.UpdateOrder(c.Request.Context(), id, dto.FromUpdateOrderRequest(req))
	if err != nil {
		writeError(c, "update order", err, "order_id", id)
		return
	}
	slog.Info("order updated", "order_id", id, "status", o.Status, "remote_addr", c.ClientIP())
	api.Respond(c, http.StatusOK, dto.ToOrder(o))
}

func writeError(c *gin.Context, op string, err error, attrs ...any) {
	status, msg := http.StatusInternalServerError, "internal server error"
	var missing *usecase.ProductsNotFoundError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status, msg = http.StatusBadRequest, apperr.Reason(err)
	case errors.Is(err, usecase.ErrClientNotFound):
		status, msg = http.StatusNotFound, "client not found"
	case errors.As(err, &missing):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrOrderNotFound):
		status, msg = http.StatusNotFound, "order not found"
	case errors.Is(err, usecase.ErrDuplicateRequest):
		status, msg = http.StatusConflict, "order request already submitted"
	}

	args := append([]any{"error", err, "status", status, "remote_addr", c.ClientIP()}, attrs...)
	if status >= http.StatusInternalServerError {
		slog.Error(op+" failed", args...)
	} else {
		slog.Warn(op+" failed", args...)
	}

	if missing != nil {
		api.Respond(c, status, api.ProductsNotFound{Message: "products not found", MissingIds: missing.IDs})
		return
	}
	api.Fail(c, status, msg)
}
