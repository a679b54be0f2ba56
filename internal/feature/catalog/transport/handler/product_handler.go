// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/shared/apperr"
)

// ProductUsecase はProduct操作のユースケースを定義します。
type ProductUsecase interface {
	AddProduct(ctx context.Context, in usecase.ProductInput) (*entity.Product, error)
	ListAll(ctx context.Context) ([]entity.Product, error)
	ListActive(ctx context.Context) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, id string, patch usecase.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductHandler serves /products.
type ProductHandler struct {
	products ProductUsecase
}

// NewProductHandler はProductHandlerの新しいインスタンスを生成します。
func NewProductHandler(products ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListActive handles GET /products.
func (h *ProductHandler) ListActive(c *gin.Context) {
	ps, err := h.products.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, "list active products", err)
		return
	}
	api.Respond(c, http.StatusOK, dto.ToProducts(ps))
}

// ListAll handles GET /products/all.
func (h *ProductHandler) ListAll(c *gin.Context) {
	ps, err := h.products.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, "list products", err)
		return
	}
	api.Respond(c, http.StatusOK, dto.ToProducts(ps))
}

// Add handles POST /products/add.
func (h *ProductHandler) Add(c *gin.Context) {
	var req api.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("add product validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	p, err := h.products.AddProduct(c.Request.Context(), dto.FromCreateRequest(req))
	if err != nil {
		writeError(c, "add product", err)
		return
	}
	slog.Info("product added", "product_id", p.ID, "remote_addr", c.ClientIP())
	api.Respond(c, http.StatusCreated, dto.ToProduct(p))
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req api.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update product validation failed", "error", err, "product_id", id, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	p, err := h.products.UpdateProduct(c.Request.Context(), id, dto.FromUpdateRequest(req))
	if err != nil {
		writeError(c, "update product", err, "product_id", id)
		return
	}
	slog.Info("product updated", "product_id", id, "remote_addr", c.ClientIP())
	api.Respond(c, http.StatusOK, dto.ToProduct(p))
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		writeError(c, "delete product", err, "product_id", id)
		return
	}
	slog.Info("product deleted", "product_id", id, "remote_addr", c.ClientIP())
	api.Respond(c, http.StatusOK, api.Message{Message: "product deleted"})
}

func writeError(c *gin.Context, op string, err error, attrs ...any) {
	status, msg := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status, msg = http.StatusBadRequest, apperr.Reason(err)
	case errors.Is(err, usecase.ErrProductNotFound):
		status, msg = http.StatusNotFound, "product not found"
	}
	args := append([]any{"error", err, "status", status, "remote_addr", c.ClientIP()}, attrs...)
	if status >= http.StatusInternalServerError {
		slog.Error(op+" failed", args...)
	} else {
		slog.Warn(op+" failed", args...)
	}
	api.Fail(c, status, msg)
}
