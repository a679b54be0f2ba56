package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClientNotFound は注文者のユーザーが存在しない場合に返されます。
	ErrClientNotFound = errors.New("client not found")

	// ErrProductsNotFound は要求された商品の一部が存在しない場合に返されます。
	// 詳細は *ProductsNotFoundError で取得できます。
	ErrProductsNotFound = errors.New("products not found")

	// ErrOrderNotFound は注文が存在しない場合に返されます。
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicateRequest は同じリクエストキーで注文が再送された場合に返されます。
	ErrDuplicateRequest = errors.New("duplicate order request")
)

// ProductsNotFoundError lists the requested product ids that do not exist.
type ProductsNotFoundError struct {
	IDs []string
}

func (e *ProductsNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProductsNotFound, strings.Join(e.IDs, ", "))
}

func (e *ProductsNotFoundError) Is(target error) bool {
	return target == ErrProductsNotFound
}

// DuplicateRequestError carries the order already created for the request key.
// OrderID is empty while the first request is still running.
type DuplicateRequestError struct {
	OrderID string
}

func (e *DuplicateRequestError) Error() string {
	if e.OrderID == "" {
		return ErrDuplicateRequest.Error() + ": in progress"
	}
	return ErrDuplicateRequest.Error() + ": order " + e.OrderID
}

func (e *DuplicateRequestError) Is(target error) bool {
	return target == ErrDuplicateRequest
}
