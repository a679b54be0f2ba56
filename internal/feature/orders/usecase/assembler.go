// Package usecase はordersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/shared/apperr"
)

// UserFinder はユーザーをIDで取得します。存在しない場合は ErrClientNotFound を返してください。
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*authentity.User, error)
}

// ProductFinder はID集合で商品を取得します。存在しないIDは結果に含まれません。
type ProductFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]catalogentity.Product, error)
}

// OrderRepository は注文の永続化層を抽象化します。
type OrderRepository interface {
	// Create は組み立て済みの注文を1回の書き込みで保存し、IDを割り当てます。
	Create(ctx context.Context, o *entity.Order) error
	FindAll(ctx context.Context) ([]entity.Order, error)
	// FindActive は Delivered / Cancelled 以外の注文を返します。
	FindActive(ctx context.Context) ([]entity.Order, error)
	FindByClient(ctx context.Context, clientID string) ([]entity.Order, error)
	// FindByID は存在しない場合 ErrOrderNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	// Update は status, payment, shipping address のみを書き戻します。
	Update(ctx context.Context, o *entity.Order) error
}

// LineRequest is one requested product and its quantity. Prices never come from the request.
type LineRequest struct {
	ProductID string
	Quantity  int
}

// AssembleInput is everything a client submits to place an order.
type AssembleInput struct {
	ClientID        string
	Lines           []LineRequest
	ShippingAddress entity.Address
	PaymentMethod   string
}

// Assembler builds orders from authoritative user and product records.
type Assembler struct {
	users    UserFinder
	products ProductFinder
	orders   OrderRepository
}

// NewAssembler はAssemblerの新しいインスタンスを生成します。
func NewAssembler(users UserFinder, products ProductFinder, orders OrderRepository) *Assembler {
	return &Assembler{users: users, products: products, orders: orders}
}

// Assemble validates in, looks up the client and products concurrently, prices every line
// from the product records and persists the order with status Pending.
// Nothing is written when the client or any product is missing.
func (a *Assembler) Assemble(ctx context.Context, in AssembleInput) (*entity.Order, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	ids, quantities := mergeLines(in.Lines)

	var (
		client   *authentity.User
		products []catalogentity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := a.users.FindByID(gctx, in.ClientID)
		if err != nil {
			return lookupError("find client", err)
		}
		client = u
		return nil
	})
	g.Go(func() error {
		ps, err := a.products.FindByIDs(gctx, ids)
		if err != nil {
			return apperr.Persistence("find products", err)
		}
		products = ps
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]catalogentity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	if len(byID) < len(ids) {
		var missing []string
		for _, id := range ids {
			if _, ok := byID[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, &ProductsNotFoundError{IDs: missing}
	}

	lines := make([]entity.OrderLine, 0, len(ids))
	for _, id := range ids {
		p := byID[id]
		lines = append(lines, entity.OrderLine{
			ProductID: p.ID,
			Name:      p.Title,
			Price:     p.Price,
			Quantity:  quantities[id],
		})
	}

	order := &entity.Order{
		Client: entity.ClientSnapshot{
			ID:    client.ID,
			Name:  client.Name,
			Tel:   client.Tel,
			Email: client.Email,
		},
		Lines:           lines,
		ShippingAddress: in.ShippingAddress,
		Payment:         entity.Payment{Method: in.PaymentMethod, Status: entity.PaymentPending},
		Status:          entity.StatusPending,
		TotalAmount:     entity.ComputeTotal(lines),
	}
	if err := a.orders.Create(ctx, order); err != nil {
		return nil, apperr.Persistence("create order", err)
	}
	return order, nil
}

// mergeLines returns the distinct product ids in request order and the summed quantity per id.
func mergeLines(lines []LineRequest) ([]string, map[string]int) {
	ids := make([]string, 0, len(lines))
	quantities := make(map[string]int, len(lines))
	for _, l := range lines {
		if _, seen := quantities[l.ProductID]; !seen {
			ids = append(ids, l.ProductID)
		}
		quantities[l.ProductID] += l.Quantity
	}
	return ids, quantities
}

func validateInput(in AssembleInput) error {
	if strings.TrimSpace(in.ClientID) == "" {
		return apperr.Validation("client id is required")
	}
	if len(in.Lines) == 0 {
		return apperr.Validation("at least one product is required")
	}
	for i, l := range in.Lines {
		if strings.TrimSpace(l.ProductID) == "" {
			return apperr.Validation("products[%d]: product id is required", i)
		}
		if l.Quantity < 1 {
			return apperr.Validation("products[%d]: quantity must be at least 1", i)
		}
	}
	if err := validateAddress(in.ShippingAddress); err != nil {
		return err
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return apperr.Validation("payment method is required")
	}
	return nil
}

func validateAddress(a entity.Address) error {
	fields := []struct{ name, value string }{
		{"street", a.Street},
		{"city", a.City},
		{"postalCode", a.PostalCode},
		{"state", a.State},
		{"country", a.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Validation("shipping address %s is required", f.name)
		}
	}
	return nil
}

// lookupError keeps sentinel errors and wraps store failures.
func lookupError(op string, err error) error {
	if errors.Is(err, ErrClientNotFound) {
		return err
	}
	return apperr.Persistence(op, err)
}
