package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/shared/apperr"
)

// RequestGuard reserves a client-supplied request key so a resubmitted order is not created twice.
type RequestGuard interface {
	// Reserve returns reserved=false when the key is already held. existingID is the order
	// created for it, or empty while that request is still running.
	Reserve(ctx context.Context, scope, key string) (reserved bool, existingID string, err error)
	Complete(ctx context.Context, scope, key, orderID string) error
	Release(ctx context.Context, scope, key string) error
}

// OrderPatch holds the order fields that may change after creation. Nil means unchanged.
type OrderPatch struct {
	Status          *entity.OrderStatus
	PaymentStatus   *entity.PaymentStatus
	PaymentMethod   *string
	ShippingAddress *entity.Address
}

// orderUsecase は注文の作成・参照・更新を実装します。
type orderUsecase struct {
	assembler *Assembler
	orders    OrderRepository
	guard     RequestGuard
}

// NewOrderUsecase はorderUsecaseの新しいインスタンスを生成します。guard は nil でも構いません。
func NewOrderUsecase(assembler *Assembler, orders OrderRepository, guard RequestGuard) *orderUsecase {
	return &orderUsecase{assembler: assembler, orders: orders, guard: guard}
}

// PlaceOrder assembles and stores an order. When key is non-empty and a guard is configured
// the key is reserved per client first; a key that is already held yields ErrDuplicateRequest.
func (u *orderUsecase) PlaceOrder(ctx context.Context, key string, in AssembleInput) (*entity.Order, error) {
	key = strings.TrimSpace(key)
	if key == "" || u.guard == nil {
		return u.assembler.Assemble(ctx, in)
	}

	scope := in.ClientID
	reserved, existing, err := u.guard.Reserve(ctx, scope, key)
	if err != nil {
		// ガードが使えない場合は重複検知なしで処理を続ける
		slog.Warn("request guard unavailable", "error", err, "client_id", scope)
		return u.assembler.Assemble(ctx, in)
	}
	if !reserved {
		return nil, &DuplicateRequestError{OrderID: existing}
	}

	order, err := u.assembler.Assemble(ctx, in)
	// リクエストがキャンセルされてもキーを pending のまま残さない
	settleCtx := context.WithoutCancel(ctx)
	if err != nil {
		if rerr := u.guard.Release(settleCtx, scope, key); rerr != nil {
			slog.Warn("failed to release request key", "error", rerr, "client_id", scope)
		}
		return nil, err
	}
	if cerr := u.guard.Complete(settleCtx, scope, key, order.ID); cerr != nil {
		slog.Warn("failed to record request key", "error", cerr, "client_id", scope, "order_id", order.ID)
	}
	return order, nil
}

func (u *orderUsecase) ListAll(ctx context.Context) ([]entity.Order, error) {
	list, err := u.orders.FindAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("list orders", err)
	}
	return list, nil
}

// ListActive returns orders that are neither delivered nor cancelled.
func (u *orderUsecase) ListActive(ctx context.Context) ([]entity.Order, error) {
	list, err := u.orders.FindActive(ctx)
	if err != nil {
		return nil, apperr.Persistence("list active orders", err)
	}
	return list, nil
}

func (u *orderUsecase) ListByClient(ctx context.Context, clientID string) ([]entity.Order, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, apperr.Validation("client id is required")
	}
	list, err := u.orders.FindByClient(ctx, clientID)
	if err != nil {
		return nil, apperr.Persistence("list client orders", err)
	}
	return list, nil
}

// UpdateOrder applies patch to the order. Any valid status may be set from any other.
// Lines, total and client snapshot are never changed.
func (u *orderUsecase) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (*entity.Order, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperr.Validation("unknown order status %q", *patch.Status)
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.Valid() {
		return nil, apperr.Validation("unknown payment status %q", *patch.PaymentStatus)
	}
	if patch.PaymentMethod != nil && strings.TrimSpace(*patch.PaymentMethod) == "" {
		return nil, apperr.Validation("payment method must not be empty")
	}
	if patch.ShippingAddress != nil {
		if err := validateAddress(*patch.ShippingAddress); err != nil {
			return nil, err
		}
	}

	o, err := u.orders.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find order", err)
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		o.Payment.Status = *patch.PaymentStatus
	}
	if patch.PaymentMethod != nil {
		o.Payment.Method = *patch.PaymentMethod
	}
	if patch.ShippingAddress != nil {
		o.ShippingAddress = *patch.ShippingAddress
	}
	if err := u.orders.Update(ctx, o); err != nil {
		return nil, storeError("update order", err)
	}
	return o, nil
}

func storeError(op string, err error) error {
	if errors.Is(err, ErrOrderNotFound) {
		return err
	}
	return apperr.Persistence(op, err)
}
