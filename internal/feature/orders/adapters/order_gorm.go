// Package adapters はordersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/usecase"
)

// orderGorm はOrderRepositoryのGORM実装です。
type orderGorm struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderGorm)(nil)

// NewOrderGorm は指定されたgorm.DB接続でorderGormを生成します。
func NewOrderGorm(db *gorm.DB) *orderGorm {
	return &orderGorm{db: db}
}

// Create inserts o as one row, assigning a UUID when ID is empty.
func (r *orderGorm) Create(ctx context.Context, o *entity.Order) error {
	if o == nil {
		return errors.New("nil order")
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderGorm) FindAll(ctx context.Context) ([]entity.Order, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *orderGorm) FindActive(ctx context.Context) ([]entity.Order, error) {
	q := r.db.WithContext(ctx).Where("status NOT IN ?", []entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled})
	return r.find(q)
}

func (r *orderGorm) FindByClient(ctx context.Context, clientID string) ([]entity.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("client_id = ?", clientID))
}

func (r *orderGorm) find(q *gorm.DB) ([]entity.Order, error) {
	out := []entity.Order{}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID はIDで注文を取得します。存在しない場合は usecase.ErrOrderNotFound。
func (r *orderGorm) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Update writes back only the mutable columns; lines, total and client snapshot stay as created.
func (r *orderGorm) Update(ctx context.Context, o *entity.Order) error {
	res := r.db.WithContext(ctx).Model(&entity.Order{ID: o.ID}).Updates(map[string]any{
		"status":               o.Status,
		"payment_method":       o.Payment.Method,
		"payment_status":       o.Payment.Status,
		"shipping_street":      o.ShippingAddress.Street,
		"shipping_city":        o.ShippingAddress.City,
		"shipping_postal_code": o.ShippingAddress.PostalCode,
		"shipping_state":       o.ShippingAddress.State,
		"shipping_country":     o.ShippingAddress.Country,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrOrderNotFound
	}
	return nil
}
