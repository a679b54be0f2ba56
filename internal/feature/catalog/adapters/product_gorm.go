// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// productGorm はProductRepositoryのGORM実装です。
type productGorm struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductGorm は指定されたgorm.DB接続でproductGormを生成します。
func NewProductGorm(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

// Create inserts p, assigning a UUID when ID is empty.
func (r *productGorm) Create(ctx context.Context, p *entity.Product) error {
	if p == nil {
		return errors.New("nil product")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productGorm) FindAll(ctx context.Context) ([]entity.Product, error) {
	out := []entity.Product{}
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productGorm) FindAvailable(ctx context.Context) ([]entity.Product, error) {
	out := []entity.Product{}
	if err := r.db.WithContext(ctx).Where("available = ?", true).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID はIDでProductを取得します。存在しない場合は usecase.ErrProductNotFound。
func (r *productGorm) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByIDs returns the products whose id is in ids, in no particular order.
// Missing ids are simply absent from the result.
func (r *productGorm) FindByIDs(ctx context.Context, ids []string) ([]entity.Product, error) {
	out := []entity.Product{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productGorm) Update(ctx context.Context, p *entity.Product) error {
	res := r.db.WithContext(ctx).Model(p).Select("*").Omit("id", "created_at").Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

func (r *productGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}
