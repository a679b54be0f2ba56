package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/shared/apperr"
)

const (
	priceScale = 2
	maxRating  = 5
)

// ProductRepository はProductの永続化層を抽象化します。
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	FindAll(ctx context.Context) ([]entity.Product, error)
	// FindAvailable returns products whose availability flag is set.
	FindAvailable(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// ProductInput holds a new product. Available defaults to true when nil.
type ProductInput struct {
	Title       string
	Description string
	Brand       string
	Price       decimal.Decimal
	Available   *bool
	Rating      float64
	Category    []string
	Types       []string
	Images      []string
}

// ProductPatch lists the fields UpdateProduct may change. Nil means unchanged.
type ProductPatch struct {
	Title       *string
	Description *string
	Brand       *string
	Price       *decimal.Decimal
	Available   *bool
	Rating      *float64
	Category    *[]string
	Types       *[]string
	Images      *[]string
}

type productUsecase struct {
	products ProductRepository
}

// NewProductUsecase はproductUsecaseの新しいインスタンスを生成します。
func NewProductUsecase(products ProductRepository) *productUsecase {
	return &productUsecase{products: products}
}

// AddProduct validates and stores a new product.
func (u *productUsecase) AddProduct(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	price, err := normalizePrice(in.Price)
	if err != nil {
		return nil, err
	}
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	p := &entity.Product{
		Title:       in.Title,
		Description: in.Description,
		Brand:       in.Brand,
		Price:       price,
		Available:   available,
		Rating:      in.Rating,
		Category:    orEmpty(in.Category),
		Types:       orEmpty(in.Types),
		Images:      orEmpty(in.Images),
	}
	if err := u.products.Create(ctx, p); err != nil {
		return nil, storeError("create product", err)
	}
	return p, nil
}

// ListAll returns every product.
func (u *productUsecase) ListAll(ctx context.Context) ([]entity.Product, error) {
	ps, err := u.products.FindAll(ctx)
	if err != nil {
		return nil, storeError("list products", err)
	}
	return ps, nil
}

// ListActive returns products with available = true.
func (u *productUsecase) ListActive(ctx context.Context) ([]entity.Product, error) {
	ps, err := u.products.FindAvailable(ctx)
	if err != nil {
		return nil, storeError("list active products", err)
	}
	return ps, nil
}

// UpdateProduct applies patch to the product with id and returns the updated record.
// Existing orders keep the price they were created with.
func (u *productUsecase) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*entity.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Validation("id is required")
	}
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find product", err)
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, apperr.Validation("title must not be empty")
		}
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Price != nil {
		price, err := normalizePrice(*patch.Price)
		if err != nil {
			return nil, err
		}
		p.Price = price
	}
	if patch.Available != nil {
		p.Available = *patch.Available
	}
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return nil, err
		}
		p.Rating = *patch.Rating
	}
	if patch.Category != nil {
		p.Category = orEmpty(*patch.Category)
	}
	if patch.Types != nil {
		p.Types = orEmpty(*patch.Types)
	}
	if patch.Images != nil {
		p.Images = orEmpty(*patch.Images)
	}

	if err := u.products.Update(ctx, p); err != nil {
		return nil, storeError("update product", err)
	}
	return p, nil
}

// DeleteProduct removes the product with id.
func (u *productUsecase) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validation("id is required")
	}
	if err := u.products.Delete(ctx, id); err != nil {
		return storeError("delete product", err)
	}
	return nil
}

// normalizePrice rejects negative prices and fixes the scale to cents.
func normalizePrice(p decimal.Decimal) (decimal.Decimal, error) {
	if p.IsNegative() {
		return decimal.Decimal{}, apperr.Validation("price must not be negative")
	}
	return p.Round(priceScale), nil
}

func validateRating(r float64) error {
	if r < 0 || r > maxRating {
		return apperr.Validation("rating must be between 0 and %d", maxRating)
	}
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func storeError(op string, err error) error {
	if errors.Is(err, ErrProductNotFound) {
		return err
	}
	slog.Error("product store failure", "op", op, "error", err)
	return apperr.Persistence(op, err)
}
